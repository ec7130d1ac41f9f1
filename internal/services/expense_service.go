package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
)

// Expense listings always use a fixed page size.
const expensePageSize = 10

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

func validateExpenseInput(input ExpenseInput) error {
	if input.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}

// CreateExpense creates a new expense. Rejected input persists nothing.
func (s *expenseService) CreateExpense(userID uint, input ExpenseInput) (*models.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    input.Title,
		Date:     input.Date,
		Amount:   input.Amount,
		Category: input.Category,
		Note:     input.Note,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses returns a filtered page of the user's expenses.
// The page size is fixed at 10 regardless of what the request asked for.
func (s *expenseService) GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()
	page.PageSize = expensePageSize

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	base = applyExpenseFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order(expenseOrder(filter.Sort)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyExpenseFilters(q *gorm.DB, f ExpenseFilter) *gorm.DB {
	if f.Year != nil {
		q = q.Where("year = ?", *f.Year)
	}
	if f.Month != nil {
		q = q.Where("month = ?", *f.Month)
	}
	if f.Day != nil {
		q = q.Where("day = ?", *f.Day)
	}
	if f.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(f.Category)+"%")
	}
	if f.Query != "" {
		needle := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(note) LIKE ? OR LOWER(title) LIKE ?", needle, needle)
	}
	return q
}

// expenseOrder maps the validated sort field to an ORDER BY clause.
func expenseOrder(sort string) string {
	switch sort {
	case "amount":
		return "amount DESC"
	case "created_at":
		return "created_at DESC"
	default:
		return "date DESC"
	}
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense replaces every mutable field of the expense.
func (s *expenseService) UpdateExpense(userID, expenseID uint, input ExpenseInput) (*models.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	expense.Title = input.Title
	expense.Date = input.Date
	expense.Amount = input.Amount
	expense.Category = input.Category
	expense.Note = input.Note

	// Save runs the BeforeSave hook so year/month/day follow the new date.
	if err := s.db.Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense removes an expense owned by the user.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
