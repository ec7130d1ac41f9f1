package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// budgetService handles monthly budget records.
type budgetService struct {
	db      *gorm.DB
	summary SummaryServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, summary SummaryServicer) BudgetServicer {
	return &budgetService{db: db, summary: summary}
}

func validateBudgetFields(budget float64, month, year int) error {
	if budget <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must be a positive number")
	}
	if month < 1 || month > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a positive number")
	}
	return nil
}

// SetMonthlyBudget creates the budget for a (month, year) period. A budget
// already covering the period is replaced rather than duplicated; the
// returned bool reports whether a replacement happened.
func (s *budgetService) SetMonthlyBudget(userID uint, budget float64, month, year int, notes string) (*models.MonthlyBudget, bool, error) {
	if err := validateBudgetFields(budget, month, year); err != nil {
		return nil, false, err
	}

	var existing models.MonthlyBudget
	err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&existing).Error
	switch {
	case err == nil:
		existing.Budget = budget
		existing.Notes = notes
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &existing, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := &models.MonthlyBudget{
			UserID: userID,
			Budget: budget,
			Month:  month,
			Year:   year,
			Notes:  notes,
		}
		if err := s.db.Create(record).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return record, false, nil
	default:
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetUserBudgets returns the user's budgets, most recent period first.
func (s *budgetService) GetUserBudgets(userID uint) ([]models.MonthlyBudget, error) {
	var budgets []models.MonthlyBudget
	if err := s.db.Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetStatus returns the budget for a period together with the
// period's spending and the remaining amount.
func (s *budgetService) GetBudgetStatus(userID uint, month, year int) (*BudgetStatus, error) {
	var budget models.MonthlyBudget
	if err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("created_at DESC").
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent, err := s.summary.SpentForPeriod(userID, month, year)
	if err != nil {
		return nil, err
	}

	return &BudgetStatus{
		BudgetID:  budget.ID,
		Budget:    budget.Budget,
		Month:     budget.Month,
		Year:      budget.Year,
		Notes:     budget.Notes,
		Spent:     spent,
		Remaining: budget.Budget - spent,
	}, nil
}

// UpdateBudget replaces the mutable fields of a budget identified by id.
func (s *budgetService) UpdateBudget(userID, budgetID uint, budget float64, month, year int, notes string) (*models.MonthlyBudget, error) {
	if err := validateBudgetFields(budget, month, year); err != nil {
		return nil, err
	}

	var record models.MonthlyBudget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"budget": budget,
		"month":  month,
		"year":   year,
		"notes":  notes,
	}

	if err := s.db.Model(&record).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &record, nil
}

// DeleteBudget removes a budget owned by the user.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.MonthlyBudget{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
