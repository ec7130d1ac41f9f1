package services

import (
	"errors"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// The daily view always spans 30 days from the first of the month,
// regardless of the month's true length.
const dailyWindowDays = 30

const uncategorizedLabel = "Uncategorized"

var categoryCaser = cases.Title(language.English)

// summaryService computes the aggregate views. Grouping and summing run
// inside the database; this service builds the query and reshapes rows.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// SpentForPeriod sums the user's expense amounts for a (month, year) period.
func (s *summaryService) SpentForPeriod(userID uint, month, year int) (float64, error) {
	var spent float64
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Scan(&spent).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent, nil
}

// BudgetSummary reports spending against the period's budget. Budget and
// remaining stay nil when no budget document exists for the period.
func (s *summaryService) BudgetSummary(userID uint, month, year int) (*BudgetSummary, error) {
	spent, err := s.SpentForPeriod(userID, month, year)
	if err != nil {
		return nil, err
	}

	summary := &BudgetSummary{
		Month: month,
		Year:  year,
		Spent: spent,
	}

	var budget models.MonthlyBudget
	err = s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("created_at DESC").
		First(&budget).Error
	switch {
	case err == nil:
		remaining := budget.Budget - spent
		summary.Budget = &budget.Budget
		summary.Remaining = &remaining
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No budget set for the period; budget and remaining stay null.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return summary, nil
}

type categoryRow struct {
	Category string
	Spent    float64
	Cnt      int64
}

// CategoryBreakdown groups the period's expenses by normalized category,
// merging case variants, sorted by spend descending.
func (s *summaryService) CategoryBreakdown(userID uint, month, year int) ([]CategorySpend, error) {
	var rows []categoryRow
	if err := s.db.Model(&models.Expense{}).
		Select("LOWER(category) AS category, SUM(amount) AS spent, COUNT(*) AS cnt").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Group("LOWER(category)").
		Order("spent DESC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	breakdown := make([]CategorySpend, 0, len(rows))
	for _, row := range rows {
		label := uncategorizedLabel
		if row.Category != "" {
			label = categoryCaser.String(row.Category)
		}
		breakdown = append(breakdown, CategorySpend{
			Category: label,
			Spent:    row.Spent,
			Count:    row.Cnt,
		})
	}
	return breakdown, nil
}

type dailyRow struct {
	Day   int
	Total float64
}

// DailyTotals returns one entry per day of the 30-day window starting at
// day 1 of the month, with zero totals for days without expenses.
func (s *summaryService) DailyTotals(userID uint, month, year int) ([]DailyTotal, error) {
	var rows []dailyRow
	if err := s.db.Model(&models.Expense{}).
		Select("day AS day, SUM(amount) AS total").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Group("day").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byDay := make(map[int]float64, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.Total
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	totals := make([]DailyTotal, 0, dailyWindowDays)
	for i := 0; i < dailyWindowDays; i++ {
		date := start.AddDate(0, 0, i)
		totals = append(totals, DailyTotal{
			Date:  date.Format("2006-01-02"),
			Total: byDay[i+1],
		})
	}
	return totals, nil
}
