package services

import (
	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// clearHistoryConfirmation is the literal text a user must submit before
// their history is wiped.
const clearHistoryConfirmation = "DELETE"

// settingsService handles account settings operations.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// Overview reports how many records the user owns in each collection.
func (s *settingsService) Overview(userID uint) (*SettingsOverview, error) {
	overview := &SettingsOverview{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Plan{}, &overview.PlanCount},
		{&models.Expense{}, &overview.ExpenseCount},
		{&models.MonthlyBudget{}, &overview.BudgetCount},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Where("user_id = ?", userID).Count(c.dest).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return overview, nil
}

// ClearHistory deletes every plan, expense, and monthly budget owned by
// the user. The confirmation must match exactly; anything else leaves
// all collections untouched.
func (s *settingsService) ClearHistory(userID uint, confirmation string) error {
	if confirmation != clearHistoryConfirmation {
		return apperrors.ErrInvalidConfirmation
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Plan{}, &models.Expense{}, &models.MonthlyBudget{}} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
