package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// planService handles the legacy plan records.
type planService struct {
	db *gorm.DB
}

// NewPlanService creates a new PlanServicer.
func NewPlanService(db *gorm.DB) PlanServicer {
	return &planService{db: db}
}

func validatePlanInput(input PlanInput) error {
	if input.Title == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if input.PlannedExpense < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "planned expense must not be negative")
	}
	if input.ActualExpense < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "actual expense must not be negative")
	}
	if input.Month != nil && (*input.Month < 1 || *input.Month > 12) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	return nil
}

// CreatePlan creates a new plan for the user.
func (s *planService) CreatePlan(userID uint, input PlanInput) (*models.Plan, error) {
	if err := validatePlanInput(input); err != nil {
		return nil, err
	}

	plan := &models.Plan{
		UserID:         userID,
		Title:          input.Title,
		PlannedExpense: input.PlannedExpense,
		ActualExpense:  input.ActualExpense,
		Day:            input.Day,
		Month:          input.Month,
		Year:           input.Year,
		Category:       input.Category,
		Notes:          input.Notes,
	}

	if err := s.db.Create(plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return plan, nil
}

// GetUserPlans returns the user's plans, newest first, optionally narrowed
// by a case-insensitive category substring.
func (s *planService) GetUserPlans(userID uint, category string) ([]models.Plan, error) {
	q := s.db.Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}

	var plans []models.Plan
	if err := q.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// FindPlans returns the user's plans matching any combination of exact
// day/month/year and a case-insensitive category substring.
func (s *planService) FindPlans(userID uint, filter PlanFilter) ([]models.Plan, error) {
	q := s.db.Where("user_id = ?", userID)
	if filter.Day != nil {
		q = q.Where("day = ?", *filter.Day)
	}
	if filter.Month != nil {
		q = q.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}

	var plans []models.Plan
	if err := q.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// GetPlanByID returns a plan by ID if it belongs to the user.
func (s *planService) GetPlanByID(userID, planID uint) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// UpdatePlan replaces every mutable field of the plan.
func (s *planService) UpdatePlan(userID, planID uint, input PlanInput) (*models.Plan, error) {
	if err := validatePlanInput(input); err != nil {
		return nil, err
	}

	plan, err := s.GetPlanByID(userID, planID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":           input.Title,
		"planned_expense": input.PlannedExpense,
		"actual_expense":  input.ActualExpense,
		"day":             input.Day,
		"month":           input.Month,
		"year":            input.Year,
		"category":        input.Category,
		"notes":           input.Notes,
	}

	if err := s.db.Model(plan).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return plan, nil
}

// DeletePlan removes a plan. The user scope guarantees a foreign id never
// touches another user's row.
func (s *planService) DeletePlan(userID, planID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", planID, userID).Delete(&models.Plan{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPlanNotFound
	}
	return nil
}
