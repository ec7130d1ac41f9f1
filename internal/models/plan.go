package models

// Plan is the legacy planned-vs-actual expense line. Newer data lives in
// Expense; plans are kept for the records created before the migration.
type Plan struct {
	Base
	UserID         uint    `gorm:"not null;index" json:"user_id"`
	Title          string  `gorm:"not null" json:"title"`
	PlannedExpense float64 `gorm:"not null" json:"planned_expense"`
	ActualExpense  float64 `gorm:"default:0" json:"actual_expense"`
	Day            *int    `json:"day,omitempty"`
	Month          *int    `json:"month,omitempty"`
	Year           *int    `json:"year,omitempty"`
	Category       string  `json:"category"`
	Notes          string  `json:"notes"`
}
