package models

// MonthlyBudget is a budgeted ceiling amount for a (month, year) pair.
// At most one row exists per (user, month, year); creating a budget for
// an existing period replaces the old row.
type MonthlyBudget struct {
	Base
	UserID uint    `gorm:"not null;index:idx_budget_period,unique" json:"user_id"`
	Budget float64 `gorm:"not null" json:"budget"`
	Month  int     `gorm:"not null;index:idx_budget_period,unique" json:"month"`
	Year   int     `gorm:"not null;index:idx_budget_period,unique" json:"year"`
	Notes  string  `json:"notes"`
}
