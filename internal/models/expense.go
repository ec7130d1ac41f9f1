package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense records a single dated financial transaction.
type Expense struct {
	Base
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Title    string    `json:"title"`
	Date     time.Time `gorm:"not null" json:"date"`
	Year     int       `gorm:"index" json:"year"`
	Month    int       `gorm:"index" json:"month"`
	Day      int       `json:"day"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Category string    `json:"category"`
	Note     string    `json:"note"`
}

// BeforeSave derives the year/month/day columns from Date so that the
// grouping queries never disagree with the stored date.
func (e *Expense) BeforeSave(tx *gorm.DB) error {
	if !e.Date.IsZero() {
		e.Year = e.Date.Year()
		e.Month = int(e.Date.Month())
		e.Day = e.Date.Day()
	}
	return nil
}
