package models

import "time"

// Base contains common columns for all tables. Records are removed with
// hard deletes, so there is no deleted_at column.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
