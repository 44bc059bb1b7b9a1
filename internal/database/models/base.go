package models

import (
	"time"
)

// BaseModel provides the numeric primary key and timestamps shared by mutable entities
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// NextUpdatedAt returns the modification timestamp for a write following prev.
// The result is always strictly after prev, even when the clock has not advanced
// past Postgres' microsecond resolution.
func NextUpdatedAt(prev time.Time) time.Time {
	next := time.Now().UTC().Truncate(time.Microsecond)
	if !next.After(prev) {
		next = prev.Add(time.Microsecond)
	}
	return next
}
