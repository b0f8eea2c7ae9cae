package models

import "time"

// LoginAttemptModel represents the database persistence model for the login
// rate limiter. One row per hashed client identifier.
type LoginAttemptModel struct {
	ClientHash    string    `gorm:"primarykey;size:64"`
	FailedCount   int       `gorm:"not null;default:0"`
	LastAttemptAt time.Time `gorm:"not null"`
	LockedUntil   *time.Time
}

// TableName specifies the table name for GORM
func (LoginAttemptModel) TableName() string {
	return "admin_login_attempts"
}
