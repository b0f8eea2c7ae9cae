package models

import "time"

// AdminSessionModel represents the database persistence model for admin
// sessions. Only the token digest is stored.
type AdminSessionModel struct {
	ID           uint   `gorm:"primarykey"`
	TokenHash    string `gorm:"size:64;not null;uniqueIndex"`
	CredentialID uint   `gorm:"not null;index"`
	CreatedAt    time.Time
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AdminSessionModel) TableName() string {
	return "admin_sessions"
}
