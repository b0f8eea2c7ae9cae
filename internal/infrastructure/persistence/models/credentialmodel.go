package models

import "time"

// CredentialModel represents the database persistence model for admin
// credentials. Only the PBKDF2 digest and salt are at rest, never plaintext.
type CredentialModel struct {
	ID           uint   `gorm:"primarykey"`
	Identifier   string `gorm:"size:64;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:128;not null"`
	PasswordSalt string `gorm:"size:64;not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (CredentialModel) TableName() string {
	return "admin_credentials"
}
