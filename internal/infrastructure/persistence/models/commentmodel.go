package models

import "time"

// CommentModel represents the database persistence model for comments.
// ClientHash and UserAgentHash are one-way digests; raw values are never
// persisted.
type CommentModel struct {
	ID            string  `gorm:"primarykey;size:36"`
	TargetKey     string  `gorm:"size:255;not null;index"`
	ParentID      *string `gorm:"size:36"`
	DisplayName   string  `gorm:"size:60;not null"`
	Body          string  `gorm:"type:text;not null"`
	Status        string  `gorm:"size:16;not null;index"`
	ClientHash    string  `gorm:"size:64;index"`
	UserAgentHash string  `gorm:"size:64"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}
