package models

import "time"

// CommentBanModel represents the database persistence model for commenter bans.
type CommentBanModel struct {
	ID         uint   `gorm:"primarykey"`
	ClientHash string `gorm:"size:64;not null;uniqueIndex"`
	Reason     string `gorm:"size:255"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CommentBanModel) TableName() string {
	return "comment_bans"
}
