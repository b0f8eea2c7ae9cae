package models

import "time"

// PostModel represents the database persistence model for posts.
type PostModel struct {
	ID          string `gorm:"primarykey;size:36"`
	Slug        string `gorm:"size:255;not null;uniqueIndex"`
	Title       string `gorm:"size:255;not null"`
	Summary     string `gorm:"size:1024"`
	ContentMD   string `gorm:"type:text"`
	Status      string `gorm:"size:16;not null;index"`
	Pinned      bool   `gorm:"not null;default:false"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PostModel) TableName() string {
	return "posts"
}
