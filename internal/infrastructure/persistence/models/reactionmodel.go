package models

// ReactionModel represents the database persistence model for reaction
// counters, one row per (target, kind).
type ReactionModel struct {
	TargetKey string `gorm:"primarykey;size:255"`
	Kind      string `gorm:"primarykey;size:32"`
	Count     int64  `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ReactionModel) TableName() string {
	return "reactions"
}
