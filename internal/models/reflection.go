package models

import (
	"time"

	"gorm.io/gorm"
)

// Reflection is a journal entry written after a trade, evaluating it.
// TradingID points at Trade.ID; the reference is declared in the schema but
// not enforced.
type Reflection struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TradingID      uint      `gorm:"column:trading_id" json:"trading_id"`
	ReflectionDate Timestamp `json:"reflection_date"`
	ReflectionText string    `json:"reflection_text"`
	MoodScore      int       `json:"mood_score"`
	LearningPoints string    `json:"learning_points"`
	NextActions    string    `json:"next_actions"`
}

// TableName overrides the table name used by gorm.
func (Reflection) TableName() string {
	return "trading_reflection"
}

// BeforeCreate stamps a reflection that has no date yet.
func (r *Reflection) BeforeCreate(tx *gorm.DB) error {
	if r.ReflectionDate.IsZero() {
		r.ReflectionDate = NewTimestamp(time.Now())
	}
	return nil
}
