package models

import (
	"time"

	"gorm.io/datatypes"
)

type AssessmentStatus string

const (
	AssessmentPending   AssessmentStatus = "pending"
	AssessmentCompleted AssessmentStatus = "completed"
)

// Assessment is a submitted skill assessment. Rows are immutable once saved.
type Assessment struct {
	ID         string                      `json:"id" gorm:"primaryKey;size:255"`
	UserID     string                      `json:"user_id" gorm:"not null;index;size:255"`
	Title      string                      `json:"title" gorm:"not null;size:200"`
	Skills     datatypes.JSONSlice[string] `json:"skills"`
	Difficulty string                      `json:"difficulty" gorm:"size:50"`
	Score      float64                     `json:"score"`
	Status     AssessmentStatus            `json:"status" gorm:"size:20;default:pending;index"`

	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime:false"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (Assessment) TableName() string {
	return "assessments"
}
