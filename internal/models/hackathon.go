package models

import (
	"time"

	"gorm.io/datatypes"
)

type HackathonStatus string

const (
	HackathonUpcoming  HackathonStatus = "upcoming"
	HackathonOngoing   HackathonStatus = "ongoing"
	HackathonCompleted HackathonStatus = "completed"
)

type Hackathon struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title" gorm:"not null;size:200"`
	Description  string                      `json:"description" gorm:"type:text"`
	StartDate    time.Time                   `json:"start_date"`
	EndDate      time.Time                   `json:"end_date"`
	Status       HackathonStatus             `json:"status" gorm:"size:20;index"`
	SkillLevel   string                      `json:"skill_level" gorm:"size:50"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"autoCreateTime:false"`
}

func (Hackathon) TableName() string {
	return "hackathons"
}

// HackathonParticipant links a user to a hackathon. The composite unique index
// keeps at most one row per (user, hackathon) pair.
type HackathonParticipant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_hackathon_participant_pair,priority:1"`
	HackathonID uint      `json:"hackathon_id" gorm:"not null;uniqueIndex:idx_hackathon_participant_pair,priority:2;index"`
	JoinedAt    time.Time `json:"joined_at"`
}

func (HackathonParticipant) TableName() string {
	return "hackathon_participants"
}
