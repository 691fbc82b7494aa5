package models

import "time"

// ChatInteraction is an append-only log entry of one chat exchange.
type ChatInteraction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index;size:255"`
	Message   string    `json:"message" gorm:"type:text"`
	Response  string    `json:"response" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
}

func (ChatInteraction) TableName() string {
	return "chat_interactions"
}
