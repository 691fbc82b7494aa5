package models

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is created on first sign-in and bumped on every login. It is never deleted here.
type User struct {
	ID          string   `json:"id" gorm:"primaryKey;size:255"` // external identity provider uid
	Email       string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	DisplayName string   `json:"display_name" gorm:"size:255"`
	Role        UserRole `json:"role" gorm:"size:50;default:user"`

	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	LastLogin  time.Time `json:"last_login" gorm:"index"`
	LoginCount int       `json:"login_count" gorm:"not null;default:0;check:login_count >= 0"`
}

func (User) TableName() string {
	return "users"
}
