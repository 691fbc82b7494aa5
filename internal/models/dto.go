package models

import "time"

// ===== USER REQUESTS =====

type UserCreateRequest struct {
	UID         string   `json:"uid" validate:"required,max=255"`
	Email       string   `json:"email" validate:"required,email,max=255"`
	DisplayName string   `json:"displayName" validate:"omitempty,max=255"`
	Role        UserRole `json:"role" validate:"omitempty,user_role"`
}

// ===== ASSESSMENT REQUESTS =====

type AssessmentSaveRequest struct {
	AssessmentID string   `json:"assessment_id" validate:"omitempty,max=255"`
	UserID       string   `json:"user_id" validate:"required,max=255"`
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Skills       []string `json:"skills" validate:"omitempty,max=50,dive,max=100"`
	Difficulty   string   `json:"difficulty" validate:"omitempty,max=50"`
	Score        float64  `json:"score" validate:"assessment_score"`
}

// ===== CHAT REQUESTS =====

type ChatSaveRequest struct {
	UserID   string `json:"user_id" validate:"required,max=255"`
	Message  string `json:"message" validate:"required"`
	Response string `json:"response"`
}

// ===== HACKATHON REQUESTS =====

type HackathonCreateRequest struct {
	Title        string          `json:"title" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	StartDate    time.Time       `json:"start_date" validate:"required"`
	EndDate      time.Time       `json:"end_date" validate:"required,gtefield=StartDate"`
	Status       HackathonStatus `json:"status" validate:"omitempty,hackathon_status"`
	SkillLevel   string          `json:"skill_level" validate:"omitempty,max=50"`
	Technologies []string        `json:"technologies" validate:"omitempty,max=50,dive,max=100"`
}

type HackathonJoinRequest struct {
	UserID string `json:"user_id" validate:"required,max=255"`
}

// ===== ERROR RESPONSES =====

type ErrorResponse struct {
	Message          string                    `json:"message"`
	Details          interface{}               `json:"details,omitempty"`
	ValidationErrors []ValidationErrorResponse `json:"validation_errors,omitempty"`
}

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}
