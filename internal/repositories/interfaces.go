package repositories

import (
	"time"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// ChatFilters are optional and combined with AND. Date bounds are inclusive.
type ChatFilters struct {
	UserID    *string    `json:"user_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type HackathonFilters struct {
	Status *models.HackathonStatus `json:"status"`
}
