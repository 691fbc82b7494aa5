package repositories

import (
	"context"
	"time"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
)

// ActiveUserWindow is how recent a login must be for a user to count as active
const ActiveUserWindow = 30 * 24 * time.Hour

// DashboardRepository maintains the singleton dashboard metrics row
type DashboardRepository interface {
	// Recompute derives every counter from the users and assessments tables
	// and upserts the singleton row
	Recompute(ctx context.Context) (*models.DashboardMetrics, error)

	// Get returns the singleton row, or nil if Recompute has never run
	Get(ctx context.Context) (*models.DashboardMetrics, error)
}
