package repositories

import (
	"context"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
)

// UserRepository persists platform users and their login activity.
// Lookups return (nil, nil) when the user does not exist.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ListByLastLogin returns every user, most recent login first
	ListByLastLogin(ctx context.Context) ([]*models.User, error)

	// Create stamps created_at and last_login with the current time and starts login_count at 1
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// UpdateLogin bumps login_count by one and sets last_login to now.
	// It returns false without writing anything when the user is unknown.
	UpdateLogin(ctx context.Context, id string) (bool, error)
}
