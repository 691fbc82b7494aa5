package repositories

import (
	"context"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
)

type HackathonRepository interface {
	Create(ctx context.Context, hackathon *models.Hackathon) (*models.Hackathon, error)
	GetByID(ctx context.Context, id uint) (*models.Hackathon, error)
	List(ctx context.Context, filters HackathonFilters) ([]*models.Hackathon, error)

	// Join registers a participant. Joining twice returns the existing row unchanged.
	Join(ctx context.Context, userID string, hackathonID uint) (*models.HackathonParticipant, error)
	ListParticipants(ctx context.Context, hackathonID uint) ([]*models.HackathonParticipant, error)
}
