package repositories

import (
	"context"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
)

// ChatRepository is an append-only log of chat interactions
type ChatRepository interface {
	Save(ctx context.Context, userID, message, response string) (*models.ChatInteraction, error)
	List(ctx context.Context, filters ChatFilters) ([]*models.ChatInteraction, error)
}
