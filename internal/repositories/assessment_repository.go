package repositories

import (
	"context"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
)

type AssessmentRepository interface {
	// Save stores a submitted assessment with status completed
	Save(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error)
	GetByID(ctx context.Context, id string) (*models.Assessment, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Assessment, error)
}
