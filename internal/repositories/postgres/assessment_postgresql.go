package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentPostgreSQL struct {
	uow *unitOfWork
}

func NewAssessmentPostgreSQL(uow *unitOfWork) repositories.AssessmentRepository {
	return &AssessmentPostgreSQL{uow: uow}
}

// Save stores a submitted assessment. Only completed submissions reach this layer,
// so status and completion time are always set here.
func (a *AssessmentPostgreSQL) Save(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error) {
	if assessment.ID == "" {
		assessment.ID = uuid.NewString()
	}
	now := a.uow.timestamp()
	assessment.Status = models.AssessmentCompleted
	assessment.CreatedAt = now
	assessment.CompletedAt = &now

	if err := a.uow.write(ctx, "save", func(tx *gorm.DB) error {
		return tx.Create(assessment).Error
	}); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	return assessment, nil
}

func (a *AssessmentPostgreSQL) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := a.uow.read(ctx, "get_by_id", func(db *gorm.DB) error {
		return db.Where("id = ?", id).First(&assessment).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return &assessment, nil
}

// ListByUser returns the user's assessments, newest first
func (a *AssessmentPostgreSQL) ListByUser(ctx context.Context, userID string) ([]*models.Assessment, error) {
	var assessments []*models.Assessment
	err := a.uow.read(ctx, "list_by_user", func(db *gorm.DB) error {
		return db.Where("user_id = ?", userID).
			Order("created_at DESC").
			Order("id ASC").
			Find(&assessments).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}
