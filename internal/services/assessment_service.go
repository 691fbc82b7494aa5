package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/validator"
)

type assessmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewAssessmentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) AssessmentService {
	return &assessmentService{
		repo:      repo,
		logger:    logger.With("service", "assessment"),
		validator: validator,
		publisher: publisher,
	}
}

// Save records a submitted assessment. Submissions are always stored as completed.
func (s *assessmentService) Save(ctx context.Context, req *models.AssessmentSaveRequest) (*models.Assessment, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}

	assessment := &models.Assessment{
		ID:         req.AssessmentID,
		UserID:     req.UserID,
		Title:      req.Title,
		Skills:     req.Skills,
		Difficulty: req.Difficulty,
		Score:      req.Score,
	}

	saved, err := s.repo.Assessment().Save(ctx, assessment)
	if err != nil {
		s.logger.Error("Failed to save assessment", "user_id", req.UserID, "error", err)
		return nil, err
	}

	s.logger.Info("Assessment saved", "assessment_id", saved.ID, "user_id", saved.UserID, "score", saved.Score)
	publishEvent(ctx, s.publisher, s.logger, events.AssessmentCompleted, saved)
	return saved, nil
}

func (s *assessmentService) Get(ctx context.Context, id string) (*models.Assessment, error) {
	assessment, err := s.repo.Assessment().GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get assessment", "assessment_id", id, "error", err)
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *assessmentService) ListByUser(ctx context.Context, userID string) ([]*models.Assessment, error) {
	assessments, err := s.repo.Assessment().ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list assessments", "user_id", userID, "error", err)
		return nil, err
	}
	return assessments, nil
}
