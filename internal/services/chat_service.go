package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/validator"
)

type chatService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewChatService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ChatService {
	return &chatService{
		repo:      repo,
		logger:    logger.With("service", "chat"),
		validator: validator,
		publisher: publisher,
	}
}

func (s *chatService) Save(ctx context.Context, req *models.ChatSaveRequest) (*models.ChatInteraction, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}

	interaction, err := s.repo.Chat().Save(ctx, req.UserID, req.Message, req.Response)
	if err != nil {
		s.logger.Error("Failed to save chat interaction", "user_id", req.UserID, "error", err)
		return nil, err
	}

	s.logger.Debug("Chat interaction saved", "id", interaction.ID, "user_id", interaction.UserID)
	publishEvent(ctx, s.publisher, s.logger, events.ChatRecorded, interaction)
	return interaction, nil
}

// List applies the filters as given. An inverted date range is not an error, it just matches nothing.
func (s *chatService) List(ctx context.Context, filters repositories.ChatFilters) ([]*models.ChatInteraction, error) {
	interactions, err := s.repo.Chat().List(ctx, filters)
	if err != nil {
		s.logger.Error("Failed to list chat interactions", "error", err)
		return nil, err
	}
	return interactions, nil
}
