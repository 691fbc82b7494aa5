package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/validator"
)

type hackathonService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewHackathonService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) HackathonService {
	return &hackathonService{
		repo:      repo,
		logger:    logger.With("service", "hackathon"),
		validator: validator,
		publisher: publisher,
	}
}

func (s *hackathonService) Create(ctx context.Context, req *models.HackathonCreateRequest) (*models.Hackathon, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}

	status := req.Status
	if status == "" {
		status = models.HackathonUpcoming
	}

	hackathon, err := s.repo.Hackathon().Create(ctx, &models.Hackathon{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate.UTC(),
		EndDate:      req.EndDate.UTC(),
		Status:       status,
		SkillLevel:   req.SkillLevel,
		Technologies: req.Technologies,
	})
	if err != nil {
		s.logger.Error("Failed to create hackathon", "title", req.Title, "error", err)
		return nil, err
	}

	s.logger.Info("Hackathon created", "hackathon_id", hackathon.ID, "status", hackathon.Status)
	publishEvent(ctx, s.publisher, s.logger, events.HackathonCreated, hackathon)
	return hackathon, nil
}

func (s *hackathonService) List(ctx context.Context, filters repositories.HackathonFilters) ([]*models.Hackathon, error) {
	hackathons, err := s.repo.Hackathon().List(ctx, filters)
	if err != nil {
		s.logger.Error("Failed to list hackathons", "error", err)
		return nil, err
	}
	return hackathons, nil
}

// Join is idempotent. Every successful call publishes hackathon.joined with the
// stored row, so consumers key on (user_id, hackathon_id).
func (s *hackathonService) Join(ctx context.Context, hackathonID uint, req *models.HackathonJoinRequest) (*models.HackathonParticipant, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}

	hackathon, err := s.repo.Hackathon().GetByID(ctx, hackathonID)
	if err != nil {
		s.logger.Error("Failed to load hackathon", "hackathon_id", hackathonID, "error", err)
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	participant, err := s.repo.Hackathon().Join(ctx, req.UserID, hackathonID)
	if err != nil {
		s.logger.Error("Failed to join hackathon", "hackathon_id", hackathonID, "user_id", req.UserID, "error", err)
		return nil, err
	}

	s.logger.Info("User joined hackathon", "hackathon_id", hackathonID, "user_id", req.UserID, "joined_at", participant.JoinedAt)
	publishEvent(ctx, s.publisher, s.logger, events.HackathonJoined, participant)
	return participant, nil
}

func (s *hackathonService) ListParticipants(ctx context.Context, hackathonID uint) ([]*models.HackathonParticipant, error) {
	hackathon, err := s.repo.Hackathon().GetByID(ctx, hackathonID)
	if err != nil {
		s.logger.Error("Failed to load hackathon", "hackathon_id", hackathonID, "error", err)
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	participants, err := s.repo.Hackathon().ListParticipants(ctx, hackathonID)
	if err != nil {
		s.logger.Error("Failed to list participants", "hackathon_id", hackathonID, "error", err)
		return nil, err
	}
	return participants, nil
}
