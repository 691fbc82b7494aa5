package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
)

type dashboardService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) DashboardService {
	return &dashboardService{
		repo:      repo,
		logger:    logger.With("service", "dashboard"),
		publisher: publisher,
	}
}

// Refresh recomputes the dashboard snapshot from users and assessments
func (s *dashboardService) Refresh(ctx context.Context) (*models.DashboardMetrics, error) {
	s.logger.Info("Recomputing dashboard metrics")

	metrics, err := s.repo.Dashboard().Recompute(ctx)
	if err != nil {
		s.logger.Error("Failed to recompute dashboard metrics", "error", err)
		return nil, err
	}

	s.logger.Info("Dashboard metrics recomputed",
		"total_users", metrics.TotalUsers,
		"active_users", metrics.ActiveUsers,
		"assessments_completed", metrics.AssessmentsCompleted,
		"average_score", metrics.AverageScore)
	publishEvent(ctx, s.publisher, s.logger, events.DashboardRecomputed, metrics)
	return metrics, nil
}

func (s *dashboardService) Get(ctx context.Context) (*models.DashboardMetrics, error) {
	metrics, err := s.repo.Dashboard().Get(ctx)
	if err != nil {
		s.logger.Error("Failed to get dashboard metrics", "error", err)
		return nil, err
	}
	if metrics == nil {
		return nil, ErrMetricsNotComputed
	}
	return metrics, nil
}
