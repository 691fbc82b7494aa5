package services

import (
	"context"
	"io"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
)

// ===== SERVICE INTERFACES =====

type UserService interface {
	Create(ctx context.Context, req *models.UserCreateRequest) (*models.User, error)

	// SignIn creates the user on first sign-in and records a login on every later one.
	// The boolean reports whether the user was created.
	SignIn(ctx context.Context, req *models.UserCreateRequest) (*models.User, bool, error)

	RecordLogin(ctx context.Context, id string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListLogins(ctx context.Context) ([]*models.User, error)

	// ExportLogins writes the login report as an xlsx workbook
	ExportLogins(ctx context.Context, w io.Writer) error
}

type AssessmentService interface {
	Save(ctx context.Context, req *models.AssessmentSaveRequest) (*models.Assessment, error)
	Get(ctx context.Context, id string) (*models.Assessment, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Assessment, error)
}

type ChatService interface {
	Save(ctx context.Context, req *models.ChatSaveRequest) (*models.ChatInteraction, error)
	List(ctx context.Context, filters repositories.ChatFilters) ([]*models.ChatInteraction, error)
}

type HackathonService interface {
	Create(ctx context.Context, req *models.HackathonCreateRequest) (*models.Hackathon, error)
	List(ctx context.Context, filters repositories.HackathonFilters) ([]*models.Hackathon, error)
	Join(ctx context.Context, hackathonID uint, req *models.HackathonJoinRequest) (*models.HackathonParticipant, error)

	// ListParticipants returns the roster, most recent join first
	ListParticipants(ctx context.Context, hackathonID uint) ([]*models.HackathonParticipant, error)
}

type DashboardService interface {
	Refresh(ctx context.Context) (*models.DashboardMetrics, error)
	Get(ctx context.Context) (*models.DashboardMetrics, error)
}

// ServiceManager owns the service instances and their shared dependencies
type ServiceManager interface {
	Initialize(ctx context.Context) error

	User() UserService
	Assessment() AssessmentService
	Chat() ChatService
	Hackathon() HackathonService
	Dashboard() DashboardService

	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
