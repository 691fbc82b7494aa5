package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/validator"
)

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	repoManager repositories.RepositoryManager
	logger      *slog.Logger
	validator   *validator.Validator
	publisher   events.EventPublisher

	// Service instances
	userService       UserService
	assessmentService AssessmentService
	chatService       ChatService
	hackathonService  HackathonService
	dashboardService  DashboardService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager. A nil publisher disables change events.
func NewServiceManager(
	repoManager repositories.RepositoryManager,
	logger *slog.Logger,
	validator *validator.Validator,
	publisher events.EventPublisher,
) ServiceManager {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &serviceManager{
		repoManager: repoManager,
		logger:      logger,
		validator:   validator,
		publisher:   publisher,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	if err := sm.repoManager.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}
	repo := sm.repoManager.GetRepository()

	sm.userService = NewUserService(repo, sm.logger, sm.validator, sm.publisher)
	sm.assessmentService = NewAssessmentService(repo, sm.logger, sm.validator, sm.publisher)
	sm.chatService = NewChatService(repo, sm.logger, sm.validator, sm.publisher)
	sm.hackathonService = NewHackathonService(repo, sm.logger, sm.validator, sm.publisher)
	sm.dashboardService = NewDashboardService(repo, sm.logger, sm.publisher)

	if err := sm.repoManager.HealthCheck(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

// Service getters
func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.userService
}

func (sm *serviceManager) Assessment() AssessmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.assessmentService
}

func (sm *serviceManager) Chat() ChatService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.chatService
}

func (sm *serviceManager) Hackathon() HackathonService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.hackathonService
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.dashboardService
}

func (sm *serviceManager) mustBeInitialized() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repoManager.HealthCheck(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.publisher.Close(); err != nil {
		sm.logger.Error("Failed to close event publisher", "error", err)
	}

	if err := sm.repoManager.Shutdown(ctx); err != nil {
		sm.logger.Error("Failed to shutdown repository manager", "error", err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}
