package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time

	// Repository instances
	user       repositories.UserRepository
	assessment repositories.AssessmentRepository
	chat       repositories.ChatRepository
	hackathon  repositories.HackathonRepository
	dashboard  repositories.DashboardRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB     *gorm.DB
	Logger *slog.Logger

	// Now is the clock used for created/joined/login timestamps. Defaults to time.Now.
	Now func() time.Time
}

// NewPostgreSQLRepository creates a new repository with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return newRepository(config.DB, logger, now)
}

func newRepository(db *gorm.DB, logger *slog.Logger, now func() time.Time) *PostgreSQLRepository {
	repo := &PostgreSQLRepository{
		db:     db,
		logger: logger,
		now:    now,
	}

	repo.user = NewUserPostgreSQL(newUnitOfWork(db, logger, now, "UserRepository"))
	repo.assessment = NewAssessmentPostgreSQL(newUnitOfWork(db, logger, now, "AssessmentRepository"))
	repo.chat = NewChatPostgreSQL(newUnitOfWork(db, logger, now, "ChatRepository"))
	repo.hackathon = NewHackathonPostgreSQL(newUnitOfWork(db, logger, now, "HackathonRepository"))
	repo.dashboard = NewDashboardRepository(newUnitOfWork(db, logger, now, "DashboardRepository"))

	return repo
}

// User returns the user repository
func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

// Assessment returns the assessment repository
func (r *PostgreSQLRepository) Assessment() repositories.AssessmentRepository {
	return r.assessment
}

// Chat returns the chat interaction repository
func (r *PostgreSQLRepository) Chat() repositories.ChatRepository {
	return r.chat
}

// Hackathon returns the hackathon repository
func (r *PostgreSQLRepository) Hackathon() repositories.HackathonRepository {
	return r.hackathon
}

// Dashboard returns the dashboard repository
func (r *PostgreSQLRepository) Dashboard() repositories.DashboardRepository {
	return r.dashboard
}

// WithTransaction executes a function within a database transaction
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create a new repository instance with the transaction
		return fn(newRepository(tx, r.logger, r.now))
	})
}

// Ping checks the health of the database connection
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a new repository manager
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{
		config: config,
	}
}

// Initialize verifies the database connection and builds the repositories
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

// GetRepository returns the repository instance
func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

// HealthCheck checks the health of all repository connections
func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}

	return rm.repo.Ping(ctx)
}

// Shutdown gracefully shuts down all repository connections
func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}

	return rm.repo.Close()
}
