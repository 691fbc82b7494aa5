package repositories

import "context"

// Repository aggregates the data-access interfaces of the service
type Repository interface {
	User() UserRepository
	Assessment() AssessmentRepository
	Chat() ChatRepository
	Hackathon() HackathonRepository
	Dashboard() DashboardRepository

	// WithTransaction runs fn against repositories bound to one transaction.
	// Every operation called on the inner repository joins that transaction.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
