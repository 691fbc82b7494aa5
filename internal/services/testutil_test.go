package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/learning-data-service/internal/validator"
)

type publishedEvent struct {
	Type string
	Data interface{}
}

// mockEventPublisher records events instead of sending them
type mockEventPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
	closed bool
}

func (m *mockEventPublisher) Publish(_ context.Context, eventType string, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, publishedEvent{Type: eventType, Data: data})
	return nil
}

func (m *mockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockEventPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}

var errBrokerDown = errors.New("broker down")

type testEnv struct {
	db        *gorm.DB
	repo      repositories.Repository
	manager   repositories.RepositoryManager
	publisher *mockEventPublisher
	logger    *slog.Logger
	validator *validator.Validator
	now       time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "services.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	env := &testEnv{
		db:        db,
		publisher: &mockEventPublisher{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: validator.New(),
		now:       time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	config := postgres.RepositoryConfig{
		DB:     db,
		Logger: env.logger,
		Now:    func() time.Time { return env.now },
	}
	env.repo = postgres.NewPostgreSQLRepository(config)
	env.manager = postgres.NewRepositoryManager(config)
	return env
}
