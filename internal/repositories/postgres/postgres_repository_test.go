package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"gorm.io/gorm"
)

func TestPostgreSQLRepository_WithTransaction(t *testing.T) {
	repo, _ := testRepository(t)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := repo.WithTransaction(ctx, func(tx repositories.Repository) error {
			if _, err := tx.User().Create(ctx, &models.User{ID: "u1", Email: "u1@example.com"}); err != nil {
				return err
			}
			_, err := tx.User().UpdateLogin(ctx, "u1")
			return err
		})
		if err != nil {
			t.Fatalf("WithTransaction: %v", err)
		}

		user, err := repo.User().GetByID(ctx, "u1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if user == nil || user.LoginCount != 2 {
			t.Fatalf("expected committed user with login_count 2, got %+v", user)
		}
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := repo.WithTransaction(ctx, func(tx repositories.Repository) error {
			if _, err := tx.User().Create(ctx, &models.User{ID: "u2", Email: "u2@example.com"}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}

		user, err := repo.User().GetByID(ctx, "u2")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if user != nil {
			t.Fatalf("expected rollback, found %+v", user)
		}
	})
}

func TestPostgreSQLRepository_WriteRollsBackOnPanic(t *testing.T) {
	repo, _ := testRepository(t)
	ctx := context.Background()
	uow := newUnitOfWork(repo.db, repo.logger, repo.now, "TestRepository")

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = uow.write(ctx, "panic", func(tx *gorm.DB) error {
			if err := tx.Create(&models.User{ID: "u1", Email: "u1@example.com"}).Error; err != nil {
				return err
			}
			panic("storage fault")
		})
	}()

	if n := countRows(t, repo.db, &models.User{}); n != 0 {
		t.Fatalf("expected rollback after panic, found %d users", n)
	}
}

func TestRepositoryManager(t *testing.T) {
	db := testDB(t)
	rm := NewRepositoryManager(RepositoryConfig{DB: db})

	if err := rm.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error before Initialize")
	}
	if err := rm.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if rm.GetRepository() == nil {
		t.Fatal("expected repository after Initialize")
	}
	if err := rm.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	if err := rm.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if err := NewRepositoryManager(RepositoryConfig{}).Initialize(); err == nil {
		t.Fatal("expected error without database")
	}
}
