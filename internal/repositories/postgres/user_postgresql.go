package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"gorm.io/gorm"
)

type UserPostgreSQL struct {
	uow *unitOfWork
}

func NewUserPostgreSQL(uow *unitOfWork) repositories.UserRepository {
	return &UserPostgreSQL{uow: uow}
}

// GetByID retrieves a user by primary key
func (u *UserPostgreSQL) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := u.uow.read(ctx, "get_by_id", func(db *gorm.DB) error {
		return db.Where("id = ?", id).First(&user).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by the unique email column
func (u *UserPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.uow.read(ctx, "get_by_email", func(db *gorm.DB) error {
		return db.Where("email = ?", email).First(&user).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (u *UserPostgreSQL) ListByLastLogin(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := u.uow.read(ctx, "list_by_last_login", func(db *gorm.DB) error {
		return db.Order("last_login DESC").Order("id ASC").Find(&users).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (u *UserPostgreSQL) Create(ctx context.Context, user *models.User) (*models.User, error) {
	now := u.uow.timestamp()
	user.CreatedAt = now
	user.LastLogin = now
	user.LoginCount = 1
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := u.uow.write(ctx, "create", func(tx *gorm.DB) error {
		return tx.Create(user).Error
	}); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateLogin increments the counter in the UPDATE itself so concurrent logins never lose a count
func (u *UserPostgreSQL) UpdateLogin(ctx context.Context, id string) (bool, error) {
	now := u.uow.timestamp()
	var updated bool

	err := u.uow.write(ctx, "update_login", func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"last_login":  now,
				"login_count": gorm.Expr("login_count + ?", 1),
			})
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to update user login: %w", err)
	}
	return updated, nil
}
