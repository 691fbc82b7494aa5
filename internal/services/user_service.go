package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/validator"
)

const loginReportSheet = "Logins"

var loginReportHeader = []interface{}{"ID", "Email", "Display Name", "Role", "Login Count", "Last Login", "Created At"}

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) UserService {
	return &userService{
		repo:      repo,
		logger:    logger.With("service", "user"),
		validator: validator,
		publisher: publisher,
	}
}

func (s *userService) Create(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}

	user, err := s.repo.User().Create(ctx, newUser(req))
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Failed to create user", "user_id", req.UID, "error", err)
		return nil, err
	}

	s.logger.Info("User created", "user_id", user.ID)
	publishEvent(ctx, s.publisher, s.logger, events.UserCreated, user)
	return user, nil
}

func (s *userService) SignIn(ctx context.Context, req *models.UserCreateRequest) (*models.User, bool, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, false, validationError(errs)
	}

	var (
		user    *models.User
		created bool
	)
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		existing, err := tx.User().GetByID(ctx, req.UID)
		if err != nil {
			return err
		}

		if existing == nil {
			user, err = tx.User().Create(ctx, newUser(req))
			if err == nil {
				created = true
				return nil
			}
			// A concurrent first sign-in may have inserted the row after our read.
			// The failed insert only rolls back its own savepoint.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			s.logger.Debug("User created concurrently, recording login instead", "user_id", req.UID)
		}

		ok, err := tx.User().UpdateLogin(ctx, req.UID)
		if err != nil {
			return err
		}
		if !ok {
			// The duplicate was the email of a different user.
			return ErrUserAlreadyExists
		}
		user, err = tx.User().GetByID(ctx, req.UID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrUserAlreadyExists) {
			return nil, false, ErrUserAlreadyExists
		}
		s.logger.Error("Failed to sign in user", "user_id", req.UID, "error", err)
		return nil, false, err
	}

	if created {
		s.logger.Info("User created on first sign-in", "user_id", user.ID)
		publishEvent(ctx, s.publisher, s.logger, events.UserCreated, user)
	} else {
		s.logger.Debug("User signed in", "user_id", user.ID, "login_count", user.LoginCount)
		publishEvent(ctx, s.publisher, s.logger, events.UserLoggedIn, user)
	}
	return user, created, nil
}

func (s *userService) RecordLogin(ctx context.Context, id string) (*models.User, error) {
	ok, err := s.repo.User().UpdateLogin(ctx, id)
	if err != nil {
		s.logger.Error("Failed to record login", "user_id", id, "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	publishEvent(ctx, s.publisher, s.logger, events.UserLoggedIn, user)
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to get user by email", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ListLogins(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.User().ListByLastLogin(ctx)
	if err != nil {
		s.logger.Error("Failed to list user logins", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *userService) ExportLogins(ctx context.Context, w io.Writer) error {
	users, err := s.ListLogins(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", loginReportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(loginReportSheet)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}
	if err := sw.SetRow("A1", loginReportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, u := range users {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			u.ID,
			u.Email,
			u.DisplayName,
			string(u.Role),
			u.LoginCount,
			u.LastLogin.UTC().Format(time.RFC3339),
			u.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush workbook: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Exported login report", "rows", len(users))
	return nil
}

func newUser(req *models.UserCreateRequest) *models.User {
	return &models.User{
		ID:          req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	}
}
