package services

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/learning-data-service/internal/validator"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")

	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAssessmentNotFound = fmt.Errorf("assessment %w", ErrNotFound)
	ErrHackathonNotFound  = fmt.Errorf("hackathon %w", ErrNotFound)
	ErrMetricsNotComputed = fmt.Errorf("dashboard metrics %w", ErrNotFound)
)

// ValidationErrors is re-exported so handlers only depend on this package
type ValidationErrors = validator.ValidationErrors

func validationError(errs validator.ValidationErrors) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, errs)
}
