package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator wraps go-playground/validator with the rules used by request DTOs
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the domain rules registered.
// It panics if a rule cannot be registered.
func New() *Validator {
	validate := validator.New()

	// Report JSON field names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v := &Validator{validate: validate}
	v.registerRules()
	return v
}

// Validate validates a struct and returns nil when it is valid
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "request", Message: err.Error(), Rule: "struct"}}
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func (v *Validator) registerRules() {
	mustRegister(v.validate, "user_role", func(fl validator.FieldLevel) bool {
		switch models.UserRole(fl.Field().String()) {
		case models.RoleUser, models.RoleAdmin:
			return true
		}
		return false
	})

	mustRegister(v.validate, "hackathon_status", func(fl validator.FieldLevel) bool {
		switch models.HackathonStatus(fl.Field().String()) {
		case models.HackathonUpcoming, models.HackathonOngoing, models.HackathonCompleted:
			return true
		}
		return false
	})

	// scores are percentages
	mustRegister(v.validate, "assessment_score", func(fl validator.FieldLevel) bool {
		score := fl.Field().Float()
		return score >= 0 && score <= 100
	})
}

// mustRegister panics when the rule is rejected
func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: failed to register rule %q: %v", tag, err))
	}
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be before %s", fe.Param())
	case "user_role":
		return "must be one of: user, admin"
	case "hackathon_status":
		return "must be one of: upcoming, ongoing, completed"
	case "assessment_score":
		return "must be between 0 and 100"
	default:
		return fmt.Sprintf("failed on %s validation", fe.Tag())
	}
}
