package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/services"
)

type ErrorResponse = models.ErrorResponse

// BaseHandler carries the logger shared by every handler
type BaseHandler struct {
	logger *slog.Logger
}

func NewBaseHandler(logger *slog.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	h.logger.InfoContext(c.Request.Context(), msg, append(requestAttrs(c), args...)...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(requestAttrs(c), args...)
	h.logger.ErrorContext(c.Request.Context(), msg, append(args, "error", err)...)
}

// bindJSON decodes the body and writes a 400 when it is not valid JSON
func (h *BaseHandler) bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		resp := ErrorResponse{Message: "Validation failed"}
		for _, ve := range validationErrors {
			resp.ValidationErrors = append(resp.ValidationErrors, models.ValidationErrorResponse{
				Field:   ve.Field,
				Rule:    ve.Rule,
				Message: ve.Message,
			})
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
	case errors.Is(err, services.ErrAssessmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Assessment not found"})
	case errors.Is(err, services.ErrHackathonNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Hackathon not found"})
	case errors.Is(err, services.ErrMetricsNotComputed):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Dashboard metrics have not been computed yet"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Resource not found"})
	case errors.Is(err, services.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "User already exists"})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}

func requestAttrs(c *gin.Context) []any {
	attrs := []any{"method", c.Request.Method, "path", c.FullPath()}
	if id := c.GetString("request_id"); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	return attrs
}
