package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/services"
)

type AssessmentHandler struct {
	BaseHandler
	service services.AssessmentService
}

func NewAssessmentHandler(service services.AssessmentService, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SaveAssessment stores a submitted assessment as completed
// @Summary Save assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param assessment body models.AssessmentSaveRequest true "Assessment"
// @Success 201 {object} models.Assessment
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Router /assessments [post]
func (h *AssessmentHandler) SaveAssessment(c *gin.Context) {
	var req models.AssessmentSaveRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Saving assessment", "user_id", req.UserID)

	assessment, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

// GetAssessment returns one stored assessment
// @Summary Get assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} models.Assessment
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Router /assessments/{id} [get]
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Getting assessment", "assessment_id", id)

	assessment, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// GetUserAssessments lists a user's assessments, newest first
// @Summary List user assessments
// @Tags assessments
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} models.Assessment
// @Router /users/{id}/assessments [get]
func (h *AssessmentHandler) GetUserAssessments(c *gin.Context) {
	userID := c.Param("id")
	h.LogRequest(c, "Listing user assessments", "user_id", userID)

	assessments, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessments)
}
