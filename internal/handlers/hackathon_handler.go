package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/services"
)

type HackathonHandler struct {
	BaseHandler
	service services.HackathonService
}

func NewHackathonHandler(service services.HackathonService, logger *slog.Logger) *HackathonHandler {
	return &HackathonHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	var req models.HackathonCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating hackathon", "title", req.Title)

	hackathon, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hackathon)
}

// ListHackathons lists hackathons newest first, optionally by status
// @Summary List hackathons
// @Tags hackathons
// @Produce json
// @Param status query string false "upcoming, ongoing or completed"
// @Success 200 {array} models.Hackathon
// @Router /hackathons [get]
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	var filters repositories.HackathonFilters
	if raw := c.Query("status"); raw != "" {
		status := models.HackathonStatus(raw)
		switch status {
		case models.HackathonUpcoming, models.HackathonOngoing, models.HackathonCompleted:
			filters.Status = &status
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid status parameter",
				Details: "Status must be 'upcoming', 'ongoing', or 'completed'",
			})
			return
		}
	}

	h.LogRequest(c, "Listing hackathons", "status", c.Query("status"))

	hackathons, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathons)
}

// JoinHackathon registers a participant. Joining again returns the existing registration.
// @Summary Join hackathon
// @Tags hackathons
// @Accept json
// @Produce json
// @Param id path int true "Hackathon ID"
// @Param body body models.HackathonJoinRequest true "Participant"
// @Success 200 {object} models.HackathonParticipant
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Router /hackathons/{id}/join [post]
func (h *HackathonHandler) JoinHackathon(c *gin.Context) {
	id, ok := hackathonID(c)
	if !ok {
		return
	}

	var req models.HackathonJoinRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Joining hackathon", "hackathon_id", id, "user_id", req.UserID)

	participant, err := h.service.Join(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}

// ListParticipants returns who joined a hackathon, most recent first
// @Summary List hackathon participants
// @Tags hackathons
// @Produce json
// @Param id path int true "Hackathon ID"
// @Success 200 {array} models.HackathonParticipant
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Router /hackathons/{id}/participants [get]
func (h *HackathonHandler) ListParticipants(c *gin.Context) {
	id, ok := hackathonID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Listing hackathon participants", "hackathon_id", id)

	participants, err := h.service.ListParticipants(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, participants)
}

func hackathonID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid hackathon ID",
			Details: err.Error(),
		})
		return 0, false
	}
	return uint(id), true
}
