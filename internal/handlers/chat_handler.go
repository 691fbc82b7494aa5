package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/repositories"
	"github.com/SAP-F-2025/learning-data-service/internal/services"
)

type ChatHandler struct {
	BaseHandler
	service services.ChatService
}

func NewChatHandler(service services.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *ChatHandler) SaveInteraction(c *gin.Context) {
	var req models.ChatSaveRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Saving chat interaction", "user_id", req.UserID)

	interaction, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interaction)
}

// ListInteractions filters by user_id, start_date and end_date (RFC3339, inclusive)
// @Summary List chat interactions
// @Tags chat
// @Produce json
// @Param user_id query string false "User ID"
// @Param start_date query string false "Inclusive lower bound (RFC3339)"
// @Param end_date query string false "Inclusive upper bound (RFC3339)"
// @Success 200 {array} models.ChatInteraction
// @Failure 400 {object} ErrorResponse "Bad date"
// @Router /chat [get]
func (h *ChatHandler) ListInteractions(c *gin.Context) {
	filters, ok := h.parseChatFilters(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Listing chat interactions")

	interactions, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interactions)
}

// ===== HELPER METHODS =====

func (h *ChatHandler) parseChatFilters(c *gin.Context) (repositories.ChatFilters, bool) {
	var filters repositories.ChatFilters

	if userID := c.Query("user_id"); userID != "" {
		filters.UserID = &userID
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"start_date", &filters.StartDate},
		{"end_date", &filters.EndDate},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid " + p.name,
				Details: "Expected an RFC3339 timestamp",
			})
			return filters, false
		}
		t = t.UTC()
		*p.dst = &t
	}

	return filters, true
}
