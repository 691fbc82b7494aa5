package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-data-service/internal/services"
)

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ===== DASHBOARD ENDPOINTS =====

// GetMetrics returns the last computed dashboard snapshot
// @Summary Get dashboard metrics
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardMetrics
// @Failure 404 {object} ErrorResponse "Never computed"
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	h.LogRequest(c, "Getting dashboard metrics")

	metrics, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// RefreshMetrics recomputes the snapshot from users and assessments
// @Summary Recompute dashboard metrics
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardMetrics
// @Router /dashboard/metrics/refresh [post]
func (h *DashboardHandler) RefreshMetrics(c *gin.Context) {
	h.LogRequest(c, "Refreshing dashboard metrics")

	metrics, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
