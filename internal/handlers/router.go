package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SAP-F-2025/learning-data-service/internal/services"
)

type HandlerManager struct {
	serviceManager    services.ServiceManager
	userHandler       *UserHandler
	assessmentHandler *AssessmentHandler
	chatHandler       *ChatHandler
	hackathonHandler  *HackathonHandler
	dashboardHandler  *DashboardHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger *slog.Logger) *HandlerManager {
	return &HandlerManager{
		serviceManager:    serviceManager,
		userHandler:       NewUserHandler(serviceManager.User(), logger),
		assessmentHandler: NewAssessmentHandler(serviceManager.Assessment(), logger),
		chatHandler:       NewChatHandler(serviceManager.Chat(), logger),
		hackathonHandler:  NewHackathonHandler(serviceManager.Hackathon(), logger),
		dashboardHandler:  NewDashboardHandler(serviceManager.Dashboard(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// User routes. Static segments are registered before /:id.
		users := api.Group("/users")
		{
			users.POST("", hm.userHandler.CreateUser)
			users.POST("/sign-in", hm.userHandler.SignIn)
			users.GET("/logins", hm.userHandler.ListLogins)
			users.GET("/logins/export", hm.userHandler.ExportLogins)
			users.GET("/by-email", hm.userHandler.GetUserByEmail)
			users.GET("/:id", hm.userHandler.GetUser)
			users.POST("/:id/login", hm.userHandler.RecordLogin)
			users.GET("/:id/assessments", hm.assessmentHandler.GetUserAssessments)
		}

		assessments := api.Group("/assessments")
		{
			assessments.POST("", hm.assessmentHandler.SaveAssessment)
			assessments.GET("/:id", hm.assessmentHandler.GetAssessment)
		}

		chat := api.Group("/chat")
		{
			chat.POST("", hm.chatHandler.SaveInteraction)
			chat.GET("", hm.chatHandler.ListInteractions)
		}

		hackathons := api.Group("/hackathons")
		{
			hackathons.POST("", hm.hackathonHandler.CreateHackathon)
			hackathons.GET("", hm.hackathonHandler.ListHackathons)
			hackathons.POST("/:id/join", hm.hackathonHandler.JoinHackathon)
			hackathons.GET("/:id/participants", hm.hackathonHandler.ListParticipants)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/metrics", hm.dashboardHandler.GetMetrics)
			dashboard.POST("/metrics/refresh", hm.dashboardHandler.RefreshMetrics)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "learning-data-service",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "learning-data-service",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
