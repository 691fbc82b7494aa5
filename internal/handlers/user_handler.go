package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"github.com/SAP-F-2025/learning-data-service/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type UserHandler struct {
	BaseHandler
	service services.UserService
}

func NewUserHandler(service services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateUser registers a user
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserCreateRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.UserCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating user", "user_id", req.UID)

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// SignIn creates the user on first sign-in and records a login afterwards
// @Summary Sign in
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserCreateRequest true "User"
// @Success 200 {object} models.User "Existing user, login recorded"
// @Success 201 {object} models.User "New user"
// @Router /users/sign-in [post]
func (h *UserHandler) SignIn(c *gin.Context) {
	var req models.UserCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Signing in user", "user_id", req.UID)

	user, created, err := h.service.SignIn(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

// GetUser retrieves a user by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	h.LogRequest(c, "Getting user", "user_id", userID)

	user, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Query parameter 'email' is required",
		})
		return
	}

	h.LogRequest(c, "Getting user by email")

	user, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// RecordLogin bumps the login counter of an existing user
// @Summary Record login
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /users/{id}/login [post]
func (h *UserHandler) RecordLogin(c *gin.Context) {
	userID := c.Param("id")
	h.LogRequest(c, "Recording login", "user_id", userID)

	user, err := h.service.RecordLogin(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListLogins returns every user, most recent login first
// @Summary List user logins
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/logins [get]
func (h *UserHandler) ListLogins(c *gin.Context) {
	h.LogRequest(c, "Listing user logins")

	users, err := h.service.ListLogins(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

func (h *UserHandler) ExportLogins(c *gin.Context) {
	h.LogRequest(c, "Exporting user logins")

	var buf bytes.Buffer
	if err := h.service.ExportLogins(c.Request.Context(), &buf); err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("user-logins-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
