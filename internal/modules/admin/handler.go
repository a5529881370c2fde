package admin

import (
	"context"
	"net/http"
	"strconv"

	"photobook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the admin login endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/admin/login", h.Login)
}

// RegisterRoutes mounts the moderation endpoints on an admin-guarded
// router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles/pending", h.PendingProfiles)
	rg.POST("/profiles/approve/:id", h.ApproveProfile)
	rg.POST("/profiles/reject/:id", h.RejectProfile)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) PendingProfiles(c *gin.Context) {
	profiles, err := h.service.PendingProfiles(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch pending profiles")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profiles": profiles})
}

func (h *Handler) ApproveProfile(c *gin.Context) {
	h.moderate(c, h.service.ApproveProfile, "Profile approved")
}

func (h *Handler) RejectProfile(c *gin.Context) {
	h.moderate(c, h.service.RejectProfile, "Profile rejected")
}

func (h *Handler) moderate(c *gin.Context, action func(ctx context.Context, profileID int64) error, message string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": message})
}
