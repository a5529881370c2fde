package profile

import (
	"net/http"

	"photobook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public browsing endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles", h.ListApproved)
}

func (h *Handler) ListApproved(c *gin.Context) {
	profiles, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch profiles")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profiles": profiles})
}
