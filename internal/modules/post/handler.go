package post

import (
	"net/http"
	"strconv"

	"photobook/internal/domain"
	"photobook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	files   FileSaver
}

func NewHandler(service *Service, files FileSaver) *Handler {
	return &Handler{service: service, files: files}
}

// RegisterPublicRoutes mounts the read-side endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts/:photographerId", h.ListByPhotographer)
}

// RegisterProtectedRoutes mounts the publish endpoint on an
// identity-guarded group.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/posts", h.Create)
}

// Create accepts a multipart form with an image file plus title and
// description fields.
func (h *Handler) Create(c *gin.Context) {
	v, exists := c.Get("user")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	caller, ok := v.(*domain.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if !caller.CanPost() {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only verified photographers can post")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image is required")
		return
	}

	imagePath, err := h.files.Save(fileHeader)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UPLOAD_ERROR", "Image upload rejected")
		return
	}

	p, err := h.service.Create(c.Request.Context(), caller, imagePath, c.PostForm("title"), c.PostForm("description"))
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only verified photographers can post")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create post")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Post created",
		"post":    p,
	})
}

func (h *Handler) ListByPhotographer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("photographerId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid photographer ID")
		return
	}

	posts, err := h.service.ListByPhotographer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch posts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}
