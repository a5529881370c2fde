package auth

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"photobook/internal/domain"
	"photobook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxPortfolioFiles = 5

// Handler manages all HTTP interactions for registration and login.
type Handler struct {
	service *Service
	files   FileSaver
}

func NewHandler(service *Service, files FileSaver) *Handler {
	return &Handler{service: service, files: files}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.GetMe)
}

// Register accepts a multipart form: name, email, password, role, and for
// photographers pricing (JSON), specialization (comma separated),
// location, experience, bio plus up to five portfolio image files.
func (h *Handler) Register(c *gin.Context) {
	req := RegisterRequest{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     domain.UserRole(c.PostForm("role")),
		Location: c.PostForm("location"),
		Bio:      c.PostForm("bio"),
	}

	if raw := c.PostForm("pricing"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Pricing); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pricing payload")
			return
		}
	}
	if raw := c.PostForm("specialization"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Specializations = append(req.Specializations, s)
			}
		}
	}
	if raw := c.PostForm("experience"); raw != "" {
		years, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || years < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid experience value")
			return
		}
		req.ExperienceYears = years
	}

	if req.Role == domain.RolePhotographer {
		form, err := c.MultipartForm()
		if err == nil && form != nil {
			files := form.File["portfolio"]
			if len(files) > maxPortfolioFiles {
				files = files[:maxPortfolioFiles]
			}
			for _, fh := range files {
				path, err := h.files.Save(fh)
				if err != nil {
					response.Error(c, http.StatusBadRequest, "UPLOAD_ERROR", "Portfolio upload rejected")
					return
				}
				req.Portfolio = append(req.Portfolio, path)
			}
		}
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration data")
		case ErrEmailAlreadyExists:
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    toUserPublic(user),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case ErrVerificationPending:
			response.Error(c, http.StatusForbidden, "VERIFICATION_PENDING", "Verification is pending")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  toUserPublic(user),
		"token": token,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": toUserPublic(user)})
}
