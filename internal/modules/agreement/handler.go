package agreement

import (
	"net/http"
	"strconv"

	"photobook/internal/domain"
	"photobook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the agreement endpoints on an identity-guarded
// router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ag := rg.Group("/agreements")
	{
		ag.POST("", h.Create)
		ag.GET("/photographer", h.ListForPhotographer)
		ag.GET("/client", h.ListForClient)
		ag.POST("/:id/accept", h.Accept)
		ag.POST("/:id/reject", h.Reject)
		ag.POST("/:id/contract", h.SetContract)
		ag.POST("/:id/payment", h.SetPayment)
		ag.POST("/:id/review", h.SetReview)
	}
}

func (h *Handler) Create(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.writeError(c, err, "Failed to send agreement")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":   "Agreement sent",
		"agreement": a,
	})
}

func (h *Handler) ListForPhotographer(c *gin.Context) {
	rows, err := h.service.ListForPhotographer(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch agreements")
		return
	}

	out := make([]PhotographerAgreementView, 0, len(rows))
	for _, row := range rows {
		out = append(out, PhotographerAgreementView{
			Agreement:   row.Agreement,
			ClientName:  row.CounterpartName,
			ClientEmail: row.CounterpartEmail,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"agreements": out})
}

func (h *Handler) ListForClient(c *gin.Context) {
	rows, err := h.service.ListForClient(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch agreements")
		return
	}

	out := make([]ClientAgreementView, 0, len(rows))
	for _, row := range rows {
		out = append(out, ClientAgreementView{
			Agreement:         row.Agreement,
			PhotographerName:  row.CounterpartName,
			PhotographerEmail: row.CounterpartEmail,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"agreements": out})
}

func (h *Handler) Accept(c *gin.Context) {
	id, ok := agreementID(c)
	if !ok {
		return
	}

	var req AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Accept(c.Request.Context(), c.GetInt64("user_id"), id, req.ContactDetails)
	if err != nil {
		h.writeError(c, err, "Failed to accept agreement")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Agreement accepted",
		"agreement": a,
	})
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := agreementID(c)
	if !ok {
		return
	}

	a, err := h.service.Reject(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err, "Failed to reject agreement")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Agreement rejected",
		"agreement": a,
	})
}

func (h *Handler) SetContract(c *gin.Context) {
	id, ok := agreementID(c)
	if !ok {
		return
	}

	var req ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.SetContract(c.Request.Context(), c.GetInt64("user_id"), id, *req.ContractDone, req.ContractDuration)
	if err != nil {
		h.writeError(c, err, "Failed to update contract")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Contract updated",
		"agreement": a,
	})
}

func (h *Handler) SetPayment(c *gin.Context) {
	id, ok := agreementID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.SetPayment(c.Request.Context(), c.GetInt64("user_id"), id, *req.PaymentDone)
	if err != nil {
		h.writeError(c, err, "Failed to update payment status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Payment status updated",
		"agreement": a,
	})
}

func (h *Handler) SetReview(c *gin.Context) {
	id, ok := agreementID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.SetReview(c.Request.Context(), c.GetInt64("user_id"), id, req.Review)
	if err != nil {
		h.writeError(c, err, "Failed to submit review")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Review submitted",
		"agreement": a,
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid agreement request")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not authorized")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Agreement not found")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "CONFLICT", "Agreement is no longer pending")
	case ErrNotAccepted:
		response.Error(c, http.StatusConflict, "CONFLICT", "Agreement is not accepted")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func agreementID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid agreement ID")
		return 0, false
	}
	return id, true
}

func currentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return nil, false
	}
	user, ok := v.(*domain.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return nil, false
	}
	return user, true
}
