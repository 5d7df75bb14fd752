package payment

import (
	"errors"
	"net/http"

	"homepro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments", h.List)
	rg.POST("/payments", h.Create)
}

// RegisterAdminRoutes mounts refund behind the admin guard.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/:id/refund", h.Refund)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing required payment fields")
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "invalid payment request")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, ErrChargeFailed):
			response.Error(c, http.StatusBadRequest, "payment declined")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to create payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) List(c *gin.Context) {
	payments, err := h.service.ListForCustomer(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "failed to list payments")
		return
	}

	response.Success(c, http.StatusOK, payments)
}

func (h *Handler) Refund(c *gin.Context) {
	p, err := h.service.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "payment not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "only completed payments can be refunded")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to refund payment")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}
