package booking

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
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id/cancel", h.Cancel)
	rg.PUT("/bookings/:id/rate", h.Rate)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing required booking fields")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "invalid booking request")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.ListForCustomer(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "booking not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to load booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "booking cannot be cancelled")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Rate(c *gin.Context) {
	var req RateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "rating is required")
		return
	}

	b, err := h.service.Rate(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "rating must be between 1 and 5")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "only completed bookings can be rated")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to rate booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}
