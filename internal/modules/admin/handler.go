package admin

import (
	"errors"
	"net/http"
	"strconv"

	"homepro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to already carry the admin role guard.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/applications", h.ListApplications)
	rg.PUT("/admin/applications/:id", h.ReviewApplication)
	rg.GET("/admin/bookings", h.ListBookings)
	rg.PUT("/admin/bookings/:id/status", h.UpdateBookingStatus)
}

func (h *Handler) ListApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	apps, err := h.service.ListApplications(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "invalid status filter")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to list applications")
		}
		return
	}

	response.Success(c, http.StatusOK, apps)
}

func (h *Handler) ReviewApplication(c *gin.Context) {
	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "status is required")
		return
	}

	a, err := h.service.ReviewApplication(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "invalid application status")
		case errors.Is(err, ErrApplicationNotFound):
			response.Error(c, http.StatusNotFound, "application not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to review application")
		}
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *Handler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, err := h.service.ListBookings(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "status is required")
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "invalid booking status transition")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to update booking status")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}
