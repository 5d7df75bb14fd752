package user

import (
	"errors"
	"net/http"

	"homepro/internal/domain"
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
	rg.PUT("/user/profile", h.UpdateProfile)
	rg.GET("/user/addresses", h.ListAddresses)
	rg.POST("/user/addresses", h.AddAddress)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPrincipalNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) AddAddress(c *gin.Context) {
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing required address fields")
		return
	}

	addr, err := h.service.AddAddress(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPrincipalNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to add address")
		}
		return
	}

	response.Success(c, http.StatusCreated, addr)
}

func (h *Handler) ListAddresses(c *gin.Context) {
	addrs, err := h.service.ListAddresses(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "failed to list addresses")
		return
	}

	response.Success(c, http.StatusOK, addrs)
}
