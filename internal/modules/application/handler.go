package application

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
	rg.POST("/technicians/apply", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing required application fields")
		return
	}

	a, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "invalid application")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to submit application")
		}
		return
	}

	response.Success(c, http.StatusCreated, a)
}
