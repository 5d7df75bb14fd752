package catalog

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
	rg.GET("/services", h.List)
	rg.GET("/services/:id", h.Get)
	rg.GET("/services/:id/technicians", h.Technicians)
}

func (h *Handler) List(c *gin.Context) {
	services, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "failed to list services")
		return
	}

	response.Success(c, http.StatusOK, services)
}

func (h *Handler) Get(c *gin.Context) {
	svc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "service not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to load service")
		}
		return
	}

	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) Technicians(c *gin.Context) {
	technicians, err := h.service.TechniciansFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "service not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to list technicians")
		}
		return
	}

	response.Success(c, http.StatusOK, technicians)
}
