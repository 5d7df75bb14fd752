package auth

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
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes mounts the endpoints that need a valid session.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
	rg.POST("/auth/logout", h.Logout)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "user already exists")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	data := gin.H{
		"user":  result.User,
		"token": result.Token,
	}
	if result.ProvisioningDeferred {
		data["provisioning_deferred"] = true
	}
	response.Success(c, http.StatusCreated, data)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "invalid credentials")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *Handler) Me(c *gin.Context) {
	principalID := c.GetString("user_id")

	p, err := h.service.Me(c.Request.Context(), principalID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPrincipalNotFound), errors.Is(err, ErrIdentityNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to load user")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Logout is stateless: bearer tokens simply expire. The endpoint exists so
// clients have a uniform sign-out call.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}
