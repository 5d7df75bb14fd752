package chat

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
	rg.GET("/chat/contacts", h.ListContacts)
	rg.GET("/chat/:chatId/messages", h.ListMessages)
	rg.POST("/chat/:chatId/messages", h.Send)
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.service.ListContacts(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "failed to list contacts")
		return
	}

	response.Success(c, http.StatusOK, contacts)
}

func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context(), c.Param("chatId"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrChatNotFound):
			response.Error(c, http.StatusNotFound, "chat not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to list messages")
		}
		return
	}

	response.Success(c, http.StatusOK, messages)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "message content is required")
		return
	}

	msg, err := h.service.Send(c.Request.Context(), c.Param("chatId"), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			response.Error(c, http.StatusBadRequest, "message content cannot be empty")
		case errors.Is(err, ErrChatNotFound):
			response.Error(c, http.StatusNotFound, "chat not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "failed to send message")
		}
		return
	}

	response.Success(c, http.StatusCreated, msg)
}
