package handlers

import (
	"errors"
	"net/http"

	"github.com/xtharshh/kwick-backend/services/chat"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves the chat message endpoints.
type MessageHandler struct {
	Service chat.ChatService
}

func NewMessageHandler(svc chat.ChatService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

// CreateMessageHandler handles POST /api/messages.
func (h *MessageHandler) CreateMessageHandler(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
		Role    string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	msg, err := h.Service.SaveMessage(c.Request.Context(), body.Message, body.Role)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetMessagesHandler handles GET /api/messages, returning the last ten
// minutes of chat.
func (h *MessageHandler) GetMessagesHandler(c *gin.Context) {
	msgs, err := h.Service.RecentMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}
