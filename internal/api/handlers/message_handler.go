package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectin/connectin/internal/services"
	"github.com/connectin/connectin/internal/utils"
)

type MessageHandler struct {
	svc services.MessageService
}

func NewMessageHandler(svc services.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.svc.Conversations(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *MessageHandler) Thread(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherUserId")
	if !ok {
		return
	}

	rows, err := h.svc.Thread(c.Request.Context(), userID, otherID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type SendMessageRequest struct {
	ReceiverID uint64 `json:"receiverId"`
	Content    string `json:"content"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MessageHandler.Send", "invalid request body", err))
		return
	}

	m, err := h.svc.Send(c.Request.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}
