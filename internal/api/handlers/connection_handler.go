package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectin/connectin/internal/services"
	"github.com/connectin/connectin/internal/utils"
)

type ConnectionHandler struct {
	svc services.ConnectionService
}

func NewConnectionHandler(svc services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{svc: svc}
}

func (h *ConnectionHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	peers, err := h.svc.ListAccepted(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, peers)
}

// ListAll serves GET /api/connections/all: every other user with the
// viewer's resolved status, used to partition the user's universe into
// invitations / sent requests / connections / suggestions.
func (h *ConnectionHandler) ListAll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.svc.ListAllStatuses(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type ConnectionRequestBody struct {
	ReceiverID uint64 `json:"receiverId"`
}

// Request is idempotent: a duplicate request reports success with a
// distinct message instead of a conflict error.
func (h *ConnectionHandler) Request(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ConnectionRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConnectionHandler.Request", "invalid request body", err))
		return
	}

	already, err := h.svc.Request(c.Request.Context(), userID, req.ReceiverID)
	if err != nil {
		writeError(c, err)
		return
	}

	msg := "Connection request sent."
	if already {
		msg = "Connection request already exists or sent."
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

type ConnectionAcceptBody struct {
	RequesterID uint64 `json:"requesterId"`
}

func (h *ConnectionHandler) Accept(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ConnectionAcceptBody
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConnectionHandler.Accept", "invalid request body", err))
		return
	}

	if err := h.svc.Accept(c.Request.Context(), userID, req.RequesterID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connection accepted."})
}
