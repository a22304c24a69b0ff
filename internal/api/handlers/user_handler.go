package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectin/connectin/internal/services"
)

type UserHandler struct {
	users       services.UserService
	connections services.ConnectionService
}

func NewUserHandler(users services.UserService, connections services.ConnectionService) *UserHandler {
	return &UserHandler{users: users, connections: connections}
}

// Profile serves GET /api/users/:userId: the public profile with the
// viewer's resolved connection status.
func (h *UserHandler) Profile(c *gin.Context) {
	viewerID, ok := requireUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	p, err := h.users.Profile(c.Request.Context(), viewerID, targetID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ConnectionCount serves GET /api/users/:userId/connections.
func (h *UserHandler) ConnectionCount(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	targetID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	count, err := h.connections.AcceptedCount(c.Request.Context(), targetID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
