package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectin/connectin/internal/services"
	"github.com/connectin/connectin/internal/utils"
)

type UploadHandler struct {
	uploads services.UploadService
	users   services.UserService
}

func NewUploadHandler(uploads services.UploadService, users services.UserService) *UploadHandler {
	return &UploadHandler{uploads: uploads, users: users}
}

// ProfileImage serves POST /api/upload/profile: stores the image and
// points the caller's profile_image_url at it.
func (h *UploadHandler) ProfileImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("profileImage")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.ProfileImage", "no file uploaded", err))
		return
	}

	f, err := file.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.ProfileImage", "unreadable upload", err))
		return
	}
	defer f.Close()

	url, err := h.uploads.Upload(c.Request.Context(), userID, file.Filename,
		file.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.users.SetProfileImage(c.Request.Context(), userID, url); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile picture uploaded successfully!",
		"url":     url,
	})
}
