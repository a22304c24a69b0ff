package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectin/connectin/internal/services"
	"github.com/connectin/connectin/internal/utils"
)

type PostHandler struct {
	svc     services.PostService
	uploads services.UploadService
}

func NewPostHandler(svc services.PostService, uploads services.UploadService) *PostHandler {
	return &PostHandler{svc: svc, uploads: uploads}
}

// List serves GET /api/posts?sort=latest|oldest.
func (h *PostHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create accepts a multipart form with content, hashtags and an optional
// postImage file. The image is stored first so the post row can carry its
// URL.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	content := c.PostForm("content")
	hashtags := c.PostForm("hashtags")

	var imageURL *string
	if file, err := c.FormFile("postImage"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "PostHandler.Create", "unreadable image upload", err))
			return
		}
		defer f.Close()

		url, err := h.uploads.Upload(c.Request.Context(), userID, file.Filename,
			file.Header.Get("Content-Type"), f)
		if err != nil {
			writeError(c, err)
			return
		}
		imageURL = &url
	}

	postID, err := h.svc.Create(c.Request.Context(), userID, content, hashtags, imageURL)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully!",
		"postId":  postID,
	})
}

func (h *PostHandler) Get(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	row, err := h.svc.Get(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *PostHandler) Hashtags(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	rows, err := h.svc.Hashtags(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *PostHandler) Comments(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	rows, err := h.svc.Comments(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type AddCommentRequest struct {
	Content string `json:"comment_content"`
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PostHandler.AddComment", "invalid request body", err))
		return
	}

	commentID, err := h.svc.AddComment(c.Request.Context(), postID, userID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Comment added!",
		"insertId": commentID,
	})
}
