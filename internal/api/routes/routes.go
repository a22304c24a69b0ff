package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/connectin/connectin/internal/api/handlers"
	"github.com/connectin/connectin/internal/api/middleware"
)

type Deps struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Post       *handlers.PostHandler
	Connection *handlers.ConnectionHandler
	Message    *handlers.MessageHandler
	Job        *handlers.JobHandler
	Search     *handlers.SearchHandler
	Upload     *handlers.UploadHandler

	// UploadDir, when set, is served statically under /uploads.
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	api := r.Group("/api")

	// Public: registration and login only.
	api.POST("/register", d.Auth.Register)
	api.POST("/login", d.Auth.Login)

	auth := api.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/posts", d.Post.List)
	auth.POST("/posts", d.Post.Create)
	auth.GET("/posts/:postId", d.Post.Get)
	auth.GET("/posts/:postId/hashtags", d.Post.Hashtags)
	auth.GET("/posts/:postId/comments", d.Post.Comments)
	auth.POST("/posts/:postId/comments", d.Post.AddComment)

	auth.GET("/users/:userId", d.User.Profile)
	auth.GET("/users/:userId/connections", d.User.ConnectionCount)
	auth.POST("/upload/profile", d.Upload.ProfileImage)

	auth.GET("/connections", d.Connection.List)
	auth.GET("/connections/all", d.Connection.ListAll)
	auth.POST("/connections/request", d.Connection.Request)
	auth.POST("/connections/accept", d.Connection.Accept)

	auth.GET("/messages/conversations", d.Message.Conversations)
	auth.GET("/messages/:otherUserId", d.Message.Thread)
	auth.POST("/messages", d.Message.Send)

	auth.GET("/jobs", d.Job.List)
	auth.POST("/jobs", middleware.RequireEmployer(), d.Job.Create)

	auth.GET("/search/users", d.Search.Users)
	auth.GET("/search/posts", d.Search.Posts)
	auth.GET("/search/hashtags", d.Search.Hashtags)
}
