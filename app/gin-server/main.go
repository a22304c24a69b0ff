package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/connectin/connectin/config"
	"github.com/connectin/connectin/internal/api/handlers"
	"github.com/connectin/connectin/internal/api/middleware"
	"github.com/connectin/connectin/internal/api/routes"
	"github.com/connectin/connectin/internal/cache"
	"github.com/connectin/connectin/internal/logger"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/services"
	"github.com/connectin/connectin/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	if err := config.Migrate(); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db, err := config.NewPostgres()
	if err != nil {
		log.Fatalf("postgres init failed: %v", err)
	}
	log.Info("PostgreSQL connected")

	rdb, err := config.NewRedis(ctx)
	if err != nil {
		log.Fatalf("redis init failed: %v", err)
	}
	var jobCache cache.Cache
	if rdb != nil {
		jobCache = cache.NewRedisCache(rdb)
		log.Info("Redis connected")
	} else {
		log.Warn("REDIS_ADDR not set, running without cache")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	var uploader storage.Uploader
	staticDir := ""
	if os.Getenv("STORAGE_BACKEND") == "gcs" {
		uploader, err = storage.NewGCSUploader(ctx, os.Getenv("GCS_BUCKET"))
		if err != nil {
			log.Fatalf("gcs init failed: %v", err)
		}
	} else {
		local, err := storage.NewLocalUploader(uploadDir)
		if err != nil {
			log.Fatalf("upload dir init failed: %v", err)
		}
		uploader = local
		staticDir = uploadDir
	}

	userRepo := pgrepo.NewUserRepo(db)
	postRepo := pgrepo.NewPostRepo(db)
	connRepo := pgrepo.NewConnectionRepo(db)
	msgRepo := pgrepo.NewMessageRepo(db)
	jobRepo := pgrepo.NewJobRepo(db)

	secret := []byte(os.Getenv("JWT_SECRET"))

	authSvc := services.NewAuthService(userRepo, secret)
	connSvc := services.NewConnectionService(connRepo)
	userSvc := services.NewUserService(userRepo, connSvc)
	postSvc := services.NewPostService(postRepo)
	msgSvc := services.NewMessageService(msgRepo)
	jobSvc := services.NewJobService(jobRepo, jobCache)
	searchSvc := services.NewSearchService(userRepo, postRepo)
	uploadSvc := services.NewUploadService(uploader)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:       handlers.NewAuthHandler(authSvc),
		User:       handlers.NewUserHandler(userSvc, connSvc),
		Post:       handlers.NewPostHandler(postSvc, uploadSvc),
		Connection: handlers.NewConnectionHandler(connSvc),
		Message:    handlers.NewMessageHandler(msgSvc),
		Job:        handlers.NewJobHandler(jobSvc),
		Search:     handlers.NewSearchHandler(searchSvc),
		Upload:     handlers.NewUploadHandler(uploadSvc, userSvc),
		UploadDir:  staticDir,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
