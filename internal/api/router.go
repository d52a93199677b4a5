package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/saransh-debugs/PixelAlchemy/config"
	"github.com/saransh-debugs/PixelAlchemy/internal/api/v1/generate"
	"github.com/saransh-debugs/PixelAlchemy/internal/api/v1/image"
	"github.com/saransh-debugs/PixelAlchemy/internal/api/v1/pack"
	"github.com/saransh-debugs/PixelAlchemy/internal/api/v1/training"
	"github.com/saransh-debugs/PixelAlchemy/internal/api/v1/upload"
	"github.com/saransh-debugs/PixelAlchemy/internal/api/v1/webhook"
	"github.com/saransh-debugs/PixelAlchemy/internal/database"
	"github.com/saransh-debugs/PixelAlchemy/internal/falai"
	"github.com/saransh-debugs/PixelAlchemy/internal/middleware"
	"github.com/saransh-debugs/PixelAlchemy/internal/services"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Redis only backs webhook replay markers; the correlator works without it.
	if cfg.RedisAddr != "" {
		if err := database.ConnectRedis(cfg); err != nil {
			return nil, err
		}
	}

	gateway := falai.NewClient(cfg)

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Use(middleware.Identity(cfg.JWTSecret, cfg.DefaultOwnerID))

	root := router.Group("/")
	{
		training.RegisterRoutes(root, training.NewHandler(services.NewTrainingService(db, gateway)))

		generationSvc := services.NewGenerationService(db, gateway, cfg.CreditGating)
		generate.RegisterRoutes(root, generate.NewHandler(generationSvc))
		pack.RegisterRoutes(root, pack.NewHandler(generationSvc))
		image.RegisterRoutes(root, image.NewHandler(generationSvc))

		upload.RegisterRoutes(root, upload.NewHandler(services.NewStorageService(cfg)))

		webhook.RegisterRoutes(root, webhook.NewHandler(services.NewWebhookService(db, database.RedisClient)))
	}

	return router, nil
}
