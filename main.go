package main

import (
	"log"

	"github.com/saransh-debugs/PixelAlchemy/config"
	"github.com/saransh-debugs/PixelAlchemy/internal/api"
	"github.com/saransh-debugs/PixelAlchemy/internal/database"
	"github.com/saransh-debugs/PixelAlchemy/internal/models"
	"github.com/saransh-debugs/PixelAlchemy/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.Model{},
		&models.OutputImage{},
		&models.Pack{},
		&models.PackPrompt{},
		&models.UserCredit{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
