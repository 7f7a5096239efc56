package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scribe/internal/api"
	"scribe/internal/config"
	"scribe/internal/db"
	"scribe/internal/repository"
	"scribe/internal/stt"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	if gin.Mode() == gin.DebugMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database if DATABASE_URL is provided; the server still
	// starts without it, with the database-backed endpoints degraded.
	var repo repository.TranscriptionRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to database. Continuing without database.")
		} else {
			defer pool.Close()
			repo = repository.NewPostgresRepository(pool)
			log.Info().Msg("Database connection established")
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, database-backed endpoints will be unavailable")
	}

	provider, err := stt.CreateProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create STT provider")
	}
	log.Info().Str("provider", provider.Name()).Msg("STT provider initialized")

	r := gin.Default()

	r.Use(corsMiddleware())

	api.RegisterRoutes(r, api.NewHandler(repo, provider, cfg))

	log.Info().Str("port", cfg.Port).Msg("scribe backend running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
