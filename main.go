package main

import (
	"log"

	"shoperp/cmd"
	"shoperp/internal/config"
	"shoperp/internal/container"
	"shoperp/internal/database"
	"shoperp/internal/logger"
	"shoperp/internal/middleware"
	"shoperp/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zapLogger := logger.NewLogger(cfg.Log.Level)
	defer zapLogger.Sync()

	db, err := database.NewPostgresConnection(
		cfg.Database.URL,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
	)
	if err != nil {
		zapLogger.Fatal("Could not connect to the database: " + err.Error())
	}
	defer db.Close()

	zapLogger.Info("Connected to the database successfully")

	appContainer := container.NewAppContainer(db, zapLogger)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(zapLogger))

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitCount, cfg.Server.RateLimitWindow)
	router.Use(limiter.Middleware())

	routes.RegisterAPIRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	zapLogger.Info("Starting server on " + cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		zapLogger.Fatal("Server stopped: " + err.Error())
	}
}
