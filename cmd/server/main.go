package main

import (
	"net/http"
	"time"

	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/middleware"
	"gamevault/backend/internal/monitoring"
	"gamevault/backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamevault/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     REST API for the game catalog: play time, weighted ratings and comments.
// @host            localhost:8080
// @BasePath        /api
func main() {
	cfg := config.AppConfig

	logger.Init(cfg.LogLevel, cfg.GinMode)
	monitoring.InitMetrics()

	// Connect to the database
	database.Connect(cfg.DatabaseURL)

	svc := catalog.NewService(store.New(database.DB))
	handler.Init(svc)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(monitoring.PrometheusMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", monitoring.MetricsHandler())

	api := router.Group("/api")
	{
		api.GET("/healthcheck", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"message":   "Game catalog API is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", handler.GetGames)
			gameRoutes.POST("", handler.CreateGame)
			gameRoutes.GET("/:id", handler.GetGameByID)
			gameRoutes.DELETE("/:id", handler.DeleteGame)
			gameRoutes.PATCH("/:id/rating-status", handler.UpdateRatingStatus)
			gameRoutes.PATCH("/:id/play", handler.RecordPlay)
			gameRoutes.POST("/:id/rate", handler.RateGame)
			gameRoutes.POST("/:id/comment", handler.CommentGame)
		}

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", handler.GetUsers)
			userRoutes.POST("", handler.CreateUser)
			userRoutes.GET("/:id", handler.GetUserByID)
			userRoutes.DELETE("/:id", handler.DeleteUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "API endpoint not found"})
	})

	logger.Log.Infof("Server is running on :%s", cfg.Port)
	logger.Log.Info("Swagger UI is available at /swagger/index.html")
	logger.Log.Fatal(router.Run(":" + cfg.Port))
}
