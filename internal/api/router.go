package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cisnux-seed/transaction-service/config"
	"github.com/cisnux-seed/transaction-service/internal/api/v1/transaction"
	"github.com/cisnux-seed/transaction-service/internal/cache"
	"github.com/cisnux-seed/transaction-service/internal/database"
	"github.com/cisnux-seed/transaction-service/internal/middleware"
	"github.com/cisnux-seed/transaction-service/internal/repositories"
	"github.com/cisnux-seed/transaction-service/internal/services"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if _, err = database.Connect(cfg.DSN()); err != nil {
		return nil, err
	}

	if err = database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderConsumerID, middleware.HeaderForwardedFor, middleware.HeaderAPIKey},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	store := cache.NewStore(database.RedisClient)
	transactionRepo := repositories.NewTransactionRepository(database.DB)
	apiLogRepo := repositories.NewAPILogRepository(database.DB)
	queryService := services.NewTransactionQueryService(transactionRepo, apiLogRepo, store)

	apiGroup := router.Group("/api")
	{
		transaction.RegisterRoutes(apiGroup, queryService)
	}

	return router, nil
}
