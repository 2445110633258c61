package transaction

import (
	"github.com/gin-gonic/gin"

	"github.com/cisnux-seed/transaction-service/internal/middleware"
	"github.com/cisnux-seed/transaction-service/internal/services"
)

func RegisterRoutes(router *gin.RouterGroup, service *services.TransactionQueryService) {
	h := NewHandler(service)

	group := router.Group("/transaction")
	group.Use(middleware.ConsumerIdentity())
	{
		group.GET("/histories", h.ListTransactions)
		group.GET("/histories/:id", h.GetTransactionByID)
	}
}
