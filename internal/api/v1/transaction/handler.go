package transaction

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cisnux-seed/transaction-service/internal/apierrors"
	"github.com/cisnux-seed/transaction-service/internal/middleware"
	"github.com/cisnux-seed/transaction-service/internal/services"
	"github.com/cisnux-seed/transaction-service/internal/utils"
)

// Handler serves the external transaction history endpoints.
type Handler struct {
	service *services.TransactionQueryService
}

func NewHandler(service *services.TransactionQueryService) *Handler {
	return &Handler{service: service}
}

// ListTransactions godoc
// @Summary List historical transactions
// @Description Get a paginated list of historical transactions, most recent first.
// @Tags transaction
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Items per page" default(10)
// @Param X-Consumer-Custom-ID header string true "External service id"
// @Param X-API-Key header string true "API key id"
// @Success 200 {object} utils.WebResponse{data=[]models.TransactionResp}
// @Failure 400 {object} utils.WebResponse
// @Failure 401 {object} utils.WebResponse
// @Failure 500 {object} utils.WebResponse
// @Router /api/transaction/histories [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, bindErrorMessage(err)))
		return
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "missing consumer identity headers"))
		return
	}

	transactions, err := h.service.GetTransactions(c.Request.Context(), caller, q.Page, q.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.service.GetTransactionCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewPaginatedResponse(
		"transactions retrieved successfully", total, q.Page, q.Size, transactions))
}

// GetTransactionByID godoc
// @Summary Get one historical transaction
// @Description Look up a historical transaction by id.
// @Tags transaction
// @Produce json
// @Param id path string true "Transaction id"
// @Param X-Consumer-Custom-ID header string true "External service id"
// @Success 200 {object} utils.WebResponse{data=models.HistoricalTransaction}
// @Failure 401 {object} utils.WebResponse
// @Failure 404 {object} utils.WebResponse
// @Failure 500 {object} utils.WebResponse
// @Router /api/transaction/histories/{id} [get]
func (h *Handler) GetTransactionByID(c *gin.Context) {
	id := c.Param("id")

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "missing consumer identity headers"))
		return
	}

	transaction, err := h.service.GetTransactionByID(c.Request.Context(), id, caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("transaction retrieved successfully", transaction))
}

func respondError(c *gin.Context, err error) {
	if apiErr, ok := apierrors.AsAPIError(err); ok {
		c.JSON(apiErr.StatusCode, utils.NewErrorResponse(apiErr.StatusCode, apiErr.Message))
		return
	}

	zap.L().Error("unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
}

func bindErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			if e.Tag() == "min" {
				return "page and size must be greater than 0"
			}
			return fmt.Sprintf("invalid value for %s", e.Field())
		}
	}
	return "invalid query parameters"
}
