package transaction

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/cisnux-seed/transaction-service/internal/cache"
	"github.com/cisnux-seed/transaction-service/internal/models"
	"github.com/cisnux-seed/transaction-service/internal/repositories"
	"github.com/cisnux-seed/transaction-service/internal/services"
)

type metaBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	Size    int    `json:"size"`
}

type responseBody struct {
	Meta metaBody        `json:"meta"`
	Data json.RawMessage `json:"data"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.HistoricalTransaction{}, &models.ApiAccessLog{})
	if err != nil {
		panic("failed to migrate database")
	}

	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	t.Cleanup(mr.Close)

	svc := services.NewTransactionQueryService(
		repositories.NewTransactionRepository(db),
		repositories.NewAPILogRepository(db),
		cache.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()})),
	)

	r := gin.New()
	apiGroup := r.Group("/api")
	RegisterRoutes(apiGroup, svc)
	return r, db
}

func seedTransactions(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]models.HistoricalTransaction, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, models.HistoricalTransaction{
			ID:                fmt.Sprintf("trx-%d", i),
			UserID:            int64(100 + i),
			AccountID:         fmt.Sprintf("acc-%d", i),
			TransactionID:     fmt.Sprintf("ext-%d", i),
			TransactionType:   models.TransactionTypePayment,
			TransactionStatus: models.TransactionStatusSuccess,
			Amount:            decimal.NewFromInt(int64(i * 1000)),
			BalanceBefore:     decimal.NewFromInt(int64(i * 10000)),
			BalanceAfter:      decimal.NewFromInt(int64(i*10000 - i*1000)),
			Currency:          "IDR",
			CreatedAt:         base.Add(-time.Duration(i) * time.Minute),
			UpdatedAt:         base.Add(-time.Duration(i) * time.Minute),
		})
	}
	assert.NoError(t, db.Create(&rows).Error)
}

func doRequest(r *gin.Engine, target string, withHeaders bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	if withHeaders {
		req.Header.Set("X-Consumer-Custom-ID", "svc-wallet")
		req.Header.Set("X-Forwarded-For", "10.1.2.3")
		req.Header.Set("X-API-Key", "key-123")
		req.Header.Set("User-Agent", "handler-test")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListTransactions(t *testing.T) {
	r, db := setupTestRouter(t)
	seedTransactions(t, db, 12)

	w := doRequest(r, "/api/transaction/histories?page=1&size=10", true)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp responseBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "200", resp.Meta.Code)
	assert.Equal(t, "transactions retrieved successfully", resp.Meta.Message)
	assert.Equal(t, int64(12), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Size)

	var data []models.TransactionResp
	assert.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data, 10)
	assert.Equal(t, "trx-1", data[0].ID)

	// Every successful list read appends one audit row.
	var logs []models.ApiAccessLog
	assert.NoError(t, db.Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, "/api/transactions", logs[0].Endpoint)
}

func TestListTransactionsDefaults(t *testing.T) {
	r, db := setupTestRouter(t)
	seedTransactions(t, db, 3)

	w := doRequest(r, "/api/transaction/histories", true)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp responseBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Size)
}

func TestListTransactionsInvalidPage(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, target := range []string{
		"/api/transaction/histories?page=0",
		"/api/transaction/histories?size=-1",
		"/api/transaction/histories?page=abc",
	} {
		w := doRequest(r, target, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp responseBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "400", resp.Meta.Code)
		assert.Equal(t, "null", string(resp.Data))
	}
}

func TestListTransactionsMissingHeaders(t *testing.T) {
	r, db := setupTestRouter(t)
	seedTransactions(t, db, 3)

	w := doRequest(r, "/api/transaction/histories", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var logs []models.ApiAccessLog
	assert.NoError(t, db.Find(&logs).Error)
	assert.Empty(t, logs)
}

func TestGetTransactionByID(t *testing.T) {
	r, db := setupTestRouter(t)
	seedTransactions(t, db, 3)

	w := doRequest(r, "/api/transaction/histories/trx-2", true)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp responseBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "200", resp.Meta.Code)
	assert.Equal(t, "transaction retrieved successfully", resp.Meta.Message)

	var data models.HistoricalTransaction
	assert.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "trx-2", data.ID)
	assert.Equal(t, "acc-2", data.AccountID)

	var logs []models.ApiAccessLog
	assert.NoError(t, db.Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, "/api/transactions/trx-2", logs[0].Endpoint)
}

func TestGetTransactionByIDWithAPIKeyQueryParam(t *testing.T) {
	r, db := setupTestRouter(t)
	seedTransactions(t, db, 3)

	req, _ := http.NewRequest(http.MethodGet, "/api/transaction/histories/trx-1?X-API-Key=key-123", nil)
	req.Header.Set("X-Consumer-Custom-ID", "svc-wallet")
	req.Header.Set("X-Forwarded-For", "10.1.2.3")
	req.Header.Set("User-Agent", "handler-test")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	r, db := setupTestRouter(t)
	seedTransactions(t, db, 3)

	w := doRequest(r, "/api/transaction/histories/trx-404", true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp responseBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "404", resp.Meta.Code)
	assert.Equal(t, "Transaction with id trx-404 not found", resp.Meta.Message)
	assert.Equal(t, "null", string(resp.Data))

	var logs []models.ApiAccessLog
	assert.NoError(t, db.Find(&logs).Error)
	assert.Empty(t, logs)
}
