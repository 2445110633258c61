package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cisnux-seed/transaction-service/internal/apierrors"
	"github.com/cisnux-seed/transaction-service/internal/cache"
	"github.com/cisnux-seed/transaction-service/internal/models"
)

// Cache key formats are shared with any process reading the same Redis.
// Changing them breaks interoperability.
const (
	transactionCountKey = "trx_count"

	listCacheTTLMinutes        = 15
	transactionCacheTTLMinutes = 30
	countCacheTTLMinutes       = 5
)

func transactionKey(id string) string {
	return "trx:" + id
}

func transactionListKey(page, size int) string {
	return fmt.Sprintf("trx_list:%d:%d", page, size)
}

// TransactionRepository is the read-only storage contract the query service
// depends on.
type TransactionRepository interface {
	ListRecent(ctx context.Context, limit, offset int) ([]models.HistoricalTransaction, error)
	FindByID(ctx context.Context, id string) (*models.HistoricalTransaction, error)
	Count(ctx context.Context) (int64, error)
}

// APILogRepository appends one audit record per successful external read.
type APILogRepository interface {
	Insert(ctx context.Context, accessLog *models.ApiAccessLog) (*models.ApiAccessLog, error)
}

// CallerContext identifies the external consumer a read runs on behalf of, as
// forwarded by the API gateway.
type CallerContext struct {
	ExternalServiceID string
	APIKeyID          string
	IPAddress         string
	UserAgent         string
}

// TransactionQueryService serves the read path with a cache-aside policy and
// writes one audit record per successful list or lookup, cache hit or not.
// It holds no state across calls; concurrent misses on the same key may both
// populate the cache, which is harmless since both store the same result.
type TransactionQueryService struct {
	transactions TransactionRepository
	apiLogs      APILogRepository
	cache        *cache.Store
}

func NewTransactionQueryService(transactions TransactionRepository, apiLogs APILogRepository, store *cache.Store) *TransactionQueryService {
	return &TransactionQueryService{
		transactions: transactions,
		apiLogs:      apiLogs,
		cache:        store,
	}
}

// GetTransactions lists transactions for one page, most recent first.
func (s *TransactionQueryService) GetTransactions(ctx context.Context, caller CallerContext, page, size int) ([]models.TransactionResp, error) {
	if page <= 0 || size <= 0 {
		return nil, apierrors.NewInvalidParameter("page and size must be greater than 0")
	}

	key := transactionListKey(page, size)
	cached, err := cache.Get[[]models.TransactionResp](ctx, s.cache, key)
	if err != nil {
		return nil, err
	}

	var transactions []models.TransactionResp
	if cached != nil {
		transactions = *cached
	} else {
		// limit grows with the page on purpose; consumers sharing the cache
		// depend on the window this produces.
		limit := page * size
		offset := (page - 1) * size

		rows, err := s.transactions.ListRecent(ctx, limit, offset)
		if err != nil {
			return nil, err
		}

		transactions = make([]models.TransactionResp, 0, len(rows))
		for i := range rows {
			transactions = append(transactions, rows[i].ToResp())
		}

		if err := s.cache.Set(ctx, key, transactions, listCacheTTLMinutes); err != nil {
			return nil, err
		}
	}

	if _, err := s.apiLogs.Insert(ctx, &models.ApiAccessLog{
		ExternalServiceID: caller.ExternalServiceID,
		APIKeyID:          caller.APIKeyID,
		Endpoint:          "/api/transactions",
		HTTPMethod:        models.HTTPMethodGet,
		IPAddress:         caller.IPAddress,
		UserAgent:         caller.UserAgent,
		ResponseStatus:    http.StatusOK,
	}); err != nil {
		return nil, err
	}

	return transactions, nil
}

// GetTransactionByID looks up one transaction. The audit record's endpoint
// carries transactionID as supplied by the caller; the lookup itself uses id.
func (s *TransactionQueryService) GetTransactionByID(ctx context.Context, id string, caller CallerContext, transactionID string) (*models.HistoricalTransaction, error) {
	key := transactionKey(id)
	transaction, err := cache.Get[models.HistoricalTransaction](ctx, s.cache, key)
	if err != nil {
		return nil, err
	}

	if transaction == nil {
		transaction, err = s.transactions.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if transaction == nil {
			// No audit record on this path: only successful reads are logged.
			return nil, apierrors.NewNotFoundResource(fmt.Sprintf("Transaction with id %s not found", id))
		}

		if err := s.cache.Set(ctx, key, transaction, transactionCacheTTLMinutes); err != nil {
			return nil, err
		}
	}

	if _, err := s.apiLogs.Insert(ctx, &models.ApiAccessLog{
		ExternalServiceID: caller.ExternalServiceID,
		APIKeyID:          caller.APIKeyID,
		Endpoint:          "/api/transactions/" + transactionID,
		HTTPMethod:        models.HTTPMethodGet,
		IPAddress:         caller.IPAddress,
		UserAgent:         caller.UserAgent,
		ResponseStatus:    http.StatusOK,
	}); err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetTransactionCount returns the total transaction count. Not audited.
func (s *TransactionQueryService) GetTransactionCount(ctx context.Context) (int64, error) {
	cached, err := cache.Get[int64](ctx, s.cache, transactionCountKey)
	if err != nil {
		return 0, err
	}
	if cached != nil {
		return *cached, nil
	}

	count, err := s.transactions.Count(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, transactionCountKey, count, countCacheTTLMinutes); err != nil {
		return 0, err
	}
	return count, nil
}
