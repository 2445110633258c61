package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cisnux-seed/transaction-service/internal/models"
)

// TransactionRepository is a read-only accessor over historical_transactions.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// ListRecent returns at most limit transactions ordered most recent first,
// skipping offset rows. Each call issues a fresh query.
func (r *TransactionRepository) ListRecent(ctx context.Context, limit, offset int) ([]models.HistoricalTransaction, error) {
	var transactions []models.HistoricalTransaction
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindByID looks up a transaction by primary key. A missing row is (nil, nil),
// not an error.
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*models.HistoricalTransaction, error) {
	var transaction models.HistoricalTransaction
	err := r.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Count returns the total number of rows in the table.
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.HistoricalTransaction{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
