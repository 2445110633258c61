package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/cisnux-seed/transaction-service/internal/models"
)

// APILogRepository appends rows to api_access_logs.
type APILogRepository struct {
	db *gorm.DB
}

func NewAPILogRepository(db *gorm.DB) *APILogRepository {
	return &APILogRepository{db: db}
}

// Insert appends one access record and returns it with any server-assigned
// fields (generated id, creation timestamp) filled in.
func (r *APILogRepository) Insert(ctx context.Context, accessLog *models.ApiAccessLog) (*models.ApiAccessLog, error) {
	if err := r.db.WithContext(ctx).Create(accessLog).Error; err != nil {
		return nil, err
	}
	return accessLog, nil
}
