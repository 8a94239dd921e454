package billing

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
)

// Repository reads pedidos for the billing reports. It never writes.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a billing repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBetween returns pedidos created in [from, to), oldest first.
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Order, error) {
	var records []models.Order
	err := r.db.WithContext(ctx).
		Where("criado_em >= ? AND criado_em < ?", from, to).
		Order("criado_em ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
