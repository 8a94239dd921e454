package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/pagination"
)

// Repository exposes pedido persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithItems persists the pedido and its snapshot rows in one
// transaction, drawing numero from the pedido_numero_seq sequence.
func (r *Repository) CreateWithItems(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.Number == 0 {
			if err := tx.Raw("SELECT nextval('pedido_numero_seq')").Scan(&order.Number).Error; err != nil {
				return err
			}
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// FindByID loads a pedido with its items.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var record models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List pages pedidos newest-first using the (criado_em, id) cursor.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Order, *pagination.Cursor, error) {
	limit := pagination.NormalizeLimit(params.Limit)

	query := r.db.WithContext(ctx).
		Preload("Items").
		Order("criado_em DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, nil, err
	}
	if cursor != nil {
		query = query.Where(
			"(criado_em, id) < (?, ?)",
			cursor.CreatedAt, cursor.ID,
		)
	}

	var records []models.Order
	if err := query.Find(&records).Error; err != nil {
		return nil, nil, err
	}

	var next *pagination.Cursor
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		next = &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return records, next, nil
}
