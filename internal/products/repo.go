package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
)

// Repository exposes produto persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new produto.
func (r *Repository) Create(ctx context.Context, record *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Save persists the full model state.
func (r *Repository) Save(ctx context.Context, record *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindByID loads a produto by UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var record models.Product
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindActiveByIDs loads the active produtos matching the given IDs. Used by
// checkout to price items from the catalog.
func (r *Repository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []models.Product
	err := r.db.WithContext(ctx).
		Where("id IN ? AND ativo = ?", ids, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListActive returns the active catalog ordered by category then name.
func (r *Repository) ListActive(ctx context.Context) ([]models.Product, error) {
	var records []models.Product
	err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("categoria, nome").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListAll returns every produto ordered by criado_em descending.
func (r *Repository) ListAll(ctx context.Context) ([]models.Product, error) {
	var records []models.Product
	if err := r.db.WithContext(ctx).Order("criado_em DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// SetActive toggles the ativo flag.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("ativo", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a produto permanently.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
