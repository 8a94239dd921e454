package staff

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// Repository exposes funcionario persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a staff repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new funcionario and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateStaffDTO) (*models.Staff, error) {
	record := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindActiveByUsername retrieves the active funcionario matching the username,
// case-insensitively.
func (r *Repository) FindActiveByUsername(ctx context.Context, username string) (*models.Staff, error) {
	var record models.Staff
	err := r.db.WithContext(ctx).
		Where("LOWER(usuario) = ? AND ativo = ?", strings.ToLower(strings.TrimSpace(username)), true).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByID loads a funcionario by UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Staff, error) {
	var record models.Staff
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdatePasswordHash overwrites the stored password representation. Used by
// the login migration path after a successful legacy verification.
func (r *Repository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("id = ?", id).
		UpdateColumn("senha_hash", hash).Error
}

// SetActive toggles the ativo flag. Deactivation never deletes the row.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Staff{}).
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

// SearchFilter narrows List results. Zero values mean "no filter".
type SearchFilter struct {
	Query string
	Role  enums.StaffRole
}

// List returns funcionarios ordered by criado_em descending, optionally
// filtered by nome/usuario substring and papel.
func (r *Repository) List(ctx context.Context, filter SearchFilter) ([]models.Staff, error) {
	query := r.db.WithContext(ctx).Model(&models.Staff{})

	if term := strings.TrimSpace(filter.Query); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(nome) LIKE ? OR LOWER(usuario) LIKE ?", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("papel = ?", filter.Role)
	}

	var records []models.Staff
	if err := query.Order("criado_em DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
