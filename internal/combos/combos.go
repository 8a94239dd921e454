package combos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

// ComboDTO is the transport shape of a combo.
type ComboDTO struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"titulo"`
	Description *string         `json:"descricao,omitempty"`
	Price       decimal.Decimal `json:"preco"`
	Image       *string         `json:"imagem,omitempty"`
	Active      bool            `json:"ativo"`
	CreatedAt   time.Time       `json:"criado_em"`
}

// CreateComboInput holds the validated payload to create a combo.
type CreateComboInput struct {
	Title       string
	Description *string
	Price       decimal.Decimal
	Image       *string
}

func FromModel(c *models.Combo) *ComboDTO {
	if c == nil {
		return nil
	}
	return &ComboDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Image:       c.Image,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

// Repository exposes combo persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a combos repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, record *models.Combo) (*models.Combo, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]models.Combo, error) {
	var records []models.Combo
	err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("criado_em DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]models.Combo, error) {
	var records []models.Combo
	if err := r.db.WithContext(ctx).Order("criado_em DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Combo{}).
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

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Combo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Service exposes combo management and the public listing.
type Service interface {
	ListActive(ctx context.Context) ([]ComboDTO, error)
	List(ctx context.Context) ([]ComboDTO, error)
	Create(ctx context.Context, input CreateComboInput) (*ComboDTO, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, record *models.Combo) (*models.Combo, error)
	ListActive(ctx context.Context) ([]models.Combo, error)
	ListAll(ctx context.Context) ([]models.Combo, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs the combos service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("combos repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListActive(ctx context.Context) ([]ComboDTO, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list combos")
	}
	return fromModels(records), nil
}

func (s *service) List(ctx context.Context) ([]ComboDTO, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list combos")
	}
	return fromModels(records), nil
}

func (s *service) Create(ctx context.Context, input CreateComboInput) (*ComboDTO, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "titulo é obrigatório")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "preco não pode ser negativo")
	}

	record, err := s.repo.Create(ctx, &models.Combo{
		Title:       title,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Active:      true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create combo")
	}
	return FromModel(record), nil
}

func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "combo não encontrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "toggle combo")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "combo não encontrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete combo")
	}
	return nil
}

func fromModels(records []models.Combo) []ComboDTO {
	out := make([]ComboDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}
