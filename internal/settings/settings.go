package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

// SettingsDTO is the transport shape of the config_loja row.
type SettingsDTO struct {
	StoreName    string          `json:"nome_loja"`
	DeliveryFee  decimal.Decimal `json:"taxa_entrega"`
	MinimumOrder decimal.Decimal `json:"pedido_minimo"`
	WhatsApp     *string         `json:"whatsapp,omitempty"`
	Address      *string         `json:"endereco,omitempty"`
	Hours        *string         `json:"horario,omitempty"`
	Open         bool            `json:"aberto"`
	UpdatedAt    time.Time       `json:"atualizado_em"`
}

// UpdateSettingsInput holds optional mutation values; nil means "keep".
type UpdateSettingsInput struct {
	StoreName    *string
	DeliveryFee  *decimal.Decimal
	MinimumOrder *decimal.Decimal
	WhatsApp     *string
	Address      *string
	Hours        *string
	Open         *bool
}

func FromModel(s *models.StoreSettings) *SettingsDTO {
	if s == nil {
		return nil
	}
	return &SettingsDTO{
		StoreName:    s.StoreName,
		DeliveryFee:  s.DeliveryFee,
		MinimumOrder: s.MinimumOrder,
		WhatsApp:     s.WhatsApp,
		Address:      s.Address,
		Hours:        s.Hours,
		Open:         s.Open,
		UpdatedAt:    s.UpdatedAt,
	}
}

// Repository reads and writes the single config_loja row.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a settings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the settings row. The migration seeds it, so a missing row is a
// deployment fault rather than a user error.
func (r *Repository) Get(ctx context.Context) (*models.StoreSettings, error) {
	var record models.StoreSettings
	if err := r.db.WithContext(ctx).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Save persists the full settings row.
func (r *Repository) Save(ctx context.Context, record *models.StoreSettings) (*models.StoreSettings, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Service exposes the storefront read and the admin update.
type Service interface {
	Get(ctx context.Context) (*SettingsDTO, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error)
}

type repository interface {
	Get(ctx context.Context) (*models.StoreSettings, error)
	Save(ctx context.Context, record *models.StoreSettings) (*models.StoreSettings, error)
}

type service struct {
	repo repository
}

// NewService constructs the settings service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context) (*SettingsDTO, error) {
	record, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "config_loja não inicializada")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load config_loja")
	}
	return FromModel(record), nil
}

func (s *service) Update(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error) {
	record, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load config_loja")
	}

	if input.StoreName != nil {
		name := strings.TrimSpace(*input.StoreName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "nome_loja é obrigatório")
		}
		record.StoreName = name
	}
	if input.DeliveryFee != nil {
		if input.DeliveryFee.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "taxa_entrega não pode ser negativa")
		}
		record.DeliveryFee = *input.DeliveryFee
	}
	if input.MinimumOrder != nil {
		if input.MinimumOrder.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "pedido_minimo não pode ser negativo")
		}
		record.MinimumOrder = *input.MinimumOrder
	}
	if input.WhatsApp != nil {
		record.WhatsApp = input.WhatsApp
	}
	if input.Address != nil {
		record.Address = input.Address
	}
	if input.Hours != nil {
		record.Hours = input.Hours
	}
	if input.Open != nil {
		record.Open = *input.Open
	}

	saved, err := s.repo.Save(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save config_loja")
	}
	return FromModel(saved), nil
}
