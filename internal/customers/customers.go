package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

// CustomerDTO is the transport shape of a cliente.
type CustomerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Phone     *string   `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"criado_em"`
}

// UpsertCustomerInput is the checkout-time payload. CPF must already be
// check-digit validated by the caller.
type UpsertCustomerInput struct {
	Name  string
	CPF   string
	Phone *string
}

func FromModel(c *models.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// Repository exposes cliente persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a customers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertByCPF inserts the cliente or refreshes nome/telefone when the CPF
// already exists, returning the persisted row either way.
func (r *Repository) UpsertByCPF(ctx context.Context, input UpsertCustomerInput) (*models.Customer, error) {
	record := &models.Customer{
		Name:  strings.TrimSpace(input.Name),
		CPF:   NormalizeCPF(input.CPF),
		Phone: input.Phone,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cpf"}},
			DoUpdates: clause.AssignmentColumns([]string{"nome", "telefone", "atualizado_em"}),
		}).
		Create(record).Error
	if err != nil {
		return nil, err
	}

	// the conflict path does not backfill the generated ID
	if record.ID == uuid.Nil {
		var persisted models.Customer
		if err := r.db.WithContext(ctx).Where("cpf = ?", record.CPF).First(&persisted).Error; err != nil {
			return nil, err
		}
		return &persisted, nil
	}
	return record, nil
}

// List returns clientes ordered by criado_em descending, optionally filtered
// by nome or CPF substring.
func (r *Repository) List(ctx context.Context, query string) ([]models.Customer, error) {
	q := r.db.WithContext(ctx).Model(&models.Customer{})
	if term := strings.TrimSpace(query); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR cpf LIKE ?", pattern, "%"+NormalizeCPF(term)+"%")
	}

	var records []models.Customer
	if err := q.Order("criado_em DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Service exposes cliente operations for checkout and the admin panel.
type Service interface {
	Upsert(ctx context.Context, input UpsertCustomerInput) (*CustomerDTO, error)
	List(ctx context.Context, query string) ([]CustomerDTO, error)
}

type repository interface {
	UpsertByCPF(ctx context.Context, input UpsertCustomerInput) (*models.Customer, error)
	List(ctx context.Context, query string) ([]models.Customer, error)
}

type service struct {
	repo repository
}

// NewService constructs the customers service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Upsert(ctx context.Context, input UpsertCustomerInput) (*CustomerDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nome é obrigatório")
	}
	if !ValidCPF(input.CPF) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "CPF inválido")
	}

	record, err := s.repo.UpsertByCPF(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert cliente")
	}
	return FromModel(record), nil
}

func (s *service) List(ctx context.Context, query string) ([]CustomerDTO, error) {
	records, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list clientes")
	}
	out := make([]CustomerDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out, nil
}
