package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

// Service exposes catalog management and the public menu.
type Service interface {
	Menu(ctx context.Context) (*Menu, error)
	List(ctx context.Context) ([]ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, record *models.Product) (*models.Product, error)
	Save(ctx context.Context, record *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListActive(ctx context.Context) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs the catalog service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository is required")
	}
	return &service{repo: repo}, nil
}

// Menu returns the active catalog grouped by category in the storefront's
// fixed order (salgadas, doces, bebidas).
func (s *service) Menu(ctx context.Context) (*Menu, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list catalog")
	}

	grouped := map[enums.ProductCategory][]ProductDTO{}
	for i := range records {
		dto := *FromModel(&records[i])
		grouped[records[i].Category] = append(grouped[records[i].Category], dto)
	}

	menu := &Menu{}
	for _, category := range []enums.ProductCategory{
		enums.ProductCategorySavoryPizza,
		enums.ProductCategorySweetPizza,
		enums.ProductCategoryDrink,
	} {
		if items, ok := grouped[category]; ok {
			menu.Categories = append(menu.Categories, MenuCategory{Category: category, Products: items})
		}
	}
	return menu, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list produtos")
	}
	return fromModels(records), nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nome é obrigatório")
	}
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "categoria inválida")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "preco não pode ser negativo")
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	record, err := s.repo.Create(ctx, &models.Product{
		Name:        name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Image:       input.Image,
		Active:      active,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create produto")
	}
	return FromModel(record), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "produto não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load produto")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "nome é obrigatório")
		}
		record.Name = name
	}
	if input.Description != nil {
		record.Description = input.Description
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "categoria inválida")
		}
		record.Category = *input.Category
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "preco não pode ser negativo")
		}
		record.Price = *input.Price
	}
	if input.Image != nil {
		record.Image = input.Image
	}
	if input.Active != nil {
		record.Active = *input.Active
	}

	saved, err := s.repo.Save(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save produto")
	}
	return FromModel(saved), nil
}

func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "produto não encontrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "toggle produto")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "produto não encontrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete produto")
	}
	return nil
}
