package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// ProductDTO is the transport shape of a produto.
type ProductDTO struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"nome"`
	Description *string               `json:"descricao,omitempty"`
	Category    enums.ProductCategory `json:"categoria"`
	Price       decimal.Decimal       `json:"preco"`
	Image       *string               `json:"imagem,omitempty"`
	Active      bool                  `json:"ativo"`
	CreatedAt   time.Time             `json:"criado_em"`
}

// CreateProductInput holds the validated payload to create a produto.
type CreateProductInput struct {
	Name        string
	Description *string
	Category    enums.ProductCategory
	Price       decimal.Decimal
	Image       *string
	Active      *bool
}

// UpdateProductInput holds optional mutation values; nil means "keep".
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *enums.ProductCategory
	Price       *decimal.Decimal
	Image       *string
	Active      *bool
}

// Menu groups the active catalog by category for the storefront.
type Menu struct {
	Categories []MenuCategory `json:"categorias"`
}

// MenuCategory is one storefront section.
type MenuCategory struct {
	Category enums.ProductCategory `json:"categoria"`
	Products []ProductDTO          `json:"produtos"`
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func fromModels(records []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}
