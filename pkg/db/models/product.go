package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// Product is a produto row on the storefront menu.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string                `gorm:"column:nome;not null"`
	Description *string               `gorm:"column:descricao"`
	Category    enums.ProductCategory `gorm:"column:categoria;type:categoria_produto;not null"`
	Price       decimal.Decimal       `gorm:"column:preco;type:numeric(12,2);not null"`
	Image       *string               `gorm:"column:imagem"`
	Active      bool                  `gorm:"column:ativo;not null;default:true"`
	CreatedAt   time.Time             `gorm:"column:criado_em;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (Product) TableName() string {
	return "produtos"
}
