package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// OrderItem snapshots one line of a pedido. Name, category, and unit price
// are copied from the product at checkout so later catalog edits do not
// rewrite history.
type OrderItem struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID             `gorm:"column:pedido_id;type:uuid;not null"`
	ProductID   *uuid.UUID            `gorm:"column:produto_id;type:uuid"`
	ProductName string                `gorm:"column:nome_produto;not null"`
	Category    enums.ProductCategory `gorm:"column:categoria;type:categoria_produto;not null"`
	UnitPrice   decimal.Decimal       `gorm:"column:preco_unitario;type:numeric(12,2);not null"`
	Qty         int                   `gorm:"column:qtd;not null"`
	Subtotal    decimal.Decimal       `gorm:"column:subtotal;type:numeric(12,2);not null"`
	CreatedAt   time.Time             `gorm:"column:criado_em;autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "pedido_itens"
}
