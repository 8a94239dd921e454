package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	"github.com/planetpizza/planetpizza-backend/pkg/types"
)

// Order is a pedido row. Monetary columns are snapshots computed at checkout;
// they are never recomputed from the items afterwards.
type Order struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Number        int64               `gorm:"column:numero;not null;uniqueIndex"`
	CustomerID    *uuid.UUID          `gorm:"column:cliente_id;type:uuid"`
	CustomerName  string              `gorm:"column:nome_cliente;not null"`
	Mode          enums.OrderMode     `gorm:"column:modo;type:modo_pedido;not null"`
	PaymentMethod enums.PaymentMethod `gorm:"column:forma_pagamento;type:forma_pagamento;not null"`
	Address       *types.Address      `gorm:"column:endereco;type:jsonb"`
	Subtotal      decimal.Decimal     `gorm:"column:subtotal;type:numeric(12,2);not null"`
	Discounts     decimal.Decimal     `gorm:"column:descontos;type:numeric(12,2);not null;default:0"`
	DeliveryFee   decimal.Decimal     `gorm:"column:taxa_entrega;type:numeric(12,2);not null;default:0"`
	Total         decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null"`
	CouponCode    *string             `gorm:"column:cupom"`
	AppliedPromos pq.StringArray      `gorm:"column:promocoes_aplicadas;type:text[]"`
	CreatedAt     time.Time           `gorm:"column:criado_em;autoCreateTime"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "pedidos"
}
