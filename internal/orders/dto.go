package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	"github.com/planetpizza/planetpizza-backend/pkg/types"
)

// CheckoutItemInput is one cart line sent by the storefront. Only the
// product reference and quantity are trusted; prices come from the catalog.
type CheckoutItemInput struct {
	ProductID uuid.UUID `json:"produto_id" validate:"required"`
	Qty       int       `json:"qtd" validate:"required,min=1"`
}

// CheckoutInput is the storefront checkout payload.
type CheckoutInput struct {
	CustomerName  string              `json:"nome_cliente" validate:"required"`
	CPF           string              `json:"cpf" validate:"required"`
	Phone         *string             `json:"telefone,omitempty"`
	Mode          enums.OrderMode     `json:"modo" validate:"required"`
	PaymentMethod enums.PaymentMethod `json:"forma_pagamento" validate:"required"`
	Address       *types.Address      `json:"endereco,omitempty"`
	CouponCode    *string             `json:"cupom,omitempty"`
	Items         []CheckoutItemInput `json:"itens" validate:"required,min=1,dive"`
}

// OrderItemDTO is the transport shape of a pedido_itens snapshot row.
type OrderItemDTO struct {
	ID          uuid.UUID             `json:"id"`
	ProductID   *uuid.UUID            `json:"produto_id,omitempty"`
	ProductName string                `json:"nome_produto"`
	Category    enums.ProductCategory `json:"categoria"`
	UnitPrice   decimal.Decimal       `json:"preco_unitario"`
	Qty         int                   `json:"qtd"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
}

// OrderDTO is the transport shape of a pedido.
type OrderDTO struct {
	ID            uuid.UUID           `json:"id"`
	Number        int64               `json:"numero"`
	CustomerID    *uuid.UUID          `json:"cliente_id,omitempty"`
	CustomerName  string              `json:"nome_cliente"`
	Mode          enums.OrderMode     `json:"modo"`
	PaymentMethod enums.PaymentMethod `json:"forma_pagamento"`
	Address       *types.Address      `json:"endereco,omitempty"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discounts     decimal.Decimal     `json:"descontos"`
	DeliveryFee   decimal.Decimal     `json:"taxa_entrega"`
	Total         decimal.Decimal     `json:"total"`
	CouponCode    *string             `json:"cupom,omitempty"`
	AppliedPromos []string            `json:"promocoes_aplicadas,omitempty"`
	CreatedAt     time.Time           `json:"criado_em"`
	Items         []OrderItemDTO      `json:"itens,omitempty"`
}

// ListResult carries one page of pedidos plus the cursor for the next.
type ListResult struct {
	Orders     []OrderDTO `json:"pedidos"`
	NextCursor *string    `json:"next_cursor,omitempty"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:            o.ID,
		Number:        o.Number,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Mode:          o.Mode,
		PaymentMethod: o.PaymentMethod,
		Address:       o.Address,
		Subtotal:      o.Subtotal,
		Discounts:     o.Discounts,
		DeliveryFee:   o.DeliveryFee,
		Total:         o.Total,
		CouponCode:    o.CouponCode,
		AppliedPromos: o.AppliedPromos,
		CreatedAt:     o.CreatedAt,
	}
	for i := range o.Items {
		item := &o.Items[i]
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Category:    item.Category,
			UnitPrice:   item.UnitPrice,
			Qty:         item.Qty,
			Subtotal:    item.Subtotal,
		})
	}
	return dto
}
