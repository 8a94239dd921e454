package coupons

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// CouponDTO is the transport shape of a cupom.
type CouponDTO struct {
	ID          uuid.UUID        `json:"id"`
	Code        string           `json:"codigo"`
	Description *string          `json:"descricao,omitempty"`
	Type        enums.CouponType `json:"tipo"`
	Value       decimal.Decimal  `json:"valor"`
	PixOnly     bool             `json:"apenas_pix"`
	Active      bool             `json:"ativo"`
	CreatedAt   time.Time        `json:"criado_em"`
}

// CreateCouponInput holds the validated payload to create a cupom.
type CreateCouponInput struct {
	Code        string
	Description *string
	Type        enums.CouponType
	Value       decimal.Decimal
	PixOnly     bool
}

// Discount is the outcome of applying a cupom at checkout.
type Discount struct {
	Code   string
	Amount decimal.Decimal
}

func FromModel(c *models.Coupon) *CouponDTO {
	if c == nil {
		return nil
	}
	return &CouponDTO{
		ID:          c.ID,
		Code:        c.Code,
		Description: c.Description,
		Type:        c.Type,
		Value:       c.Value,
		PixOnly:     c.PixOnly,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

func fromModels(records []models.Coupon) []CouponDTO {
	out := make([]CouponDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}
