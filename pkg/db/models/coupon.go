package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// Coupon is a cupom row. Codigo is stored uppercase and unique.
type Coupon struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string           `gorm:"column:codigo;type:text;not null;uniqueIndex"`
	Description *string          `gorm:"column:descricao"`
	Type        enums.CouponType `gorm:"column:tipo;type:tipo_cupom;not null"`
	Value       decimal.Decimal  `gorm:"column:valor;type:numeric(12,2);not null"`
	PixOnly     bool             `gorm:"column:apenas_pix;not null;default:false"`
	Active      bool             `gorm:"column:ativo;not null;default:true"`
	CreatedAt   time.Time        `gorm:"column:criado_em;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (Coupon) TableName() string {
	return "cupons"
}
