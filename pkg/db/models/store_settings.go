package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreSettings is the single config_loja row read by the storefront and
// edited from the admin panel.
type StoreSettings struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreName    string          `gorm:"column:nome_loja;not null"`
	DeliveryFee  decimal.Decimal `gorm:"column:taxa_entrega;type:numeric(12,2);not null;default:0"`
	MinimumOrder decimal.Decimal `gorm:"column:pedido_minimo;type:numeric(12,2);not null;default:0"`
	WhatsApp     *string         `gorm:"column:whatsapp"`
	Address      *string         `gorm:"column:endereco"`
	Hours        *string         `gorm:"column:horario"`
	Open         bool            `gorm:"column:aberto;not null;default:true"`
	UpdatedAt    time.Time       `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (StoreSettings) TableName() string {
	return "config_loja"
}
