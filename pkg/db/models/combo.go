package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Combo is a promotional bundle sold at a single price.
type Combo struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string          `gorm:"column:titulo;not null"`
	Description *string         `gorm:"column:descricao"`
	Price       decimal.Decimal `gorm:"column:preco;type:numeric(12,2);not null"`
	Image       *string         `gorm:"column:imagem"`
	Active      bool            `gorm:"column:ativo;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:criado_em;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (Combo) TableName() string {
	return "combos"
}
