package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a cliente row, keyed by CPF for upsert during checkout.
type Customer struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:nome;not null"`
	CPF       string    `gorm:"column:cpf;type:char(11);not null;uniqueIndex"`
	Phone     *string   `gorm:"column:telefone"`
	CreatedAt time.Time `gorm:"column:criado_em;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (Customer) TableName() string {
	return "clientes"
}
