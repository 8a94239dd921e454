package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// Staff is a funcionario row: the back-office identity used for admin panel
// logins. PasswordHash holds either a legacy plaintext value or the
// sha256$salt$digest representation; it never leaves the persistence layer.
type Staff struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string          `gorm:"column:usuario;type:text;not null;uniqueIndex"`
	PasswordHash string          `gorm:"column:senha_hash;not null"`
	Name         string          `gorm:"column:nome;not null"`
	Role         enums.StaffRole `gorm:"column:papel;type:staff_role;not null;default:'atendente'"`
	Active       bool            `gorm:"column:ativo;not null;default:true"`
	CreatedAt    time.Time       `gorm:"column:criado_em;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (Staff) TableName() string {
	return "funcionarios"
}
