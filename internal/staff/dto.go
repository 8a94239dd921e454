package staff

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
)

// StaffDTO is the transport shape of a funcionario. It never carries the
// password representation.
type StaffDTO struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"usuario"`
	Name      string          `json:"nome"`
	Role      enums.StaffRole `json:"papel"`
	Active    bool            `json:"ativo"`
	CreatedAt time.Time       `json:"criado_em"`
}

// CreateStaffDTO holds the data required by the repo to persist a funcionario.
// PasswordHash is already in the stored representation.
type CreateStaffDTO struct {
	Username     string
	PasswordHash string
	Name         string
	Role         enums.StaffRole
}

func FromModel(s *models.Staff) *StaffDTO {
	if s == nil {
		return nil
	}
	return &StaffDTO{
		ID:        s.ID,
		Username:  s.Username,
		Name:      s.Name,
		Role:      s.Role,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
	}
}

func (c CreateStaffDTO) ToModel() *models.Staff {
	role := c.Role
	if role == "" {
		role = enums.StaffRoleAttendant
	}
	return &models.Staff{
		Username:     strings.ToLower(strings.TrimSpace(c.Username)),
		PasswordHash: c.PasswordHash,
		Name:         strings.TrimSpace(c.Name),
		Role:         role,
		Active:       true,
	}
}
