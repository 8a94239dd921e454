package auth

import (
	"github.com/planetpizza/planetpizza-backend/internal/staff"
)

// LoginRequest captures the credentials sent by the admin panel.
type LoginRequest struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse contains the token pair and the sanitized funcionario
// produced by a successful login.
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Staff        *staff.StaffDTO `json:"funcionario"`
}

// CreateStaffRequest provisions a new funcionario. Papel defaults to
// atendente when omitted.
type CreateStaffRequest struct {
	Username string `json:"usuario" validate:"required,min=3"`
	Password string `json:"senha" validate:"required,min=6"`
	Name     string `json:"nome" validate:"required"`
	Role     string `json:"papel" validate:"omitempty,oneof=admin atendente"`
}
