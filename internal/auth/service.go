package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/internal/staff"
	pkgAuth "github.com/planetpizza/planetpizza-backend/pkg/auth"
	"github.com/planetpizza/planetpizza-backend/pkg/auth/session"
	"github.com/planetpizza/planetpizza-backend/pkg/config"
	"github.com/planetpizza/planetpizza-backend/pkg/db"
	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
	"github.com/planetpizza/planetpizza-backend/pkg/security"
)

const invalidCredentialsMessage = "Usuário ou senha inválidos"

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	CreateStaff(ctx context.Context, req CreateStaffRequest) (*staff.StaffDTO, error)
}

type staffRepository interface {
	Create(ctx context.Context, dto staff.CreateStaffDTO) (*models.Staff, error)
	FindActiveByUsername(ctx context.Context, username string) (*models.Staff, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
}

type service struct {
	staff       staffRepository
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	StaffRepo      staffRepository
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	Logger         *logger.Logger
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.StaffRepo == nil {
		return nil, fmt.Errorf("staff repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		staff:       params.StaffRepo,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		logg:        params.Logger,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "usuario e senha são obrigatórios")
	}

	record, err := s.staff.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup funcionario")
	}

	if !security.VerifyPassword(req.Password, record.PasswordHash) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	if !security.IsHashed(record.PasswordHash) {
		s.migrateLegacyPassword(ctx, record, req.Password)
	}

	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		StaffID: record.ID,
		Role:    record.Role,
		JTI:     accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store refresh token")
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Staff:        staff.FromModel(record),
	}, nil
}

// migrateLegacyPassword upgrades an untagged stored value to the salted
// representation. Best effort: a failed write is logged and login proceeds.
func (s *service) migrateLegacyPassword(ctx context.Context, record *models.Staff, password string) {
	hashed, err := security.HashPassword(password, s.passwordCfg)
	if err == nil {
		err = s.staff.UpdatePasswordHash(ctx, record.ID, hashed)
	}
	if err != nil {
		if s.logg != nil {
			logCtx := s.logg.WithStaffID(ctx, record.ID.String())
			logCtx = s.logg.WithField(logCtx, "error", err.Error())
			s.logg.Warn(logCtx, "auth.password_migration.failed")
		}
		return
	}
	record.PasswordHash = hashed
}

func (s *service) CreateStaff(ctx context.Context, req CreateStaffRequest) (*staff.StaffDTO, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "usuario, senha e nome são obrigatórios")
	}

	role := enums.StaffRoleAttendant
	if req.Role != "" {
		parsed, err := enums.ParseStaffRole(req.Role)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "papel inválido")
		}
		role = parsed
	}

	hashed, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	record, err := s.staff.Create(ctx, staff.CreateStaffDTO{
		Username:     username,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         role,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "funcionarios_usuario_lower_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Usuário já cadastrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create funcionario")
	}

	return staff.FromModel(record), nil
}
