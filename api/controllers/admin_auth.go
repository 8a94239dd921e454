package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/planetpizza/planetpizza-backend/internal/auth"
	"github.com/planetpizza/planetpizza-backend/internal/staff"
	pkgauth "github.com/planetpizza/planetpizza-backend/pkg/auth"
	"github.com/planetpizza/planetpizza-backend/pkg/auth/session"
	"github.com/planetpizza/planetpizza-backend/pkg/config"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
)

// adminAuthRequest is the tagged union the legacy admin panel posts to
// /functions/v1/admin-auth. The action field selects the branch.
type adminAuthRequest struct {
	Action   string `json:"action"`
	Username string `json:"usuario"`
	Password string `json:"senha"`
	Name     string `json:"nome"`
	Role     string `json:"papel"`
}

// adminAuthResponse is the wire envelope the panel expects. Every branch
// answers with success plus either funcionario or error.
type adminAuthResponse struct {
	Success      bool            `json:"success"`
	Staff        *staff.StaffDTO `json:"funcionario,omitempty"`
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Error        string          `json:"error,omitempty"`
}

const legacyUnauthorizedMessage = "Não autorizado"

func writeAdminAuth(w http.ResponseWriter, status int, payload adminAuthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAdminAuthError(w http.ResponseWriter, status int, message string) {
	writeAdminAuth(w, status, adminAuthResponse{Success: false, Error: message})
}

// LegacyAdminAuth serves the pre-migration admin panel endpoint. The
// contract is kept byte-compatible: panels in the field parse success,
// funcionario, and error exactly as written here.
func LegacyAdminAuth(svc auth.Service, cfg config.JWTConfig, sessions session.AccessSessionChecker, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeAdminAuthError(w, http.StatusInternalServerError, "serviço indisponível")
			return
		}

		var body adminAuthRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&body); err != nil {
			writeAdminAuthError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		switch body.Action {
		case "login":
			legacyLogin(w, r, svc, logg, body)
		case "criar-funcionario":
			legacyCreateStaff(w, r, svc, cfg, sessions, logg, body)
		default:
			writeAdminAuthError(w, http.StatusBadRequest, "Ação inválida")
		}
	}
}

func legacyLogin(w http.ResponseWriter, r *http.Request, svc auth.Service, logg *logger.Logger, body adminAuthRequest) {
	if strings.TrimSpace(body.Username) == "" || body.Password == "" {
		writeAdminAuthError(w, http.StatusBadRequest, "usuario e senha são obrigatórios")
		return
	}

	result, err := svc.Login(r.Context(), auth.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeLegacyServiceError(r, w, logg, err)
		return
	}

	writeAdminAuth(w, http.StatusOK, adminAuthResponse{
		Success:      true,
		Staff:        result.Staff,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func legacyCreateStaff(w http.ResponseWriter, r *http.Request, svc auth.Service, cfg config.JWTConfig, sessions session.AccessSessionChecker, logg *logger.Logger, body adminAuthRequest) {
	if !legacyAdminVerified(r, cfg, sessions) {
		writeAdminAuthError(w, http.StatusUnauthorized, legacyUnauthorizedMessage)
		return
	}

	created, err := svc.CreateStaff(r.Context(), auth.CreateStaffRequest{
		Username: body.Username,
		Password: body.Password,
		Name:     body.Name,
		Role:     body.Role,
	})
	if err != nil {
		writeLegacyServiceError(r, w, logg, err)
		return
	}

	writeAdminAuth(w, http.StatusOK, adminAuthResponse{Success: true, Staff: created})
}

// legacyAdminVerified accepts only a live admin session. The wire contract
// collapses every failure, including a valid non-admin token, into the
// single 401 response.
func legacyAdminVerified(r *http.Request, cfg config.JWTConfig, sessions session.AccessSessionChecker) bool {
	token, err := parseBearerToken(r)
	if err != nil {
		return false
	}

	claims, err := pkgauth.ParseAccessToken(cfg, token)
	if err != nil || claims.ID == "" {
		return false
	}
	if claims.Role != enums.StaffRoleAdmin {
		return false
	}

	if sessions != nil {
		alive, err := sessions.HasSession(r.Context(), claims.ID)
		if err != nil || !alive {
			return false
		}
	}
	return true
}

func writeLegacyServiceError(r *http.Request, w http.ResponseWriter, logg *logger.Logger, err error) {
	appErr := pkgerrors.As(err)
	if appErr == nil {
		if logg != nil {
			logg.Error(r.Context(), "admin-auth request failed", err)
		}
		writeAdminAuthError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	meta := pkgerrors.MetadataFor(appErr.Code())
	switch appErr.Code() {
	case pkgerrors.CodeValidation, pkgerrors.CodeUnauthorized, pkgerrors.CodeConflict:
		writeAdminAuthError(w, meta.HTTPStatus, appErr.Message())
	case pkgerrors.CodeForbidden:
		writeAdminAuthError(w, http.StatusUnauthorized, legacyUnauthorizedMessage)
	default:
		if logg != nil {
			logg.Error(r.Context(), "admin-auth request failed", err)
		}
		writeAdminAuthError(w, http.StatusInternalServerError, "Erro interno")
	}
}
