package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/planetpizza/planetpizza-backend/internal/auth"
	"github.com/planetpizza/planetpizza-backend/internal/staff"
	pkgauth "github.com/planetpizza/planetpizza-backend/pkg/auth"
	"github.com/planetpizza/planetpizza-backend/pkg/config"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

type stubAuthService struct {
	loginResp  *auth.LoginResponse
	loginErr   error
	created    *staff.StaffDTO
	createErr  error
	loginCalls int
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	s.loginCalls++
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResp, nil
}

func (s *stubAuthService) CreateStaff(ctx context.Context, req auth.CreateStaffRequest) (*staff.StaffDTO, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

type stubSessionChecker struct {
	alive bool
}

func (s stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.alive, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "0123456789abcdef0123456789abcdef",
		Issuer:                 "planetpizza-test",
		ExpirationMinutes:      15,
		RefreshTokenTTLMinutes: 60,
	}
}

func postAdminAuth(t *testing.T, handler http.HandlerFunc, body string, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/admin-auth", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func decodeAdminAuth(t *testing.T, resp *httptest.ResponseRecorder) adminAuthResponse {
	t.Helper()
	var payload adminAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestLegacyAdminAuthLoginSuccess(t *testing.T) {
	dto := &staff.StaffDTO{
		ID:       uuid.New(),
		Username: "joao",
		Name:     "João Silva",
		Role:     enums.StaffRoleAdmin,
		Active:   true,
	}
	svc := &stubAuthService{loginResp: &auth.LoginResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Staff:        dto,
	}}
	handler := LegacyAdminAuth(svc, testJWTConfig(), stubSessionChecker{alive: true}, nil)

	resp := postAdminAuth(t, handler, `{"action":"login","usuario":"joao","senha":"pizza123"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	payload := decodeAdminAuth(t, resp)
	if !payload.Success {
		t.Fatalf("expected success=true got %+v", payload)
	}
	if payload.Staff == nil || payload.Staff.Username != "joao" {
		t.Fatalf("expected funcionario in payload got %+v", payload.Staff)
	}
	if payload.AccessToken != "access-token" || payload.RefreshToken != "refresh-token" {
		t.Fatalf("expected token pair got %+v", payload)
	}
}

func TestLegacyAdminAuthLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "Usuário ou senha inválidos")}
	handler := LegacyAdminAuth(svc, testJWTConfig(), stubSessionChecker{}, nil)

	resp := postAdminAuth(t, handler, `{"action":"login","usuario":"joao","senha":"errada"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}

	payload := decodeAdminAuth(t, resp)
	if payload.Success {
		t.Fatalf("expected success=false")
	}
	if payload.Error != "Usuário ou senha inválidos" {
		t.Fatalf("unexpected error message %q", payload.Error)
	}
}

func TestLegacyAdminAuthLoginMissingFields(t *testing.T) {
	svc := &stubAuthService{}
	handler := LegacyAdminAuth(svc, testJWTConfig(), stubSessionChecker{}, nil)

	resp := postAdminAuth(t, handler, `{"action":"login","usuario":"joao"}`, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.loginCalls != 0 {
		t.Fatalf("login must not reach the service on missing fields")
	}
}

func TestLegacyAdminAuthUnknownAction(t *testing.T) {
	handler := LegacyAdminAuth(&stubAuthService{}, testJWTConfig(), stubSessionChecker{}, nil)

	resp := postAdminAuth(t, handler, `{"action":"resetar-tudo"}`, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	payload := decodeAdminAuth(t, resp)
	if payload.Success {
		t.Fatalf("expected success=false")
	}
}

func mintLegacyToken(t *testing.T, cfg config.JWTConfig, role enums.StaffRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg, time.Now().UTC(), pkgauth.AccessTokenPayload{
		StaffID: uuid.New(),
		Role:    role,
		JTI:     uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestLegacyAdminAuthCreateStaffRequiresAdmin(t *testing.T) {
	cfg := testJWTConfig()
	body := `{"action":"criar-funcionario","usuario":"maria","senha":"pizza123","nome":"Maria Souza"}`

	cases := []struct {
		name    string
		bearer  string
		session stubSessionChecker
	}{
		{"missing token", "", stubSessionChecker{alive: true}},
		{"garbage token", "not-a-jwt", stubSessionChecker{alive: true}},
		{"attendant token", mintLegacyToken(t, cfg, enums.StaffRoleAttendant), stubSessionChecker{alive: true}},
		{"revoked session", mintLegacyToken(t, cfg, enums.StaffRoleAdmin), stubSessionChecker{alive: false}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := LegacyAdminAuth(&stubAuthService{}, cfg, tc.session, nil)
			resp := postAdminAuth(t, handler, body, tc.bearer)
			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 got %d", resp.Code)
			}
			payload := decodeAdminAuth(t, resp)
			if payload.Success || payload.Error != "Não autorizado" {
				t.Fatalf("unexpected payload %+v", payload)
			}
		})
	}
}

func TestLegacyAdminAuthCreateStaffSuccess(t *testing.T) {
	cfg := testJWTConfig()
	created := &staff.StaffDTO{
		ID:       uuid.New(),
		Username: "maria",
		Name:     "Maria Souza",
		Role:     enums.StaffRoleAttendant,
		Active:   true,
	}
	handler := LegacyAdminAuth(&stubAuthService{created: created}, cfg, stubSessionChecker{alive: true}, nil)

	token := mintLegacyToken(t, cfg, enums.StaffRoleAdmin)
	resp := postAdminAuth(t, handler, `{"action":"criar-funcionario","usuario":"maria","senha":"pizza123","nome":"Maria Souza"}`, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	payload := decodeAdminAuth(t, resp)
	if !payload.Success || payload.Staff == nil || payload.Staff.Username != "maria" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.AccessToken != "" {
		t.Fatalf("criar-funcionario must not issue tokens")
	}
}

func TestLegacyAdminAuthCreateStaffConflict(t *testing.T) {
	cfg := testJWTConfig()
	svc := &stubAuthService{createErr: pkgerrors.New(pkgerrors.CodeConflict, "Usuário já cadastrado")}
	handler := LegacyAdminAuth(svc, cfg, stubSessionChecker{alive: true}, nil)

	token := mintLegacyToken(t, cfg, enums.StaffRoleAdmin)
	resp := postAdminAuth(t, handler, `{"action":"criar-funcionario","usuario":"maria","senha":"pizza123","nome":"Maria Souza"}`, token)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	payload := decodeAdminAuth(t, resp)
	if payload.Success || payload.Error != "Usuário já cadastrado" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}
