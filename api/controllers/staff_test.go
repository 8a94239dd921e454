package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/internal/staff"
	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
)

const funcionariosListDDL = `
CREATE TABLE funcionarios (
	id TEXT PRIMARY KEY,
	usuario TEXT NOT NULL,
	senha_hash TEXT NOT NULL,
	nome TEXT NOT NULL,
	papel TEXT NOT NULL DEFAULT 'atendente',
	ativo BOOLEAN NOT NULL DEFAULT TRUE,
	criado_em DATETIME,
	atualizado_em DATETIME
);
`

func newStaffListHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.Exec(funcionariosListDDL).Error; err != nil {
		t.Fatalf("failed to create funcionarios: %v", err)
	}
	rows := []*models.Staff{
		{ID: uuid.New(), Username: "ana", PasswordHash: "x", Name: "Ana", Role: enums.StaffRoleAdmin, Active: true},
		{ID: uuid.New(), Username: "bruno", PasswordHash: "x", Name: "Bruno", Role: enums.StaffRoleAttendant, Active: true},
	}
	for _, row := range rows {
		if err := conn.Create(row).Error; err != nil {
			t.Fatalf("seed funcionario: %v", err)
		}
	}
	logg := logger.New(logger.Options{ServiceName: "test-staff", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return StaffList(staff.NewRepository(conn), logg)
}

func TestStaffListFiltersByRole(t *testing.T) {
	handler := newStaffListHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/funcionarios?papel=admin", nil)
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Data []staff.StaffDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Username != "ana" {
		t.Fatalf("unexpected papel filter result: %+v", payload.Data)
	}
}

func TestStaffListRejectsUnknownRole(t *testing.T) {
	handler := newStaffListHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/funcionarios?papel=gerente", nil)
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown papel, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %q", payload.Error.Code)
	}
	if payload.Error.Message != "papel inválido" {
		t.Fatalf("unexpected message %q", payload.Error.Message)
	}
}
