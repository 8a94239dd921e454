package combos

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

const combosTestDDL = `
CREATE TABLE combos (
	id TEXT PRIMARY KEY DEFAULT (
		lower(hex(randomblob(4))) || '-' || lower(hex(randomblob(2))) ||
		'-4' || substr(lower(hex(randomblob(2))), 2) ||
		'-' || substr('89ab', 1 + (abs(random()) % 4), 1) || substr(lower(hex(randomblob(2))), 2) ||
		'-' || lower(hex(randomblob(6)))
	),
	titulo TEXT NOT NULL,
	descricao TEXT,
	preco NUMERIC NOT NULL,
	imagem TEXT,
	ativo BOOLEAN NOT NULL DEFAULT TRUE,
	criado_em DATETIME,
	atualizado_em DATETIME
);
`

func newTestService(t *testing.T) Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.Exec(combosTestDDL).Error; err != nil {
		t.Fatalf("failed to create combos: %v", err)
	}
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestComboLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	desc := "Pizza grande + refrigerante"
	if _, err := svc.Create(ctx, CreateComboInput{
		Title:       " Combo Família ",
		Description: &desc,
		Price:       decimal.RequireFromString("89.90"),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 combo, got %d", len(listed))
	}
	combo := listed[0]
	if combo.Title != "Combo Família" {
		t.Fatalf("expected trimmed titulo, got %q", combo.Title)
	}
	if !combo.Price.Equal(decimal.RequireFromString("89.90")) {
		t.Fatalf("unexpected preco %s", combo.Price)
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active combo, got %d", len(active))
	}

	if err := svc.SetActive(ctx, combo.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	active, err = svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active after toggle: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected storefront listing to hide inactive combo, got %d", len(active))
	}
	listed, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("list after toggle: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected back-office listing to keep inactive combo, got %d", len(listed))
	}

	if err := svc.Delete(ctx, combo.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty listing after delete, got %d", len(listed))
	}

	err = svc.Delete(ctx, combo.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestComboCreateValidations(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name  string
		input CreateComboInput
	}{
		{name: "empty title", input: CreateComboInput{Title: "  ", Price: decimal.RequireFromString("10")}},
		{name: "negative price", input: CreateComboInput{Title: "Combo", Price: decimal.RequireFromString("-1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestComboSetActiveMissingRecord(t *testing.T) {
	svc := newTestService(t)

	err := svc.SetActive(context.Background(), uuid.New(), true)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
