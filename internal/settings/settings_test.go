package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

const configLojaTestDDL = `
CREATE TABLE config_loja (
	id TEXT PRIMARY KEY,
	nome_loja TEXT NOT NULL,
	taxa_entrega NUMERIC NOT NULL DEFAULT 0,
	pedido_minimo NUMERIC NOT NULL DEFAULT 0,
	whatsapp TEXT,
	endereco TEXT,
	horario TEXT,
	aberto BOOLEAN NOT NULL DEFAULT TRUE,
	atualizado_em DATETIME
);
`

func newTestService(t *testing.T, seed bool) Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.Exec(configLojaTestDDL).Error; err != nil {
		t.Fatalf("failed to create config_loja: %v", err)
	}
	if seed {
		row := &models.StoreSettings{
			ID:           uuid.New(),
			StoreName:    "Planet Pizza",
			DeliveryFee:  decimal.RequireFromString("7.00"),
			MinimumOrder: decimal.RequireFromString("30.00"),
			Open:         true,
		}
		if err := conn.Create(row).Error; err != nil {
			t.Fatalf("seed config_loja: %v", err)
		}
	}
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestSettingsGetReadsSeededRow(t *testing.T) {
	svc := newTestService(t, true)

	dto, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.StoreName != "Planet Pizza" {
		t.Fatalf("unexpected nome_loja %q", dto.StoreName)
	}
	if !dto.DeliveryFee.Equal(decimal.RequireFromString("7.00")) {
		t.Fatalf("unexpected taxa_entrega %s", dto.DeliveryFee)
	}
	if !dto.Open {
		t.Fatal("expected loja aberta")
	}
}

func TestSettingsGetMissingRowIsInternal(t *testing.T) {
	svc := newTestService(t, false)

	_, err := svc.Get(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error for missing row, got %v", err)
	}
}

func TestSettingsUpdatePartialPersists(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	fee := decimal.RequireFromString("9.50")
	closed := false
	updated, err := svc.Update(ctx, UpdateSettingsInput{
		DeliveryFee: &fee,
		Open:        &closed,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.DeliveryFee.Equal(fee) {
		t.Fatalf("unexpected taxa_entrega %s", updated.DeliveryFee)
	}
	if updated.Open {
		t.Fatal("expected loja fechada after update")
	}
	if updated.StoreName != "Planet Pizza" {
		t.Fatalf("nome_loja should be untouched, got %q", updated.StoreName)
	}

	reloaded, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.DeliveryFee.Equal(fee) || reloaded.Open {
		t.Fatalf("update did not persist: taxa=%s aberto=%v", reloaded.DeliveryFee, reloaded.Open)
	}
	if !reloaded.MinimumOrder.Equal(decimal.RequireFromString("30.00")) {
		t.Fatalf("pedido_minimo should be untouched, got %s", reloaded.MinimumOrder)
	}
}

func TestSettingsUpdateValidations(t *testing.T) {
	svc := newTestService(t, true)
	empty := "  "
	negative := decimal.RequireFromString("-1")

	cases := []struct {
		name  string
		input UpdateSettingsInput
	}{
		{name: "empty store name", input: UpdateSettingsInput{StoreName: &empty}},
		{name: "negative delivery fee", input: UpdateSettingsInput{DeliveryFee: &negative}},
		{name: "negative minimum order", input: UpdateSettingsInput{MinimumOrder: &negative}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
