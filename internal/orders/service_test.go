package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetpizza/planetpizza-backend/internal/coupons"
	"github.com/planetpizza/planetpizza-backend/internal/customers"
	"github.com/planetpizza/planetpizza-backend/internal/settings"
	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/pagination"
	"github.com/planetpizza/planetpizza-backend/pkg/types"
)

type stubOrderRepo struct {
	created *models.Order
	orders  []models.Order
	next    *pagination.Cursor
}

func (s *stubOrderRepo) CreateWithItems(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = uuid.New()
	order.Number = 101
	order.CreatedAt = time.Now()
	s.created = order
	return order, nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], nil
		}
	}
	return nil, assert.AnError
}

func (s *stubOrderRepo) List(ctx context.Context, params pagination.Params) ([]models.Order, *pagination.Cursor, error) {
	return s.orders, s.next, nil
}

type stubCatalog struct {
	products []models.Product
}

func (s *stubCatalog) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	return s.products, nil
}

type stubCoupons struct {
	discount *coupons.Discount
	err      error
	calls    int
}

func (s *stubCoupons) Apply(ctx context.Context, subtotal decimal.Decimal, code string, payment enums.PaymentMethod) (*coupons.Discount, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.discount, nil
}

type stubCustomers struct {
	upserted *customers.UpsertCustomerInput
}

func (s *stubCustomers) Upsert(ctx context.Context, input customers.UpsertCustomerInput) (*customers.CustomerDTO, error) {
	s.upserted = &input
	return &customers.CustomerDTO{ID: uuid.New(), Name: input.Name, CPF: input.CPF, Phone: input.Phone}, nil
}

type stubSettings struct {
	dto settings.SettingsDTO
}

func (s *stubSettings) Get(ctx context.Context) (*settings.SettingsDTO, error) {
	out := s.dto
	return &out, nil
}

const testCPF = "52998224725"

func openStore() *stubSettings {
	return &stubSettings{dto: settings.SettingsDTO{
		Open:         true,
		DeliveryFee:  decimal.RequireFromString("7.00"),
		MinimumOrder: decimal.RequireFromString("20.00"),
	}}
}

func newTestService(t *testing.T, repo *stubOrderRepo, catalog *stubCatalog, cps *stubCoupons, cfg *stubSettings) (Service, *stubCustomers) {
	t.Helper()
	custs := &stubCustomers{}
	svc, err := NewService(ServiceParams{
		OrderRepo: repo,
		Catalog:   catalog,
		Coupons:   cps,
		Customers: custs,
		Settings:  cfg,
	})
	require.NoError(t, err)
	return svc, custs
}

func catalogWith(prices map[uuid.UUID]string) *stubCatalog {
	catalog := &stubCatalog{}
	for id, price := range prices {
		catalog.products = append(catalog.products, models.Product{
			ID:       id,
			Name:     "Pizza Calabresa",
			Category: enums.ProductCategorySavoryPizza,
			Price:    decimal.RequireFromString(price),
			Active:   true,
		})
	}
	return catalog
}

func TestCheckoutPricesFromCatalog(t *testing.T) {
	pizzaID := uuid.New()
	repo := &stubOrderRepo{}
	svc, custs := newTestService(t, repo, catalogWith(map[uuid.UUID]string{pizzaID: "45.90"}), &stubCoupons{}, openStore())

	order, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModePickup,
		PaymentMethod: enums.PaymentMethodCash,
		Items:         []CheckoutItemInput{{ProductID: pizzaID, Qty: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "91.80", order.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", order.DeliveryFee.StringFixed(2))
	assert.Equal(t, "91.80", order.Total.StringFixed(2))
	assert.Equal(t, int64(101), order.Number)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "45.90", order.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, 2, order.Items[0].Qty)

	require.NotNil(t, custs.upserted)
	assert.Equal(t, testCPF, custs.upserted.CPF)
}

func TestCheckoutDeliveryAddsFeeFromSettings(t *testing.T) {
	pizzaID := uuid.New()
	repo := &stubOrderRepo{}
	svc, _ := newTestService(t, repo, catalogWith(map[uuid.UUID]string{pizzaID: "30.00"}), &stubCoupons{}, openStore())

	order, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModeDelivery,
		PaymentMethod: enums.PaymentMethodPix,
		Address:       &types.Address{Street: "Rua das Laranjeiras", Number: "10", Neighborhood: "Centro", City: "São Paulo", PostalCode: "01310000"},
		Items:         []CheckoutItemInput{{ProductID: pizzaID, Qty: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "7.00", order.DeliveryFee.StringFixed(2))
	assert.Equal(t, "37.00", order.Total.StringFixed(2))
}

func TestCheckoutAppliesCoupon(t *testing.T) {
	pizzaID := uuid.New()
	repo := &stubOrderRepo{}
	code := "PROMO10"
	cps := &stubCoupons{discount: &coupons.Discount{Code: code, Amount: decimal.RequireFromString("8.00")}}
	svc, _ := newTestService(t, repo, catalogWith(map[uuid.UUID]string{pizzaID: "40.00"}), cps, openStore())

	order, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModePickup,
		PaymentMethod: enums.PaymentMethodPix,
		CouponCode:    &code,
		Items:         []CheckoutItemInput{{ProductID: pizzaID, Qty: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, cps.calls)
	assert.Equal(t, "8.00", order.Discounts.StringFixed(2))
	assert.Equal(t, "72.00", order.Total.StringFixed(2))
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "PROMO10", *order.CouponCode)
	assert.Equal(t, []string{"cupom:PROMO10"}, order.AppliedPromos)
}

func TestCheckoutTotalNeverNegative(t *testing.T) {
	pizzaID := uuid.New()
	repo := &stubOrderRepo{}
	code := "MEGA"
	cps := &stubCoupons{discount: &coupons.Discount{Code: code, Amount: decimal.RequireFromString("25.00")}}
	svc, _ := newTestService(t, repo, catalogWith(map[uuid.UUID]string{pizzaID: "25.00"}), cps, openStore())

	order, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModePickup,
		PaymentMethod: enums.PaymentMethodPix,
		CouponCode:    &code,
		Items:         []CheckoutItemInput{{ProductID: pizzaID, Qty: 1}},
	})
	require.NoError(t, err)
	assert.True(t, order.Total.GreaterThanOrEqual(decimal.Zero))
	assert.Equal(t, "0.00", order.Total.StringFixed(2))
}

func TestCheckoutValidation(t *testing.T) {
	pizzaID := uuid.New()
	valid := func() CheckoutInput {
		return CheckoutInput{
			CustomerName:  "Maria Souza",
			CPF:           testCPF,
			Mode:          enums.OrderModePickup,
			PaymentMethod: enums.PaymentMethodCash,
			Items:         []CheckoutItemInput{{ProductID: pizzaID, Qty: 1}},
		}
	}

	cases := []struct {
		name   string
		mutate func(*CheckoutInput)
	}{
		{"missing name", func(in *CheckoutInput) { in.CustomerName = "  " }},
		{"invalid cpf", func(in *CheckoutInput) { in.CPF = "12345678900" }},
		{"invalid mode", func(in *CheckoutInput) { in.Mode = "DRONE" }},
		{"invalid payment", func(in *CheckoutInput) { in.PaymentMethod = "Cheque" }},
		{"delivery without address", func(in *CheckoutInput) { in.Mode = enums.OrderModeDelivery }},
		{"empty cart", func(in *CheckoutInput) { in.Items = nil }},
		{"non positive qty", func(in *CheckoutInput) { in.Items[0].Qty = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t, &stubOrderRepo{}, catalogWith(map[uuid.UUID]string{pizzaID: "45.00"}), &stubCoupons{}, openStore())
			input := valid()
			tc.mutate(&input)

			_, err := svc.Checkout(context.Background(), input)
			require.Error(t, err)
			appErr := pkgerrors.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
		})
	}
}

func TestCheckoutRejectsClosedStore(t *testing.T) {
	pizzaID := uuid.New()
	cfg := openStore()
	cfg.dto.Open = false
	svc, _ := newTestService(t, &stubOrderRepo{}, catalogWith(map[uuid.UUID]string{pizzaID: "45.00"}), &stubCoupons{}, cfg)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModePickup,
		PaymentMethod: enums.PaymentMethodCash,
		Items:         []CheckoutItemInput{{ProductID: pizzaID, Qty: 1}},
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	assert.Equal(t, "Loja fechada no momento", appErr.Message())
}

func TestCheckoutRejectsBelowMinimum(t *testing.T) {
	drinkID := uuid.New()
	catalog := &stubCatalog{products: []models.Product{{
		ID:       drinkID,
		Name:     "Guaraná 2L",
		Category: enums.ProductCategoryDrink,
		Price:    decimal.RequireFromString("12.00"),
		Active:   true,
	}}}
	svc, _ := newTestService(t, &stubOrderRepo{}, catalog, &stubCoupons{}, openStore())

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModePickup,
		PaymentMethod: enums.PaymentMethodCash,
		Items:         []CheckoutItemInput{{ProductID: drinkID, Qty: 1}},
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	assert.Contains(t, appErr.Message(), "Pedido mínimo")
}

func TestCheckoutRejectsUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t, &stubOrderRepo{}, &stubCatalog{}, &stubCoupons{}, openStore())

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModePickup,
		PaymentMethod: enums.PaymentMethodCash,
		Items:         []CheckoutItemInput{{ProductID: uuid.New(), Qty: 1}},
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	assert.Equal(t, "Produto indisponível", appErr.Message())
}

func TestCheckoutCouponErrorAborts(t *testing.T) {
	pizzaID := uuid.New()
	code := "NADA"
	cps := &stubCoupons{err: pkgerrors.New(pkgerrors.CodeNotFound, "Cupom inválido")}
	repo := &stubOrderRepo{}
	svc, _ := newTestService(t, repo, catalogWith(map[uuid.UUID]string{pizzaID: "45.00"}), cps, openStore())

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		CustomerName:  "Maria Souza",
		CPF:           testCPF,
		Mode:          enums.OrderModePickup,
		PaymentMethod: enums.PaymentMethodPix,
		CouponCode:    &code,
		Items:         []CheckoutItemInput{{ProductID: pizzaID, Qty: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, repo.created)
}

func TestListEncodesNextCursor(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubOrderRepo{
		orders: []models.Order{{ID: uuid.New(), CustomerName: "Maria", Total: decimal.RequireFromString("50.00"), CreatedAt: now}},
		next:   &pagination.Cursor{CreatedAt: now, ID: uuid.New()},
	}
	svc, _ := newTestService(t, repo, &stubCatalog{}, &stubCoupons{}, openStore())

	result, err := svc.List(context.Background(), pagination.Params{Limit: 20})
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	require.NotNil(t, result.NextCursor)

	cursor, err := pagination.ParseCursor(*result.NextCursor)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, repo.next.ID, cursor.ID)
}
