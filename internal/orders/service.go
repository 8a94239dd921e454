package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/internal/coupons"
	"github.com/planetpizza/planetpizza-backend/internal/customers"
	"github.com/planetpizza/planetpizza-backend/internal/settings"
	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/pagination"
)

// Service exposes checkout and back-office pedido operations.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*OrderDTO, error)
	List(ctx context.Context, params pagination.Params) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
}

type orderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, params pagination.Params) ([]models.Order, *pagination.Cursor, error)
}

type productCatalog interface {
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

type couponApplier interface {
	Apply(ctx context.Context, subtotal decimal.Decimal, code string, payment enums.PaymentMethod) (*coupons.Discount, error)
}

type customerUpserter interface {
	Upsert(ctx context.Context, input customers.UpsertCustomerInput) (*customers.CustomerDTO, error)
}

type settingsReader interface {
	Get(ctx context.Context) (*settings.SettingsDTO, error)
}

type service struct {
	repo      orderRepository
	catalog   productCatalog
	coupons   couponApplier
	customers customerUpserter
	settings  settingsReader
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	OrderRepo orderRepository
	Catalog   productCatalog
	Coupons   couponApplier
	Customers customerUpserter
	Settings  settingsReader
}

// NewService constructs the orders service.
func NewService(params ServiceParams) (Service, error) {
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("product catalog is required")
	}
	if params.Coupons == nil {
		return nil, fmt.Errorf("coupons service is required")
	}
	if params.Customers == nil {
		return nil, fmt.Errorf("customers service is required")
	}
	if params.Settings == nil {
		return nil, fmt.Errorf("settings service is required")
	}
	return &service{
		repo:      params.OrderRepo,
		catalog:   params.Catalog,
		coupons:   params.Coupons,
		customers: params.Customers,
		settings:  params.Settings,
	}, nil
}

// Checkout prices the cart from the catalog, applies the cupom and delivery
// fee, upserts the cliente, and persists the pedido with snapshot items.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*OrderDTO, error) {
	if err := s.validateCheckout(input); err != nil {
		return nil, err
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Open {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Loja fechada no momento")
	}

	items, subtotal, err := s.priceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	if subtotal.LessThan(cfg.MinimumOrder) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Pedido mínimo de R$ %s", cfg.MinimumOrder.StringFixed(2)))
	}

	discount := decimal.Zero
	var couponCode *string
	var promos pq.StringArray
	if input.CouponCode != nil && strings.TrimSpace(*input.CouponCode) != "" {
		applied, err := s.coupons.Apply(ctx, subtotal, *input.CouponCode, input.PaymentMethod)
		if err != nil {
			return nil, err
		}
		discount = applied.Amount
		couponCode = &applied.Code
		promos = append(promos, "cupom:"+applied.Code)
	}

	deliveryFee := decimal.Zero
	if input.Mode == enums.OrderModeDelivery {
		deliveryFee = cfg.DeliveryFee
	}

	total := subtotal.Sub(discount).Add(deliveryFee)
	if total.IsNegative() {
		total = decimal.Zero
	}

	customer, err := s.customers.Upsert(ctx, customers.UpsertCustomerInput{
		Name:  input.CustomerName,
		CPF:   input.CPF,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:    &customer.ID,
		CustomerName:  customer.Name,
		Mode:          input.Mode,
		PaymentMethod: input.PaymentMethod,
		Address:       input.Address,
		Subtotal:      subtotal,
		Discounts:     discount,
		DeliveryFee:   deliveryFee,
		Total:         total,
		CouponCode:    couponCode,
		AppliedPromos: promos,
		Items:         items,
	}

	persisted, err := s.repo.CreateWithItems(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist pedido")
	}
	return FromModel(persisted), nil
}

func (s *service) validateCheckout(input CheckoutInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "nome_cliente é obrigatório")
	}
	if !customers.ValidCPF(input.CPF) {
		return pkgerrors.New(pkgerrors.CodeValidation, "CPF inválido")
	}
	if !input.Mode.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "modo inválido")
	}
	if !input.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "forma_pagamento inválida")
	}
	if input.Mode == enums.OrderModeDelivery && input.Address == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "endereco é obrigatório para entrega")
	}
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "itens não pode ser vazio")
	}
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "qtd deve ser positiva")
		}
	}
	return nil
}

// priceItems resolves catalog rows for the cart and snapshots name, category,
// and unit price at checkout time.
func (s *service) priceItems(ctx context.Context, lines []CheckoutItemInput) ([]models.OrderItem, decimal.Decimal, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.catalog.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load produtos")
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "Produto indisponível").
				WithDetails(map[string]any{"produto_id": line.ProductID})
		}
		qty := decimal.NewFromInt(int64(line.Qty))
		lineSubtotal := product.Price.Mul(qty)
		subtotal = subtotal.Add(lineSubtotal)

		productID := product.ID
		items = append(items, models.OrderItem{
			ProductID:   &productID,
			ProductName: product.Name,
			Category:    product.Category,
			UnitPrice:   product.Price,
			Qty:         line.Qty,
			Subtotal:    lineSubtotal,
		})
	}
	return items, subtotal, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "cursor inválido")
	}

	records, next, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list pedidos")
	}

	result := &ListResult{Orders: make([]OrderDTO, 0, len(records))}
	for i := range records {
		result.Orders = append(result.Orders, *FromModel(&records[i]))
	}
	if next != nil {
		encoded := pagination.EncodeCursor(*next)
		result.NextCursor = &encoded
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pedido não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load pedido")
	}
	return FromModel(record), nil
}
