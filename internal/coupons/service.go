package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/pkg/db"
	"github.com/planetpizza/planetpizza-backend/pkg/db/models"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
)

var oneHundred = decimal.NewFromInt(100)

// Service exposes cupom management and checkout application.
type Service interface {
	List(ctx context.Context) ([]CouponDTO, error)
	Create(ctx context.Context, input CreateCouponInput) (*CouponDTO, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	Apply(ctx context.Context, subtotal decimal.Decimal, code string, payment enums.PaymentMethod) (*Discount, error)
}

type repository interface {
	Create(ctx context.Context, record *models.Coupon) (*models.Coupon, error)
	FindActiveByCode(ctx context.Context, code string) (*models.Coupon, error)
	ListAll(ctx context.Context) ([]models.Coupon, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs the coupons service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("coupons repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]CouponDTO, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cupons")
	}
	return fromModels(records), nil
}

func (s *service) Create(ctx context.Context, input CreateCouponInput) (*CouponDTO, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "codigo é obrigatório")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tipo inválido")
	}
	if input.Value.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valor não pode ser negativo")
	}
	if input.Type == enums.CouponTypePercent && input.Value.GreaterThan(oneHundred) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "percentual não pode exceder 100")
	}

	record, err := s.repo.Create(ctx, &models.Coupon{
		Code:        code,
		Description: input.Description,
		Type:        input.Type,
		Value:       input.Value,
		PixOnly:     input.PixOnly,
		Active:      true,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "cupons_codigo_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Cupom já cadastrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cupom")
	}
	return FromModel(record), nil
}

func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cupom não encontrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "toggle cupom")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cupom não encontrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete cupom")
	}
	return nil
}

// Apply resolves the code and computes the checkout discount. Percent
// coupons clamp to the subtotal so the discount never exceeds it; Pix-only
// coupons reject any other payment method.
func (s *service) Apply(ctx context.Context, subtotal decimal.Decimal, code string, payment enums.PaymentMethod) (*Discount, error) {
	record, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Cupom inválido")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup cupom")
	}

	if record.PixOnly && payment != enums.PaymentMethodPix {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Cupom válido apenas para pagamento via Pix")
	}

	var amount decimal.Decimal
	switch record.Type {
	case enums.CouponTypePercent:
		amount = subtotal.Mul(record.Value).Div(oneHundred).Round(2)
	case enums.CouponTypeFixedAmount:
		amount = record.Value
	default:
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "tipo de cupom desconhecido")
	}

	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}

	return &Discount{Code: record.Code, Amount: amount}, nil
}
