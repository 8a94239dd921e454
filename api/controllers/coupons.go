package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/api/responses"
	"github.com/planetpizza/planetpizza-backend/api/validators"
	couponsvc "github.com/planetpizza/planetpizza-backend/internal/coupons"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
)

type createCouponRequest struct {
	Code        string          `json:"codigo" validate:"required,min=3,max=40"`
	Description *string         `json:"descricao,omitempty" validate:"omitempty,max=500"`
	Type        string          `json:"tipo" validate:"required"`
	Value       decimal.Decimal `json:"valor" validate:"required"`
	PixOnly     bool            `json:"apenas_pix"`
}

func CouponsList(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		result, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func CouponCreate(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		var body createCouponRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), couponsvc.CreateCouponInput{
			Code:        body.Code,
			Description: body.Description,
			Type:        enums.CouponType(body.Type),
			Value:       body.Value,
			PixOnly:     body.PixOnly,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func CouponSetActive(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setActiveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetActive(r.Context(), id, *body.Active); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "ativo": *body.Active})
	}
}

func CouponDelete(svc couponsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "coupon service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "removido": true})
	}
}
