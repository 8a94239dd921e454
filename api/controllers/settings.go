package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/planetpizza/planetpizza-backend/api/responses"
	"github.com/planetpizza/planetpizza-backend/api/validators"
	settingsvc "github.com/planetpizza/planetpizza-backend/internal/settings"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
)

type updateSettingsRequest struct {
	StoreName    *string          `json:"nome_loja,omitempty" validate:"omitempty,min=2,max=120"`
	DeliveryFee  *decimal.Decimal `json:"taxa_entrega,omitempty"`
	MinimumOrder *decimal.Decimal `json:"pedido_minimo,omitempty"`
	WhatsApp     *string          `json:"whatsapp,omitempty" validate:"omitempty,max=20"`
	Address      *string          `json:"endereco,omitempty" validate:"omitempty,max=300"`
	Hours        *string          `json:"horario,omitempty" validate:"omitempty,max=1000"`
	Open         *bool            `json:"aberto,omitempty"`
}

// PublicSettings serves the storefront loja info (taxa, horário, aberto).
func PublicSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		result, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// SettingsUpdate mutates config_loja. Admin-only route.
func SettingsUpdate(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var body updateSettingsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), settingsvc.UpdateSettingsInput{
			StoreName:    body.StoreName,
			DeliveryFee:  body.DeliveryFee,
			MinimumOrder: body.MinimumOrder,
			WhatsApp:     body.WhatsApp,
			Address:      body.Address,
			Hours:        body.Hours,
			Open:         body.Open,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
