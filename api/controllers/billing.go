package controllers

import (
	"net/http"
	"strings"

	"github.com/planetpizza/planetpizza-backend/api/responses"
	billingsvc "github.com/planetpizza/planetpizza-backend/internal/billing"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
)

// BillingSummary serves the faturamento dashboard aggregates.
func BillingSummary(svc billingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "billing service unavailable"))
			return
		}

		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// BillingDay drills into the pedidos of one calendar day. The data query
// param uses dd/mm/aaaa.
func BillingDay(svc billingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "billing service unavailable"))
			return
		}

		date := strings.TrimSpace(r.URL.Query().Get("data"))
		if date == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "data é obrigatória"))
			return
		}

		result, err := svc.Day(r.Context(), date)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// BillingExportCSV streams the billing window as a spreadsheet download.
func BillingExportCSV(svc billingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "billing service unavailable"))
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="faturamento.csv"`)

		if err := svc.ExportCSV(r.Context(), w); err != nil {
			if logg != nil {
				logg.Error(r.Context(), "billing export failed", err)
			}
			return
		}
	}
}
