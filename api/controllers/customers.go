package controllers

import (
	"net/http"
	"strings"

	"github.com/planetpizza/planetpizza-backend/api/responses"
	customersvc "github.com/planetpizza/planetpizza-backend/internal/customers"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
)

// CustomersList returns clientes for the back office, filtered by the
// optional busca query param (nome or CPF fragment).
func CustomersList(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("busca"))
		result, err := svc.List(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
