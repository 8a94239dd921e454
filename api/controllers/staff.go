package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planetpizza/planetpizza-backend/api/responses"
	"github.com/planetpizza/planetpizza-backend/api/validators"
	"github.com/planetpizza/planetpizza-backend/internal/auth"
	"github.com/planetpizza/planetpizza-backend/internal/staff"
	"github.com/planetpizza/planetpizza-backend/pkg/enums"
	pkgerrors "github.com/planetpizza/planetpizza-backend/pkg/errors"
	"github.com/planetpizza/planetpizza-backend/pkg/logger"
)

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "id inválido")
	}
	return id, nil
}

type setActiveRequest struct {
	Active *bool `json:"ativo" validate:"required"`
}

// mapNotFound converts a gorm record-not-found into a typed 404 while
// keeping other failures as internal errors.
func mapNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, message)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persistence failure")
}

// StaffList returns funcionarios for the back-office table, filtered by
// the optional busca and papel query params.
func StaffList(repo *staff.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "staff repository unavailable"))
			return
		}

		filter := staff.SearchFilter{
			Query: strings.TrimSpace(r.URL.Query().Get("busca")),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("papel")); raw != "" {
			role, err := enums.ParseStaffRole(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "papel inválido"))
				return
			}
			filter.Role = role
		}

		records, err := repo.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list funcionarios"))
			return
		}

		result := make([]staff.StaffDTO, 0, len(records))
		for i := range records {
			result = append(result, *staff.FromModel(&records[i]))
		}
		responses.WriteSuccess(w, result)
	}
}

// StaffCreate provisions a funcionario through the authenticated JSON API.
// RequireRole already gated the route to admins.
func StaffCreate(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.CreateStaffRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateStaff(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// StaffSetActive toggles a funcionario. Deactivation never deletes.
func StaffSetActive(repo *staff.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "staff repository unavailable"))
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

		if err := repo.SetActive(r.Context(), id, *body.Active); err != nil {
			responses.WriteError(r.Context(), logg, w, mapNotFound(err, "funcionário não encontrado"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"id": id, "ativo": *body.Active})
	}
}
