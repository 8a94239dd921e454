package controllers

import (
	"net/http"

	"github.com/planetpizza/planetpizza-backend/api/middleware"
	"github.com/planetpizza/planetpizza-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func AdminPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "admin", "status": "ok"}
		if staffID := middleware.StaffIDFromContext(r.Context()); staffID != "" {
			payload["staff_id"] = staffID
		}
		responses.WriteSuccess(w, payload)
	}
}
