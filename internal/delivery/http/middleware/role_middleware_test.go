package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcareplus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func roleRequest(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if role == "" {
		return req
	}
	return req.WithContext(context.WithValue(req.Context(), RoleKey, role))
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name    string
		handler http.Handler
		role    string
		want    int
	}{
		{"admin allowed on admin", RequireAdmin(next), entity.RoleAdmin, http.StatusNoContent},
		{"patient forbidden on admin", RequireAdmin(next), entity.RolePatient, http.StatusForbidden},
		{"doctor allowed on doctor", RequireDoctor(next), entity.RoleDoctor, http.StatusNoContent},
		{"receptionist forbidden on doctor", RequireDoctor(next), entity.RoleReceptionist, http.StatusForbidden},
		{"admin allowed on staff", RequireStaff(next), entity.RoleAdmin, http.StatusNoContent},
		{"receptionist allowed on staff", RequireStaff(next), entity.RoleReceptionist, http.StatusNoContent},
		{"patient forbidden on staff", RequireStaff(next), entity.RolePatient, http.StatusForbidden},
		{"missing role unauthorized", RequirePatient(next), "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, roleRequest(tt.role))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
