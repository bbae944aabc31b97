package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-panel-api/internal/api/handler/router"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		wantStatus   int
		wantDatabase string
	}{
		{name: "sem banco", db: nil, wantStatus: http.StatusOK, wantDatabase: "skipped"},
		{name: "banco ok", db: pingerFunc(func(context.Context) error { return nil }), wantStatus: http.StatusOK, wantDatabase: "ok"},
		{
			name:         "banco fora",
			db:           pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
			wantStatus:   http.StatusServiceUnavailable,
			wantDatabase: "unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDatabase, decodeBody(t, rec)["database"])
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(nil)...), router.WithRoutes(Metrics()...))

	assert.True(t, rt.Lookup(http.MethodGet, "/healthcheck"))
	assert.True(t, rt.Lookup(http.MethodGet, "/metrics"))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", decodeBody(t, rec)["code"])
}
