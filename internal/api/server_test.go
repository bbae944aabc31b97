package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-panel-api/internal/api/handler"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/session"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/sales-panel-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.Server{Host: "localhost", Port: "0"},
		Session: config.Session{CookieName: "painel_session", TTL: time.Hour},
		CORS:    config.CORS{AllowedOrigins: []string{"http://localhost:8501"}},
	}
}

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboarder := mocks.NewMockDashboarder(ctrl)
	dashboarder.EXPECT().FilterOptions(gomock.Any()).Return(domain.FilterOptions{
		Categories: []string{"Bikes"},
		Regions:    []string{"BC"},
	}, nil)

	srv, err := New(testConfig(), dashboarder, session.NewStore(time.Hour), nil, handler.CronJobServices{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/filters/options", nil)
	req.Header.Set("Origin", "http://localhost:8501")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:8501", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	assert.JSONEq(t, `{"categories":["Bikes"],"regions":["BC"]}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies(), "rotas do painel não criam sessão")
}

func TestServer_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv, err := New(testConfig(), mocks.NewMockDashboarder(ctrl), session.NewStore(time.Hour), nil, handler.CronJobServices{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
