package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-panel-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/sales-panel-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func availableRange() domain.DateRange {
	return domain.DateRange{MinDate: day(2011, 5, 31), MaxDate: day(2014, 6, 30)}
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(m *mocks.MockDashboarder)
		wantStatus int
		wantCode   string
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:  "filtros completos",
			query: "?start_date=2013-01-01&end_date=2013-01-31&categories=Bikes,Clothing&regions=BC&regions=CA",
			setup: func(m *mocks.MockDashboarder) {
				expected, _ := dashboarding.ResolveFilters(day(2013, 1, 1), day(2013, 1, 31),
					[]string{"Bikes", "Clothing"}, []string{"BC", "CA"})

				m.EXPECT().GetDashboard(gomock.Any(), expected).Return(&domain.Dashboard{
					Filters: expected.Summary(),
					Aggregates: &domain.Aggregates{
						KPIs: domain.KPIs{OrdersCount: 1, UnitsTotal: 3, RevenueTotal: decimal.NewFromInt(1500)},
					},
					Display: &domain.KPIDisplay{Orders: "1", Units: "3", Revenue: "R$ 1.500,00"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				filters := body["filters"].(map[string]any)
				assert.Equal(t, "2013-02-01", filters["end_date_exclusive"])
				assert.Equal(t, []any{"Bikes", "Clothing"}, filters["categories"])
				assert.Equal(t, []any{"BC", "CA"}, filters["regions"])

				display := body["display"].(map[string]any)
				assert.Equal(t, "R$ 1.500,00", display["revenue"])
				assert.Equal(t, false, body["empty"])
			},
		},
		{
			name:  "datas ausentes usam o intervalo disponível",
			query: "",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().AvailableDateRange(gomock.Any()).Return(availableRange(), nil)

				expected, _ := dashboarding.ResolveFilters(day(2011, 5, 31), day(2014, 6, 30), nil, nil)
				m.EXPECT().GetDashboard(gomock.Any(), expected).Return(&domain.Dashboard{
					Filters: expected.Summary(),
					Empty:   true,
					Message: dashboarding.MessageNoDataLoaded,
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["empty"])
				assert.Equal(t, dashboarding.MessageNoDataLoaded, body["message"])
				assert.Equal(t, "2011-05-31", body["filters"].(map[string]any)["start_date"])
			},
		},
		{
			name:       "data mal formatada",
			query:      "?start_date=01/01/2013&end_date=2013-01-31",
			setup:      func(m *mocks.MockDashboarder) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{"param": "start_date"}, body["details"])
			},
		},
		{
			name:       "início depois do fim",
			query:      "?start_date=2013-02-01&end_date=2013-01-31",
			setup:      func(m *mocks.MockDashboarder) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidDateRange,
		},
		{
			name:  "banco indisponível",
			query: "?start_date=2013-01-01&end_date=2013-01-31",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).
					Return(nil, &sqldb.ConnectivityError{Op: "query", Err: errors.New("connection refused")})
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:  "colunas obrigatórias ausentes",
			query: "?start_date=2013-01-01&end_date=2013-01-31",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).
					Return(nil, dashboarding.ErrSchemaMismatch)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrSchemaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard"+tt.query, nil)
			rec := httptest.NewRecorder()

			GetDashboard(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
			}
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestGetSalesLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	line := domain.SalesLine{
		OrderID:     "43659",
		Category:    strPtr("Bikes"),
		Region:      nil,
		ProductID:   "771",
		ProductName: "Mountain-100 Silver, 38",
		Quantity:    2,
		LineAmount:  decimal.RequireFromString("1000.00"),
	}
	line.SetOrderDate(day(2013, 1, 5))

	service.EXPECT().GetDetail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.FilterState) ([]domain.SalesLine, error) {
			assert.True(t, filters.SelectedCategories.Has("Bikes"))
			return []domain.SalesLine{line}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/lines?start_date=2013-01-01&end_date=2013-01-31&categories=Bikes", nil)
	rec := httptest.NewRecorder()

	GetSalesLines(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])

	lines := body["lines"].([]any)
	require.Len(t, lines, 1)
	first := lines[0].(map[string]any)
	assert.Equal(t, "43659", first["order_id"])
	assert.Nil(t, first["region"])
	assert.Equal(t, "Data do pedido", body["labels"].(map[string]any)["OrderDate"])
}

func TestGetSalesLines_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/lines?start_date=2013-01-01&end_date=2013-01-31", nil)
	rec := httptest.NewRecorder()

	GetSalesLines(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decodeBody(t, rec)["lines"])
}
