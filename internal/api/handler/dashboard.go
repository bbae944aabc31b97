package handler

import (
	"net/http"

	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
)

// salesLinesResponse é a tabela de detalhe com os rótulos das colunas
type salesLinesResponse struct {
	Filters domain.FilterSummary `json:"filters"`
	Total   int                  `json:"total"`
	Lines   []domain.SalesLine   `json:"lines"`
	Labels  map[string]string    `json:"labels"`
}

// GetDashboard devolve KPIs e gráficos para os filtros da query string.
// Ausência de dados não é erro: a resposta vem com empty=true e a mensagem.
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := filtersFromRequest(r, service)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// GetSalesLines devolve as linhas filtradas ordenadas por data e valor
func GetSalesLines(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := filtersFromRequest(r, service)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		lines, err := service.GetDetail(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if lines == nil {
			lines = []domain.SalesLine{}
		}

		writeJSON(w, r, http.StatusOK, salesLinesResponse{
			Filters: filters.Summary(),
			Total:   len(lines),
			Lines:   lines,
			Labels:  domain.Labels,
		})
	}
}
