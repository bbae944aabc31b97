package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/pkg/log"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

// Parâmetros de filtro aceitos pelas rotas do painel
const (
	paramStartDate  = "start_date"
	paramEndDate    = "end_date"
	paramCategories = "categories"
	paramRegions    = "regions"
)

// GetDateRange devolve o menor e o maior dia com pedidos
func GetDateRange(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, err := service.AvailableDateRange(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dateRange)
	}
}

// GetFilterOptions devolve as categorias e regiões que podem ser selecionadas
func GetFilterOptions(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FilterOptions(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}

// filtersFromRequest monta o FilterState a partir da query string. Categorias e
// regiões aceitam listas separadas por vírgula e parâmetros repetidos. Datas
// ausentes assumem os limites disponíveis no banco.
func filtersFromRequest(r *http.Request, service dashboarding.Dashboarder) (domain.FilterState, error) {
	query := r.URL.Query()

	start, err := utils.ParseDate(query.Get(paramStartDate))
	if err != nil {
		return domain.FilterState{}, &paramError{Param: paramStartDate, Err: err}
	}
	end, err := utils.ParseDate(query.Get(paramEndDate))
	if err != nil {
		return domain.FilterState{}, &paramError{Param: paramEndDate, Err: err}
	}

	filters, err := dashboarding.DefaultFilters(r.Context(), service, start, end,
		utils.SplitCSV(query[paramCategories]...),
		utils.SplitCSV(query[paramRegions]...),
	)
	if err != nil {
		return domain.FilterState{}, err
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDateInclusive.Format(time.DateOnly),
	}).Debug("handler: filters resolved")

	return filters, nil
}
