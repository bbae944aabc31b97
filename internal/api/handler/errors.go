package handler

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-panel-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-panel-api/internal/session"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/pkg/apiErrors"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// paramError indica um parâmetro de consulta mal formatado
type paramError struct {
	Param string
	Err   error
}

func (e *paramError) Error() string {
	return fmt.Sprintf("parâmetro %s inválido: %v", e.Param, e.Err)
}

func (e *paramError) Unwrap() error {
	return e.Err
}

// writeServiceError traduz os erros do painel para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var pErr *paramError
	var connErr *sqldb.ConnectivityError

	switch {
	case errors.As(err, &pErr):
		logger.Warn("handler: invalid query parameter")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
			"Formato de data inválido. Use AAAA-MM-DD", map[string]string{"param": pErr.Param})

	case errors.Is(err, dashboarding.ErrInvalidDateRange):
		logger.Warn("handler: invalid date range")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange,
			"A data inicial deve ser anterior ou igual à data final", nil)

	case errors.Is(err, dashboarding.ErrSchemaMismatch):
		logger.Error("handler: sales query schema mismatch")
		apiErrors.WriteError(w, apiErrors.ErrSchemaMismatch,
			"A consulta de vendas não retornou as colunas obrigatórias", nil)

	case errors.Is(err, session.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)

	case errors.As(err, &connErr):
		logger.WithField("op", connErr.Op).Error("handler: database unavailable")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation,
			"Não foi possível consultar o banco de dados", nil)

	default:
		logger.Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("handler: failed to encode response")
	}
}
