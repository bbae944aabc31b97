package dashboarding

import "errors"

var (
	// ErrInvalidDateRange indica data inicial posterior à data final
	ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")

	// ErrSchemaMismatch indica que a consulta não trouxe uma coluna obrigatória
	ErrSchemaMismatch = errors.New("coluna obrigatória ausente no resultado da consulta")
)

// Mensagens exibidas quando não há dados para os filtros
const (
	MessageNoDataLoaded   = "Nenhum dado para os filtros selecionados. Ajuste o período (2011–2014) ou as dimensões."
	MessageNoDataFiltered = "Nenhum dado para os filtros selecionados. Ajuste o período e as dimensões."
)
