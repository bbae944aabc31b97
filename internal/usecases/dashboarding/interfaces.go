package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/cache"
)

// Dashboarder define as consultas do painel de vendas
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type Dashboarder interface {
	// GetDashboard executa carga, filtro e agregação para os filtros informados
	GetDashboard(ctx context.Context, filters domain.FilterState) (*domain.Dashboard, error)

	// GetDetail devolve as linhas filtradas ordenadas por data e valor
	GetDetail(ctx context.Context, filters domain.FilterState) ([]domain.SalesLine, error)

	// AvailableDateRange devolve os limites de data dos pedidos
	AvailableDateRange(ctx context.Context) (domain.DateRange, error)

	// FilterOptions devolve as categorias e regiões disponíveis
	FilterOptions(ctx context.Context) (domain.FilterOptions, error)
}

// CacheMaintainer é usado pelo janitor para limpar e aquecer os caches
type CacheMaintainer interface {
	Caches() []cache.Purger
	WarmMetadata(ctx context.Context) error
}
