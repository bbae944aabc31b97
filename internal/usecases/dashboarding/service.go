package dashboarding

import (
	"context"
	"maps"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/cache"
	"github.com/vfg2006/sales-panel-api/pkg/log"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

// Service implementa Dashboarder e CacheMaintainer
type Service struct {
	loader    *SalesLoader
	metadata  *MetadataService
	minAmount decimal.Decimal
}

// NewService cria o serviço do painel. minAmount é repassado ao template de vendas.
func NewService(loader *SalesLoader, metadata *MetadataService, minAmount decimal.Decimal) *Service {
	return &Service{
		loader:    loader,
		metadata:  metadata,
		minAmount: minAmount,
	}
}

func (s *Service) GetDashboard(ctx context.Context, filters domain.FilterState) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{Filters: filters.Summary()}

	filtered, message, err := s.filteredTable(ctx, filters)
	if err != nil {
		return nil, err
	}
	if message != "" {
		dashboard.Empty = true
		dashboard.Message = message
		return dashboard, nil
	}

	aggregates := Aggregate(filtered)
	dashboard.Aggregates = aggregates
	dashboard.Display = &domain.KPIDisplay{
		Orders:  utils.FormatInt(int64(aggregates.KPIs.OrdersCount)),
		Units:   utils.FormatInt(aggregates.KPIs.UnitsTotal),
		Revenue: utils.FormatBRL(aggregates.KPIs.RevenueTotal),
	}
	dashboard.Labels = maps.Clone(domain.Labels)

	log.ForContext(ctx).WithFields(log.Fields{
		"rows":   filtered.Len(),
		"orders": aggregates.KPIs.OrdersCount,
	}).Debug("dashboard: aggregates computed")

	return dashboard, nil
}

func (s *Service) GetDetail(ctx context.Context, filters domain.FilterState) ([]domain.SalesLine, error) {
	filtered, _, err := s.filteredTable(ctx, filters)
	if err != nil {
		return nil, err
	}

	SortDetail(filtered.Lines)
	return filtered.Lines, nil
}

// filteredTable carrega e aplica os filtros. message vem preenchida quando não há dados.
func (s *Service) filteredTable(ctx context.Context, filters domain.FilterState) (*domain.SalesTable, string, error) {
	interval := filters.Interval()

	table, err := s.loader.Load(ctx, interval, s.minAmount, filters.SelectedCategories, filters.SelectedRegions)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to load sales")
		return nil, "", err
	}
	if table.IsEmpty() {
		return table, MessageNoDataLoaded, nil
	}

	filtered := ApplyFilters(table, interval, filters.SelectedCategories, filters.SelectedRegions)
	if filtered.IsEmpty() {
		return filtered, MessageNoDataFiltered, nil
	}

	return filtered, "", nil
}

func (s *Service) AvailableDateRange(ctx context.Context) (domain.DateRange, error) {
	return s.metadata.AvailableDateRange(ctx)
}

func (s *Service) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	return s.metadata.FilterOptions(ctx)
}

func (s *Service) Caches() []cache.Purger {
	return append([]cache.Purger{s.loader.Cache()}, s.metadata.Caches()...)
}

func (s *Service) WarmMetadata(ctx context.Context) error {
	return s.metadata.Warm(ctx)
}
