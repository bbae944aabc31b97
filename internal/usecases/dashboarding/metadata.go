package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/sales-panel-api/infrastructure/repository"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/cache"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

// DefaultMetadataTTL é a validade padrão das consultas de metadados
const DefaultMetadataTTL = 10 * time.Minute

// FallbackDateRange é usado quando o banco não tem pedidos
var FallbackDateRange = domain.DateRange{
	MinDate: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC),
	MaxDate: time.Date(2014, 12, 31, 0, 0, 0, 0, time.UTC),
}

// MetadataService responde os limites de data e as opções de filtro, ambos memorizados
type MetadataService struct {
	repo       repository.MetadataRepository
	dateRanges *cache.TTL[struct{}, domain.DateRange]
	options    *cache.TTL[struct{}, domain.FilterOptions]
	ttl        time.Duration
	timeout    time.Duration
}

func NewMetadataService(repo repository.MetadataRepository, ttl time.Duration, opts ...cache.Option) *MetadataService {
	if ttl <= 0 {
		ttl = DefaultMetadataTTL
	}

	return &MetadataService{
		repo:       repo,
		dateRanges: cache.New[struct{}, domain.DateRange]("date_range", opts...),
		options:    cache.New[struct{}, domain.FilterOptions]("filter_options", opts...),
		ttl:        ttl,
		timeout:    DefaultLoadTimeout,
	}
}

// WithLoadTimeout troca o limite de tempo das consultas compartilhadas
func (s *MetadataService) WithLoadTimeout(timeout time.Duration) *MetadataService {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// AvailableDateRange devolve (min, max) das datas de pedido ou FallbackDateRange
func (s *MetadataService) AvailableDateRange(ctx context.Context) (domain.DateRange, error) {
	return s.dateRanges.GetOrLoad(struct{}{}, s.ttl, func() (domain.DateRange, error) {
		loadCtx, cancel := detach(ctx, s.timeout)
		defer cancel()

		minDate, maxDate, err := s.repo.GetOrderDateBounds(loadCtx)
		if err != nil {
			return domain.DateRange{}, err
		}

		if minDate == nil || maxDate == nil {
			log.ForContext(ctx).Warn("metadata: no orders found, using fallback date range")
			return FallbackDateRange, nil
		}

		return domain.DateRange{MinDate: dayUTC(*minDate), MaxDate: dayUTC(*maxDate)}, nil
	})
}

// FilterOptions devolve as categorias e regiões distintas, ordenadas e sem nulos
func (s *MetadataService) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	return s.options.GetOrLoad(struct{}{}, s.ttl, func() (domain.FilterOptions, error) {
		loadCtx, cancel := detach(ctx, s.timeout)
		defer cancel()

		categories, err := s.repo.ListCategories(loadCtx)
		if err != nil {
			return domain.FilterOptions{}, err
		}

		regions, err := s.repo.ListRegions(loadCtx)
		if err != nil {
			return domain.FilterOptions{}, err
		}

		return domain.FilterOptions{
			Categories: sortedDistinct(categories),
			Regions:    sortedDistinct(regions),
		}, nil
	})
}

// Warm recarrega os dois caches quando expirados
func (s *MetadataService) Warm(ctx context.Context) error {
	if _, err := s.AvailableDateRange(ctx); err != nil {
		return err
	}
	_, err := s.FilterOptions(ctx)
	return err
}

// Caches expõe os caches para o janitor
func (s *MetadataService) Caches() []cache.Purger {
	return []cache.Purger{s.dateRanges, s.options}
}

func sortedDistinct(values []string) []string {
	return domain.NewStringSet(values...).Sorted()
}
