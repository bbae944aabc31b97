package dashboarding

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-panel-api/infrastructure/repository"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/cache"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

const salesCacheName = "sales"

// DefaultSalesTTL é a validade padrão de uma carga de vendas
const DefaultSalesTTL = 5 * time.Minute

// DefaultLoadTimeout limita uma carga compartilhada do cache
const DefaultLoadTimeout = 2 * time.Minute

// detach desliga a carga do cancelamento da requisição que a disparou, pois outras
// sessões podem estar aguardando a mesma chave. Valores do contexto são mantidos.
func detach(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

// LoadKey identifica uma carga: intervalo, valor mínimo e filtros de dimensão serializados.
// Os CSVs são montados a partir de conjuntos ordenados, então a ordem da seleção não
// gera chaves diferentes.
type LoadKey struct {
	StartDate     string
	EndDate       string
	MinAmount     string
	CategoriesCSV string
	RegionsCSV    string
}

func newLoadKey(interval domain.DateInterval, minAmount decimal.Decimal, categories, regions domain.StringSet) LoadKey {
	return LoadKey{
		StartDate:     interval.StartString(),
		EndDate:       interval.EndString(),
		MinAmount:     minAmount.String(),
		CategoriesCSV: categories.CSV(),
		RegionsCSV:    regions.CSV(),
	}
}

func (k LoadKey) params(minAmount decimal.Decimal) repository.SalesQueryParams {
	return repository.SalesQueryParams{
		StartDate:     k.StartDate,
		EndDate:       k.EndDate,
		MinAmount:     minAmount,
		CategoriesCSV: k.CategoriesCSV,
		RegionsCSV:    k.RegionsCSV,
	}
}

// SalesLoader executa o template de vendas e memoriza o resultado por LoadKey
type SalesLoader struct {
	repo        repository.SalesRepository
	cache       *cache.TTL[LoadKey, *domain.SalesTable]
	ttl         time.Duration
	loadTimeout time.Duration
}

func NewSalesLoader(repo repository.SalesRepository, ttl time.Duration, opts ...cache.Option) *SalesLoader {
	if ttl <= 0 {
		ttl = DefaultSalesTTL
	}

	return &SalesLoader{
		repo:        repo,
		cache:       cache.New[LoadKey, *domain.SalesTable](salesCacheName, opts...),
		ttl:         ttl,
		loadTimeout: DefaultLoadTimeout,
	}
}

// WithLoadTimeout troca o limite de tempo das cargas compartilhadas
func (l *SalesLoader) WithLoadTimeout(timeout time.Duration) *SalesLoader {
	if timeout > 0 {
		l.loadTimeout = timeout
	}
	return l
}

// Load devolve uma cópia da tabela memorizada; quem chama pode alterá-la livremente.
// Erros da fonte de dados não são tratados nem memorizados.
func (l *SalesLoader) Load(
	ctx context.Context,
	interval domain.DateInterval,
	minAmount decimal.Decimal,
	categories, regions domain.StringSet,
) (*domain.SalesTable, error) {
	key := newLoadKey(interval, minAmount, categories, regions)

	table, err := l.cache.GetOrLoad(key, l.ttl, func() (*domain.SalesTable, error) {
		started := time.Now()

		loadCtx, cancel := detach(ctx, l.loadTimeout)
		defer cancel()

		rows, err := l.repo.FetchSalesLines(loadCtx, key.params(minAmount))
		if err != nil {
			return nil, err
		}

		table, err := tableFromRows(rows)
		if err != nil {
			return nil, err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"start_date":   key.StartDate,
			"end_date":     key.EndDate,
			"rows":         table.Len(),
			"has_quantity": table.HasQuantity,
			"duration_ms":  time.Since(started).Milliseconds(),
		}).Info("loader: sales loaded")

		return table, nil
	})
	if err != nil {
		return nil, err
	}

	return table.Clone(), nil
}

// Cache expõe o cache para o janitor
func (l *SalesLoader) Cache() cache.Purger {
	return l.cache
}
