package repository

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-panel-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/domain"
)

//go:embed queries/*.sql
var queries embed.FS

// SalesQueryParams são os parâmetros nomeados aceitos pelo template de vendas.
// EndDate é exclusivo; CSVs vazios significam "sem restrição".
type SalesQueryParams struct {
	StartDate     string
	EndDate       string
	MinAmount     decimal.Decimal
	CategoriesCSV string
	RegionsCSV    string
}

func (p SalesQueryParams) toMap() map[string]any {
	return map[string]any{
		"start_date":     p.StartDate,
		"end_date":       p.EndDate,
		"min_amount":     p.MinAmount.String(),
		"categories_csv": strings.TrimSpace(p.CategoriesCSV),
		"regions_csv":    strings.TrimSpace(p.RegionsCSV),
	}
}

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks
type SalesRepository interface {
	FetchSalesLines(ctx context.Context, params SalesQueryParams) ([]domain.Row, error)
}

type salesRepository struct {
	ds    sqldb.DataSource
	query string
}

// NewSalesRepository usa o template embutido do driver ou, se queryFile for informado,
// o conteúdo desse arquivo.
func NewSalesRepository(ds sqldb.DataSource, driver, queryFile string) (SalesRepository, error) {
	query, err := LoadSalesQuery(driver, queryFile)
	if err != nil {
		return nil, err
	}

	return &salesRepository{
		ds:    ds,
		query: query,
	}, nil
}

// LoadSalesQuery resolve o template da carga principal
func LoadSalesQuery(driver, queryFile string) (string, error) {
	if queryFile != "" {
		content, err := os.ReadFile(queryFile)
		if err != nil {
			return "", fmt.Errorf("erro ao ler o template de vendas %s: %w", queryFile, err)
		}
		return string(content), nil
	}

	var name string
	switch driver {
	case config.DriverPostgres:
		name = "queries/sales_postgres.sql"
	case config.DriverMySQL:
		name = "queries/sales_mysql.sql"
	default:
		return "", fmt.Errorf("driver de banco não suportado: %s", driver)
	}

	content, err := queries.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("erro ao ler o template embutido %s: %w", name, err)
	}
	return string(content), nil
}

func (r *salesRepository) FetchSalesLines(ctx context.Context, params SalesQueryParams) ([]domain.Row, error) {
	rows, err := r.ds.Execute(ctx, r.query, params.toMap())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar linhas de venda: %w", err)
	}

	return rows, nil
}
