package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-panel-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

// tables agrupa os nomes de tabela de cada dialeto
type tables struct {
	orderHeader        string
	orderDetail        string
	product            string
	productSubcategory string
	productCategory    string
	address            string
	stateProvince      string
}

var postgresTables = tables{
	orderHeader:        "sales.salesorderheader h",
	orderDetail:        "sales.salesorderdetail d",
	product:            "production.product p ON p.productid = d.productid",
	productSubcategory: "production.productsubcategory psc ON psc.productsubcategoryid = p.productsubcategoryid",
	productCategory:    "production.productcategory pc ON pc.productcategoryid = psc.productcategoryid",
	address:            "person.address a ON a.addressid = h.shiptoaddressid",
	stateProvince:      "person.stateprovince sp ON sp.stateprovinceid = a.stateprovinceid",
}

var mysqlTables = tables{
	orderHeader:        "SalesOrderHeader h",
	orderDetail:        "SalesOrderDetail d",
	product:            "Product p ON p.ProductID = d.ProductID",
	productSubcategory: "ProductSubcategory psc ON psc.ProductSubcategoryID = p.ProductSubcategoryID",
	productCategory:    "ProductCategory pc ON pc.ProductCategoryID = psc.ProductCategoryID",
	address:            "Address a ON a.AddressID = h.ShipToAddressID",
	stateProvince:      "StateProvince sp ON sp.StateProvinceID = a.StateProvinceID",
}

//go:generate mockgen -source=metadata.go -destination=mocks/metadata.go -package=mocks
type MetadataRepository interface {
	// GetOrderDateBounds devolve nil quando não há pedidos
	GetOrderDateBounds(ctx context.Context) (minDate, maxDate *time.Time, err error)
	ListCategories(ctx context.Context) ([]string, error)
	ListRegions(ctx context.Context) ([]string, error)
}

type metadataRepository struct {
	ds     sqldb.DataSource
	tables tables
}

func NewMetadataRepository(ds sqldb.DataSource, driver string) (MetadataRepository, error) {
	var t tables
	switch driver {
	case config.DriverPostgres:
		t = postgresTables
	case config.DriverMySQL:
		t = mysqlTables
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}

	return &metadataRepository{
		ds:     ds,
		tables: t,
	}, nil
}

func (r *metadataRepository) GetOrderDateBounds(ctx context.Context) (*time.Time, *time.Time, error) {
	query, _, err := squirrel.
		Select("CAST(MIN(h.orderdate) AS date) AS min_date", "CAST(MAX(h.orderdate) AS date) AS max_date").
		From(r.tables.orderHeader).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.ds.Execute(ctx, query, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar intervalo de datas: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	minDate, err := nullableTime(column(rows[0], "min_date"))
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao ler data mínima: %w", err)
	}
	maxDate, err := nullableTime(column(rows[0], "max_date"))
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao ler data máxima: %w", err)
	}

	return minDate, maxDate, nil
}

func (r *metadataRepository) ListCategories(ctx context.Context) ([]string, error) {
	query, _, err := squirrel.
		Select("DISTINCT pc.name AS category").
		From(r.tables.orderDetail).
		Join(r.tables.product).
		LeftJoin(r.tables.productSubcategory).
		LeftJoin(r.tables.productCategory).
		Where(squirrel.NotEq{"pc.name": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listColumn(ctx, query, "category")
}

func (r *metadataRepository) ListRegions(ctx context.Context) ([]string, error) {
	query, _, err := squirrel.
		Select("DISTINCT sp.name AS region").
		From(r.tables.orderHeader).
		LeftJoin(r.tables.address).
		LeftJoin(r.tables.stateProvince).
		Where(squirrel.NotEq{"sp.name": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listColumn(ctx, query, "region")
}

func (r *metadataRepository) listColumn(ctx context.Context, query, name string) ([]string, error) {
	rows, err := r.ds.Execute(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar %s: %w", name, err)
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		v := column(row, name)
		if v == nil {
			continue
		}
		values = append(values, utils.ToString(v))
	}

	return values, nil
}

func column(row map[string]any, name string) any {
	v, _ := utils.LookupColumn(row, name)
	return v
}

func nullableTime(v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := utils.ToTime(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
