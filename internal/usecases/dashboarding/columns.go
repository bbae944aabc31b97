package dashboarding

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

// Colunas esperadas no resultado do template de vendas
const (
	ColumnOrderID     = "SalesOrderID"
	ColumnOrderDate   = "OrderDate"
	ColumnCategory    = "Category"
	ColumnRegion      = "Region"
	ColumnProductID   = "ProductID"
	ColumnProductName = "ProductName"
	ColumnLineAmount  = "LineAmount"
	ColumnTotalDue    = "TotalDue"
)

// quantityColumns em ordem de preferência
var quantityColumns = []string{"Quantity", "Units", "OrderQty"}

var requiredColumns = []string{ColumnOrderID, ColumnOrderDate, ColumnLineAmount}

// columnMap liga o nome lógico ao nome real devolvido pelo driver
type columnMap struct {
	orderID     string
	orderDate   string
	category    string
	region      string
	productID   string
	productName string
	quantity    string
	lineAmount  string
	totalDue    string
}

func resolveColumns(sample domain.Row) (columnMap, error) {
	actual := func(name string) string {
		if _, ok := sample[name]; ok {
			return name
		}
		for k := range sample {
			if strings.EqualFold(k, name) {
				return k
			}
		}
		return ""
	}

	for _, name := range requiredColumns {
		if actual(name) == "" {
			return columnMap{}, fmt.Errorf("%w: %s", ErrSchemaMismatch, name)
		}
	}

	cols := columnMap{
		orderID:     actual(ColumnOrderID),
		orderDate:   actual(ColumnOrderDate),
		category:    actual(ColumnCategory),
		region:      actual(ColumnRegion),
		productID:   actual(ColumnProductID),
		productName: actual(ColumnProductName),
		lineAmount:  actual(ColumnLineAmount),
		totalDue:    actual(ColumnTotalDue),
	}
	for _, name := range quantityColumns {
		if c := actual(name); c != "" {
			cols.quantity = c
			break
		}
	}

	return cols, nil
}

// tableFromRows materializa as linhas cruas. Sem linhas, nenhuma coluna é verificada.
func tableFromRows(rows []domain.Row) (*domain.SalesTable, error) {
	if len(rows) == 0 {
		return domain.NewSalesTable(nil, false), nil
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	lines := make([]domain.SalesLine, 0, len(rows))
	for i, row := range rows {
		line, err := cols.line(row)
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", i, err)
		}
		lines = append(lines, line)
	}

	return domain.NewSalesTable(lines, cols.quantity != ""), nil
}

func (c columnMap) line(row domain.Row) (domain.SalesLine, error) {
	orderDate, err := utils.ToTime(row[c.orderDate])
	if err != nil {
		return domain.SalesLine{}, fmt.Errorf("%s: %w", ColumnOrderDate, err)
	}

	amount, err := utils.ToDecimal(row[c.lineAmount])
	if err != nil {
		return domain.SalesLine{}, fmt.Errorf("%s: %w", ColumnLineAmount, err)
	}

	line := domain.SalesLine{
		OrderID:    utils.ToString(row[c.orderID]),
		LineAmount: amount,
	}
	line.SetOrderDate(orderDate)

	if c.category != "" {
		line.Category = utils.ToNullableString(row[c.category])
	}
	if c.region != "" {
		line.Region = utils.ToNullableString(row[c.region])
	}
	if c.productID != "" {
		line.ProductID = utils.ToString(row[c.productID])
	}
	if c.productName != "" {
		line.ProductName = utils.ToString(row[c.productName])
	}
	if c.quantity != "" {
		qty, err := utils.ToInt64(row[c.quantity])
		if err != nil {
			return domain.SalesLine{}, fmt.Errorf("%s: %w", c.quantity, err)
		}
		line.Quantity = qty
	}
	if c.totalDue != "" {
		totalDue, err := utils.ToNullableDecimal(row[c.totalDue])
		if err != nil {
			return domain.SalesLine{}, fmt.Errorf("%s: %w", ColumnTotalDue, err)
		}
		line.TotalDue = totalDue
	}

	return line, nil
}
