package dashboarding

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// ProductLabelMaxLen é o tamanho máximo do nome de produto nos gráficos
const ProductLabelMaxLen = 40

// nullKey agrupa categorias/regiões nulas
const nullKey = "\x00null"

// Aggregate calcula todas as visões do painel a partir de uma tabela. Tabela vazia
// resulta em KPIs zerados e séries vazias.
func Aggregate(table *domain.SalesTable) *domain.Aggregates {
	return &domain.Aggregates{
		KPIs:             ComputeKPIs(table),
		RevenueByDay:     RevenueByDay(table),
		RevenueByProduct: RevenueByProduct(table),
		OrdersByDay:      OrdersByDay(table),
		OrdersByCategory: OrdersByCategory(table),
		RevenueByRegion:  RevenueByRegion(table),
		RevenueByMonth:   RevenueByMonth(table),
	}
}

func lines(table *domain.SalesTable) []domain.SalesLine {
	if table == nil {
		return nil
	}
	return table.Lines
}

// ComputeKPIs calcula pedidos distintos, unidades e receita
func ComputeKPIs(table *domain.SalesTable) domain.KPIs {
	orders := make(map[string]struct{})
	var units int64
	revenue := decimal.Zero

	for _, l := range lines(table) {
		orders[l.OrderID] = struct{}{}
		units += l.Quantity
		revenue = revenue.Add(l.LineAmount)
	}

	if table == nil || !table.HasQuantity {
		units = 0
	}

	return domain.KPIs{
		OrdersCount:  len(orders),
		UnitsTotal:   units,
		RevenueTotal: revenue,
	}
}

// RevenueByDay soma LineAmount por dia, em ordem crescente de data
func RevenueByDay(table *domain.SalesTable) []domain.DateAmount {
	return sumByDate(table, domain.SalesLine.OrderDay)
}

// RevenueByMonth soma LineAmount por YearMonth, em ordem crescente
func RevenueByMonth(table *domain.SalesTable) []domain.DateAmount {
	return sumByDate(table, domain.SalesLine.YearMonth)
}

func sumByDate(table *domain.SalesTable, key func(domain.SalesLine) time.Time) []domain.DateAmount {
	sums := make(map[time.Time]decimal.Decimal)
	for _, l := range lines(table) {
		k := key(l)
		sums[k] = sums[k].Add(l.LineAmount)
	}

	out := make([]domain.DateAmount, 0, len(sums))
	for d, amount := range sums {
		out = append(out, domain.DateAmount{Date: d, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}

// OrdersByDay conta pedidos distintos por dia, em ordem crescente de data
func OrdersByDay(table *domain.SalesTable) []domain.DateCount {
	orders := make(map[time.Time]map[string]struct{})
	for _, l := range lines(table) {
		day := l.OrderDay()
		if orders[day] == nil {
			orders[day] = make(map[string]struct{})
		}
		orders[day][l.OrderID] = struct{}{}
	}

	out := make([]domain.DateCount, 0, len(orders))
	for d, ids := range orders {
		out = append(out, domain.DateCount{Date: d, Orders: len(ids)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}

// RevenueByProduct soma LineAmount por produto, da maior para a menor receita
func RevenueByProduct(table *domain.SalesTable) []domain.ProductAmount {
	sums := make(map[string]decimal.Decimal)
	for _, l := range lines(table) {
		sums[l.ProductName] = sums[l.ProductName].Add(l.LineAmount)
	}

	out := make([]domain.ProductAmount, 0, len(sums))
	for name, amount := range sums {
		out = append(out, domain.ProductAmount{
			ProductName: name,
			Label:       TruncateLabel(name, ProductLabelMaxLen),
			Amount:      amount,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].ProductName < out[j].ProductName
	})

	return out
}

// OrdersByCategory conta pedidos distintos por categoria, do maior para o menor
func OrdersByCategory(table *domain.SalesTable) []domain.DimensionCount {
	orders := make(map[string]map[string]struct{})
	keys := make(map[string]*string)
	for _, l := range lines(table) {
		k := dimensionKey(l.Category)
		if orders[k] == nil {
			orders[k] = make(map[string]struct{})
			keys[k] = l.Category
		}
		orders[k][l.OrderID] = struct{}{}
	}

	out := make([]domain.DimensionCount, 0, len(orders))
	for k, ids := range orders {
		out = append(out, domain.DimensionCount{Key: copyString(keys[k]), Orders: len(ids)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orders != out[j].Orders {
			return out[i].Orders > out[j].Orders
		}
		return lessKey(out[i].Key, out[j].Key)
	})

	return out
}

// RevenueByRegion soma LineAmount por região, da maior para a menor receita
func RevenueByRegion(table *domain.SalesTable) []domain.DimensionAmount {
	sums := make(map[string]decimal.Decimal)
	keys := make(map[string]*string)
	for _, l := range lines(table) {
		k := dimensionKey(l.Region)
		if _, ok := keys[k]; !ok {
			keys[k] = l.Region
		}
		sums[k] = sums[k].Add(l.LineAmount)
	}

	out := make([]domain.DimensionAmount, 0, len(sums))
	for k, amount := range sums {
		out = append(out, domain.DimensionAmount{Key: copyString(keys[k]), Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return lessKey(out[i].Key, out[j].Key)
	})

	return out
}

// TruncateLabel encurta s para no máximo n caracteres, terminando em "…"
func TruncateLabel(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func dimensionKey(v *string) string {
	if v == nil {
		return nullKey
	}
	return *v
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

// lessKey ordena nulos por último
func lessKey(a, b *string) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	return *a < *b
}
