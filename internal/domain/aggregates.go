package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// KPIs agrupa os três indicadores escalares do painel
type KPIs struct {
	OrdersCount  int             `json:"orders_count"`
	UnitsTotal   int64           `json:"units_total"`
	RevenueTotal decimal.Decimal `json:"revenue_total"`
}

// DateAmount é um ponto (dia ou mês, valor)
type DateAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

func (d DateAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date   string          `json:"date"`
		Amount decimal.Decimal `json:"amount"`
	}{d.Date.Format(time.DateOnly), d.Amount})
}

// DateCount é um ponto (dia, número de pedidos distintos)
type DateCount struct {
	Date   time.Time
	Orders int
}

func (d DateCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date   string `json:"date"`
		Orders int    `json:"orders"`
	}{d.Date.Format(time.DateOnly), d.Orders})
}

// ProductAmount é a receita de um produto. Label é o nome encurtado para exibição.
type ProductAmount struct {
	ProductName string          `json:"product_name"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
}

// DimensionAmount é a receita de uma categoria ou região. Key nulo é o grupo sem valor.
type DimensionAmount struct {
	Key    *string         `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// DimensionCount é o número de pedidos distintos de uma categoria ou região
type DimensionCount struct {
	Key    *string `json:"key"`
	Orders int     `json:"orders"`
}

// Aggregates contém todas as visões calculadas a partir de uma tabela
type Aggregates struct {
	KPIs             KPIs              `json:"kpis"`
	RevenueByDay     []DateAmount      `json:"revenue_by_day"`
	RevenueByProduct []ProductAmount   `json:"revenue_by_product"`
	OrdersByDay      []DateCount       `json:"orders_by_day"`
	OrdersByCategory []DimensionCount  `json:"orders_by_category"`
	RevenueByRegion  []DimensionAmount `json:"revenue_by_region"`
	RevenueByMonth   []DateAmount      `json:"revenue_by_month"`
}

// KPIDisplay traz os indicadores já formatados em pt-BR
type KPIDisplay struct {
	Orders  string `json:"orders"`
	Units   string `json:"units"`
	Revenue string `json:"revenue"`
}

// Dashboard é a resposta completa do painel para um conjunto de filtros
type Dashboard struct {
	Filters    FilterSummary     `json:"filters"`
	Empty      bool              `json:"empty"`
	Message    string            `json:"message,omitempty"`
	Aggregates *Aggregates       `json:"aggregates,omitempty"`
	Display    *KPIDisplay       `json:"display,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
}
