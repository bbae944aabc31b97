package domain

import (
	"encoding/json"
	"time"
)

// DateRange são os limites de datas disponíveis no banco
type DateRange struct {
	MinDate time.Time
	MaxDate time.Time
}

func (d DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		MinDate string `json:"min_date"`
		MaxDate string `json:"max_date"`
	}{d.MinDate.Format(time.DateOnly), d.MaxDate.Format(time.DateOnly)})
}

// FilterOptions são os valores possíveis para os filtros de dimensão
type FilterOptions struct {
	Categories []string `json:"categories"`
	Regions    []string `json:"regions"`
}

// Labels mapeia colunas para os rótulos usados em eixos, legendas e tabela
var Labels = map[string]string{
	"OrderDate":    "Data do pedido",
	"YearMonth":    "Ano-Mês",
	"Category":     "Categoria",
	"Region":       "Região",
	"ProductName":  "Produto",
	"ProductID":    "ID do produto",
	"SalesOrderID": "ID do pedido",
	"Quantity":     "Quantidade",
	"LineAmount":   "Valor",
	"TotalDue":     "Total faturado",
	"Orders":       "Pedidos",
}
