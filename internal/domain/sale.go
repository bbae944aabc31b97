package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Row é uma linha crua devolvida pela fonte de dados (coluna -> valor)
type Row = map[string]any

// SalesLine representa um item de pedido carregado do banco.
// OrderDate e YearMonth só mudam juntos, via SetOrderDate.
type SalesLine struct {
	OrderID     string
	orderDate   time.Time
	yearMonth   time.Time
	Category    *string
	Region      *string
	ProductID   string
	ProductName string
	Quantity    int64
	LineAmount  decimal.Decimal
	TotalDue    *decimal.Decimal
}

// OrderDate retorna a data do pedido
func (l SalesLine) OrderDate() time.Time {
	return l.orderDate
}

// YearMonth retorna o primeiro dia do mês do pedido
func (l SalesLine) YearMonth() time.Time {
	return l.yearMonth
}

// SetOrderDate atualiza a data do pedido e recalcula YearMonth
func (l *SalesLine) SetOrderDate(t time.Time) {
	l.orderDate = t
	l.yearMonth = TruncateMonth(t)
}

// OrderDay retorna a data do pedido truncada para o dia
func (l SalesLine) OrderDay() time.Time {
	return TruncateDay(l.orderDate)
}

// clone copia a linha sem compartilhar ponteiros com a original
func (l SalesLine) clone() SalesLine {
	out := l
	if l.Category != nil {
		c := *l.Category
		out.Category = &c
	}
	if l.Region != nil {
		r := *l.Region
		out.Region = &r
	}
	if l.TotalDue != nil {
		td := *l.TotalDue
		out.TotalDue = &td
	}
	return out
}

type salesLineJSON struct {
	OrderID     string           `json:"order_id"`
	OrderDate   time.Time        `json:"order_date"`
	YearMonth   string           `json:"year_month"`
	Category    *string          `json:"category"`
	Region      *string          `json:"region"`
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	Quantity    int64            `json:"quantity"`
	LineAmount  decimal.Decimal  `json:"line_amount"`
	TotalDue    *decimal.Decimal `json:"total_due,omitempty"`
}

func (l SalesLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(salesLineJSON{
		OrderID:     l.OrderID,
		OrderDate:   l.orderDate,
		YearMonth:   l.yearMonth.Format(time.DateOnly),
		Category:    l.Category,
		Region:      l.Region,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		LineAmount:  l.LineAmount,
		TotalDue:    l.TotalDue,
	})
}

// TruncateMonth retorna o primeiro dia do mês de t, à meia-noite
func TruncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// TruncateDay zera o horário de t
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SalesTable é o resultado materializado de uma carga.
// HasQuantity é falso quando a consulta não trouxe coluna de quantidade.
type SalesTable struct {
	Lines       []SalesLine
	HasQuantity bool
}

// NewSalesTable cria uma tabela a partir das linhas informadas
func NewSalesTable(lines []SalesLine, hasQuantity bool) *SalesTable {
	if lines == nil {
		lines = []SalesLine{}
	}
	return &SalesTable{Lines: lines, HasQuantity: hasQuantity}
}

// Len retorna o número de linhas
func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Lines)
}

// IsEmpty indica se a tabela não possui linhas
func (t *SalesTable) IsEmpty() bool {
	return t.Len() == 0
}

// Clone devolve uma cópia profunda; alterações na cópia não afetam a original
func (t *SalesTable) Clone() *SalesTable {
	if t == nil {
		return NewSalesTable(nil, false)
	}
	lines := make([]SalesLine, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = l.clone()
	}
	return &SalesTable{Lines: lines, HasQuantity: t.HasQuantity}
}
