package dashboarding

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-panel-api/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtido %s", expected, actual)
}

// scenarioRows são as linhas como o driver do postgres as devolve
func scenarioRows() []domain.Row {
	return []domain.Row{
		{
			"salesorderid": int64(1), "orderdate": day(2013, 1, 5), "category": "Bikes", "region": "BC",
			"productid": int64(771), "productname": "Mountain-100 Silver, 38", "quantity": int64(2),
			"lineamount": []byte("1000.00"), "totaldue": []byte("1500.00"),
		},
		{
			"salesorderid": int64(1), "orderdate": day(2013, 1, 5), "category": "Bikes", "region": "BC",
			"productid": int64(772), "productname": "Mountain-100 Silver, 42", "quantity": int64(1),
			"lineamount": []byte("500.00"), "totaldue": []byte("1500.00"),
		},
		{
			"salesorderid": int64(2), "orderdate": day(2013, 2, 10), "category": "Clothing", "region": "ON",
			"productid": int64(712), "productname": "AWC Logo Cap", "quantity": int64(3),
			"lineamount": []byte("150.00"), "totaldue": []byte("150.00"),
		},
	}
}

func scenarioTable(t *testing.T) *domain.SalesTable {
	t.Helper()
	table, err := tableFromRows(scenarioRows())
	if err != nil {
		t.Fatalf("tableFromRows: %v", err)
	}
	return table
}

func newLine(orderID string, date time.Time, category, region *string, product string, qty int64, amount string) domain.SalesLine {
	l := domain.SalesLine{
		OrderID:     orderID,
		Category:    category,
		Region:      region,
		ProductName: product,
		Quantity:    qty,
		LineAmount:  decimal.RequireFromString(amount),
	}
	l.SetOrderDate(date)
	return l
}
