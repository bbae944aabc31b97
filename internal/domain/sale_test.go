package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTruncateMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "último dia do ano",
			input:    time.Date(2013, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2013, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "primeiro dia do ano",
			input:    time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "ano bissexto",
			input:    time.Date(2012, 2, 29, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2012, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateMonth(tt.input))
		})
	}
}

func TestSalesLine_SetOrderDateRecomputesYearMonth(t *testing.T) {
	var line SalesLine
	line.SetOrderDate(time.Date(2013, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2013, 12, 1, 0, 0, 0, 0, time.UTC), line.YearMonth())

	line.SetOrderDate(time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), line.YearMonth())
	assert.Equal(t, time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), line.OrderDate())
}

func TestSalesTable_CloneIsIndependent(t *testing.T) {
	category := "Bikes"
	due := decimal.RequireFromString("1500.00")
	line := SalesLine{OrderID: "1", Category: &category, TotalDue: &due, LineAmount: decimal.NewFromInt(1000)}
	line.SetOrderDate(time.Date(2013, 1, 5, 0, 0, 0, 0, time.UTC))

	original := NewSalesTable([]SalesLine{line}, true)
	copied := original.Clone()

	*copied.Lines[0].Category = "Clothing"
	copied.Lines[0].LineAmount = decimal.Zero
	copied.Lines = append(copied.Lines, SalesLine{OrderID: "2"})

	assert.Equal(t, "Bikes", *original.Lines[0].Category)
	assert.True(t, original.Lines[0].LineAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 1, original.Len())
	assert.True(t, copied.HasQuantity)
}

func TestSalesTable_NilIsEmpty(t *testing.T) {
	var table *SalesTable
	assert.True(t, table.IsEmpty())
	assert.Equal(t, 0, table.Clone().Len())
}
