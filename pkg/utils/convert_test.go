package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
		wantErr  bool
	}{
		{name: "numeric do postgres", in: []byte("1000.50"), expected: "1000.5"},
		{name: "texto", in: " 12.3 ", expected: "12.3"},
		{name: "float", in: 150.25, expected: "150.25"},
		{name: "inteiro", in: int64(7), expected: "7"},
		{name: "nulo", in: nil, expected: "0"},
		{name: "texto inválido", in: "abc", wantErr: true},
		{name: "tipo não suportado", in: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ToDecimal(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(d), "got %s", d)
		})
	}
}

func TestToInt64(t *testing.T) {
	n, err := ToInt64([]byte("3"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = ToInt64(float64(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = ToInt64("4.000")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = ToInt64("x")
	assert.Error(t, err)
}

func TestToTime(t *testing.T) {
	expected := time.Date(2013, 1, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{name: "time.Time", in: expected, want: expected},
		{name: "preserva horário de parede", in: time.Date(2013, 1, 5, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600)), want: expected},
		{name: "data ISO", in: "2013-01-05", want: expected},
		{name: "timestamp sem fuso", in: []byte("2013-01-05 00:00:00"), want: expected},
		{name: "RFC3339", in: "2013-01-05T00:00:00Z", want: expected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := ToTime(42)
	assert.Error(t, err)
}

func TestToNullableString(t *testing.T) {
	assert.Nil(t, ToNullableString(nil))

	s := ToNullableString([]byte("Bikes"))
	require.NotNil(t, s)
	assert.Equal(t, "Bikes", *s)

	assert.Equal(t, "43659", ToString(int64(43659)))
}

func TestLookupColumn(t *testing.T) {
	row := map[string]any{"salesorderid": int64(1), "OrderDate": "2013-01-05"}

	v, ok := LookupColumn(row, "SalesOrderID")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	v, ok = LookupColumn(row, "OrderDate")
	assert.True(t, ok)
	assert.Equal(t, "2013-01-05", v)

	_, ok = LookupColumn(row, "Quantity")
	assert.False(t, ok)
}
