package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ToDecimal converte o valor devolvido pelo driver (numeric chega como []byte no postgres)
func ToDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return val, nil
	case float64:
		return decimal.NewFromFloat(val), nil
	case float32:
		return decimal.NewFromFloat32(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int32:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case []byte:
		return decimal.NewFromString(strings.TrimSpace(string(val)))
	case string:
		return decimal.NewFromString(strings.TrimSpace(val))
	}
	return decimal.Zero, fmt.Errorf("valor decimal inválido: %T", v)
}

// ToNullableDecimal devolve nil para NULL
func ToNullableDecimal(v any) (*decimal.Decimal, error) {
	if v == nil {
		return nil, nil
	}
	d, err := ToDecimal(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ToInt64 aceita inteiros, floats inteiros e texto numérico
func ToInt64(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case float64:
		return int64(val), nil
	case float32:
		return int64(val), nil
	case []byte:
		return parseIntText(string(val))
	case string:
		return parseIntText(val)
	}
	return 0, fmt.Errorf("valor inteiro inválido: %T", v)
}

func parseIntText(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("valor inteiro inválido: %q", s)
	}
	return d.IntPart(), nil
}

// ToString converte identificadores e textos; NULL vira string vazia
func ToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// ToNullableString preserva NULL como nil
func ToNullableString(v any) *string {
	if v == nil {
		return nil
	}
	s := ToString(v)
	return &s
}

// ToTime normaliza datas vindas do driver para UTC preservando o horário de parede
func ToTime(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return wallClockUTC(val), nil
	case []byte:
		return parseTimeText(string(val))
	case string:
		return parseTimeText(val)
	}
	return time.Time{}, fmt.Errorf("data inválida: %T", v)
}

func parseTimeText(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return wallClockUTC(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", s)
}

func wallClockUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// LookupColumn busca a coluna ignorando maiúsculas/minúsculas (o postgres devolve
// aliases sem aspas em minúsculas)
func LookupColumn(row map[string]any, name string) (any, bool) {
	if v, ok := row[name]; ok {
		return v, true
	}
	for k, v := range row {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
