package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta uma data ISO (2006-01-02). String vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// SplitCSV separa valores por vírgula descartando itens vazios
func SplitCSV(values ...string) []string {
	out := make([]string, 0)
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
