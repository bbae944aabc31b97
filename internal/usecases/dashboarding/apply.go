package dashboarding

import (
	"sort"

	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// ApplyFilters mantém apenas as linhas dentro do intervalo semiaberto e, quando os
// conjuntos não são vazios, das categorias e regiões selecionadas. A tabela de entrada
// não é alterada.
func ApplyFilters(table *domain.SalesTable, interval domain.DateInterval, categories, regions domain.StringSet) *domain.SalesTable {
	if table == nil {
		return domain.NewSalesTable(nil, false)
	}

	lines := make([]domain.SalesLine, 0, len(table.Lines))
	for _, line := range table.Lines {
		if !interval.Contains(line.OrderDate()) {
			continue
		}
		if !categories.Matches(line.Category) || !regions.Matches(line.Region) {
			continue
		}
		lines = append(lines, line)
	}

	return domain.NewSalesTable(lines, table.HasQuantity)
}

// SortDetail ordena as linhas para a tabela de detalhe: data crescente, valor decrescente
func SortDetail(lines []domain.SalesLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		di, dj := lines[i].OrderDate(), lines[j].OrderDate()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return lines[i].LineAmount.GreaterThan(lines[j].LineAmount)
	})
}
