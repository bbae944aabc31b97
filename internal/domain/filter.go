package domain

import (
	"sort"
	"strings"
	"time"
)

// DateInterval é um intervalo semiaberto [Start, End)
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// Contains indica se t está dentro do intervalo
func (i DateInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// StartString formata o início do intervalo como data ISO
func (i DateInterval) StartString() string {
	return i.Start.Format(time.DateOnly)
}

// EndString formata o fim (exclusivo) do intervalo como data ISO
func (i DateInterval) EndString() string {
	return i.End.Format(time.DateOnly)
}

// StringSet é um conjunto de valores de dimensão. Vazio significa "sem restrição".
type StringSet map[string]struct{}

// NewStringSet cria um conjunto ignorando valores vazios e duplicados. Os valores são
// mantidos como vieram; espaços só são removidos na borda (utils.SplitCSV).
func NewStringSet(values ...string) StringSet {
	set := make(StringSet, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

// Has verifica se o valor pertence ao conjunto
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Matches aplica a regra de filtro de dimensão: conjunto vazio aceita tudo,
// e valores nulos nunca pertencem a um conjunto não vazio.
func (s StringSet) Matches(v *string) bool {
	if len(s) == 0 {
		return true
	}
	if v == nil {
		return false
	}
	return s.Has(*v)
}

// IsEmpty indica se o conjunto não restringe nada
func (s StringSet) IsEmpty() bool {
	return len(s) == 0
}

// Sorted retorna os valores em ordem alfabética
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// CSV serializa o conjunto ordenado separado por vírgulas ("" quando vazio)
func (s StringSet) CSV() string {
	return strings.Join(s.Sorted(), ",")
}

// FilterState é a seleção atual do usuário
type FilterState struct {
	StartDate          time.Time
	EndDateInclusive   time.Time
	SelectedCategories StringSet
	SelectedRegions    StringSet
}

// EndDateExclusive é o dia seguinte à data final informada
func (f FilterState) EndDateExclusive() time.Time {
	return f.EndDateInclusive.AddDate(0, 0, 1)
}

// Interval retorna o intervalo semiaberto usado nas comparações
func (f FilterState) Interval() DateInterval {
	return DateInterval{Start: f.StartDate, End: f.EndDateExclusive()}
}

// FilterSummary é a forma serializável dos filtros aplicados
type FilterSummary struct {
	StartDate        string   `json:"start_date"`
	EndDateInclusive string   `json:"end_date"`
	EndDateExclusive string   `json:"end_date_exclusive"`
	Categories       []string `json:"categories"`
	Regions          []string `json:"regions"`
}

// Summary descreve os filtros para a resposta da API
func (f FilterState) Summary() FilterSummary {
	return FilterSummary{
		StartDate:        f.StartDate.Format(time.DateOnly),
		EndDateInclusive: f.EndDateInclusive.Format(time.DateOnly),
		EndDateExclusive: f.EndDateExclusive().Format(time.DateOnly),
		Categories:       f.SelectedCategories.Sorted(),
		Regions:          f.SelectedRegions.Sorted(),
	}
}
