package dashboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// ResolveFilters normaliza a seleção do usuário. As datas são reduzidas ao dia (UTC) e
// as listas viram conjuntos; lista vazia significa "sem restrição".
func ResolveFilters(rawStart, rawEndInclusive time.Time, categories, regions []string) (domain.FilterState, error) {
	start := dayUTC(rawStart)
	end := dayUTC(rawEndInclusive)

	if start.After(end) {
		return domain.FilterState{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return domain.FilterState{
		StartDate:          start,
		EndDateInclusive:   end,
		SelectedCategories: domain.NewStringSet(categories...),
		SelectedRegions:    domain.NewStringSet(regions...),
	}, nil
}

// DateRanger fornece os limites de data usados quando o usuário não informa o período
type DateRanger interface {
	AvailableDateRange(ctx context.Context) (domain.DateRange, error)
}

// DefaultFilters completa as datas ausentes com o período disponível e resolve a seleção.
// O período só é consultado quando alguma das datas falta.
func DefaultFilters(
	ctx context.Context,
	ranger DateRanger,
	start, endInclusive *time.Time,
	categories, regions []string,
) (domain.FilterState, error) {
	if start == nil || endInclusive == nil {
		available, err := ranger.AvailableDateRange(ctx)
		if err != nil {
			return domain.FilterState{}, err
		}
		if start == nil {
			start = &available.MinDate
		}
		if endInclusive == nil {
			endInclusive = &available.MaxDate
		}
	}

	return ResolveFilters(*start, *endInclusive, categories, regions)
}

func dayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
