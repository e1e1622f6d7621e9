// Package bucketing agrupa registros com data em fatias de calendário contínuas
package bucketing

import (
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

const (
	dayLabelLayout   = time.DateOnly
	monthLabelLayout = "01-2006" // Formato mm-yyyy
)

// Extractor diz como obter a data e os valores de cada registro.
// Measure é opcional; sem ele apenas Entries é acumulado.
type Extractor[T any] struct {
	Timestamp func(T) (time.Time, bool)
	Measure   func(T) domain.Metrics
}

// Bucketize distribui records nos buckets entre start e end (inclusive).
// Todos os buckets do intervalo existem no resultado, mesmo vazios.
// Registros sem data válida ou fora do intervalo são ignorados.
func Bucketize[T any](records []T, ex Extractor[T], start, end time.Time, granularity domain.Granularity) []domain.Bucket {
	units := Units(start, end, granularity)
	buckets := make([]domain.Bucket, len(units))
	if len(units) == 0 {
		return buckets
	}

	index := make(map[string]int, len(units))
	for i, unit := range units {
		label := Label(unit, granularity)
		index[label] = i
		buckets[i] = domain.Bucket{
			Label:   label,
			Start:   unit,
			Metrics: domain.Metrics{},
		}
	}

	if ex.Timestamp == nil {
		return buckets
	}

	loc := start.Location()
	for _, record := range records {
		ts, ok := ex.Timestamp(record)
		if !ok || ts.IsZero() {
			continue
		}

		i, exists := index[Label(ts.In(loc), granularity)]
		if !exists {
			continue
		}

		buckets[i].Entries++
		if ex.Measure != nil {
			buckets[i].Metrics.Add(ex.Measure(record))
		}
	}

	return buckets
}

// BucketizeStrict é Bucketize com rejeição de intervalo invertido
func BucketizeStrict[T any](records []T, ex Extractor[T], start, end time.Time, granularity domain.Granularity) ([]domain.Bucket, error) {
	if Truncate(end.In(start.Location()), granularity).Before(Truncate(start, granularity)) {
		return nil, &domain.RangeError{Start: start, End: end, Granularity: granularity}
	}

	return Bucketize(records, ex, start, end, granularity), nil
}

// Units gera o início de cada unidade de calendário entre start e end, inclusive
func Units(start, end time.Time, granularity domain.Granularity) []time.Time {
	first := Truncate(start, granularity)
	last := Truncate(end.In(start.Location()), granularity)

	if first.After(last) {
		return []time.Time{}
	}

	units := make([]time.Time, 0, Count(first, last, granularity))
	for current := first; !current.After(last); current = Next(current, granularity) {
		units = append(units, current)
	}

	return units
}

// Count retorna quantas unidades de calendário existem entre start e end, inclusive
func Count(start, end time.Time, granularity domain.Granularity) int {
	first := Truncate(start, granularity)
	last := Truncate(end.In(start.Location()), granularity)
	if first.After(last) {
		return 0
	}

	if granularity == domain.GranularityMonth {
		return (last.Year()-first.Year())*12 + int(last.Month()-first.Month()) + 1
	}

	return utils.DaysBetween(first, last) + 1
}

// Truncate leva t para o início do dia ou do mês
func Truncate(t time.Time, granularity domain.Granularity) time.Time {
	if granularity == domain.GranularityMonth {
		return utils.FirstDayOfMonth(t)
	}
	return utils.StartOfDay(t)
}

func Next(t time.Time, granularity domain.Granularity) time.Time {
	if granularity == domain.GranularityMonth {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

func Label(t time.Time, granularity domain.Granularity) string {
	if granularity == domain.GranularityMonth {
		return t.Format(monthLabelLayout)
	}
	return t.Format(dayLabelLayout)
}
