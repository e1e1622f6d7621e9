// Package comparison compara métricas de dois períodos quaisquer
package comparison

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// Compare calcula metrics de forma independente sobre os registros de cada período
// (limites inclusivos). Os períodos podem se sobrepor e vir em qualquer ordem.
func Compare[T any](
	records []T,
	timestampOf func(T) (time.Time, bool),
	period1, period2 domain.Period,
	metrics func([]T) domain.Metrics,
	policy domain.DeltaPolicy,
) domain.ComparisonResult {
	first := snapshot(records, timestampOf, period1, metrics)
	second := snapshot(records, timestampOf, period2, metrics)

	keys := make(map[string]struct{})
	for key := range first.Metrics {
		keys[key] = struct{}{}
	}
	for key := range second.Metrics {
		keys[key] = struct{}{}
	}

	names := make([]string, 0, len(keys))
	for key := range keys {
		names = append(names, key)
	}
	sort.Strings(names)

	deltas := make([]domain.MetricDelta, 0, len(names))
	for _, name := range names {
		m1, m2 := first.Metrics.Get(name), second.Metrics.Get(name)
		p := policy.For(name)
		deltas = append(deltas, domain.MetricDelta{
			Metric: name,
			Value1: m1,
			Value2: m2,
			Delta:  Delta(m1, m2, p),
			Policy: p,
		})
	}

	return domain.ComparisonResult{
		Period1: first,
		Period2: second,
		Deltas:  deltas,
	}
}

func snapshot[T any](records []T, timestampOf func(T) (time.Time, bool), period domain.Period, metrics func([]T) domain.Metrics) domain.Snapshot {
	selected := make([]T, 0)
	for _, record := range records {
		ts, ok := timestampOf(record)
		if !ok {
			continue
		}
		if period.Contains(ts) {
			selected = append(selected, record)
		}
	}

	values := domain.Metrics{}
	if metrics != nil {
		if computed := metrics(selected); computed != nil {
			values = computed.Clone()
		}
	}

	return domain.Snapshot{
		Period:  period,
		Records: len(selected),
		Metrics: values,
	}
}

// Delta retorna a variação percentual de m1 para m2. Com base zero o resultado
// segue policy; nunca retorna NaN nem infinito.
func Delta(m1, m2 float64, policy domain.ZeroDivisionPolicy) float64 {
	if isInvalid(m1) || isInvalid(m2) {
		return 0
	}

	if m1 == 0 {
		if m2 == 0 || policy != domain.FullOnEmptyBaseline {
			return 0
		}
		if m2 > 0 {
			return 100
		}
		return -100
	}

	return utils.RoundWithTwoDecimalPlace((m2 - m1) / math.Abs(m1) * 100)
}

func isInvalid(value float64) bool {
	return math.IsNaN(value) || math.IsInf(value, 0)
}
