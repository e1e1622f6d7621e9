// Package ranking ordena entidades por métrica e calcula metas e bonificações
package ranking

import (
	"math"
	"sort"
)

// Ranked é uma entidade com sua posição no ranking
type Ranked[T any] struct {
	Item  T
	Value float64
	Rank  int
}

// Rank ordena entities pela métrica em ordem decrescente. Empates são resolvidos
// por tieBreak (também decrescente) e, na falta dele, pela ordem original.
func Rank[T any](entities []T, metric func(T) float64, tieBreak func(T) float64) []Ranked[T] {
	ranked := make([]Ranked[T], len(entities))
	secondary := make([]float64, len(entities))
	for i, entity := range entities {
		ranked[i] = Ranked[T]{Item: entity, Value: sanitize(metric(entity))}
		if tieBreak != nil {
			secondary[i] = sanitize(tieBreak(entity))
		}
	}

	order := make([]int, len(entities))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if ranked[a].Value != ranked[b].Value {
			return ranked[a].Value > ranked[b].Value
		}
		return secondary[a] > secondary[b]
	})

	result := make([]Ranked[T], len(entities))
	for position, i := range order {
		result[position] = ranked[i]
		result[position].Rank = position + 1
	}

	return result
}

// NaN quebraria a ordenação estável
func sanitize(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return value
}
