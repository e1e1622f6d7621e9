package ranking

import "github.com/vfg2006/retail-analytics-api/internal/domain"

// BreakdownOrder define a métrica principal do ranking de agrupamentos
type BreakdownOrder string

const (
	OrderByRevenue  BreakdownOrder = "revenue"
	OrderByQuantity BreakdownOrder = "quantity"
)

// ParseBreakdownOrder aceita "quantity"; qualquer outro valor ordena por receita
func ParseBreakdownOrder(value string) BreakdownOrder {
	if value == string(OrderByQuantity) {
		return OrderByQuantity
	}
	return OrderByRevenue
}

// RankBreakdowns ordena os grupos pela métrica escolhida usando a outra como desempate.
// limit <= 0 devolve todos.
func RankBreakdowns(groups []domain.Breakdown, order BreakdownOrder, limit int) []domain.Breakdown {
	revenue := func(b domain.Breakdown) float64 { return b.Revenue.InexactFloat64() }
	quantity := func(b domain.Breakdown) float64 { return b.Quantity }

	metric, tieBreak := revenue, quantity
	if order == OrderByQuantity {
		metric, tieBreak = quantity, revenue
	}

	ranked := Rank(groups, metric, tieBreak)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]domain.Breakdown, 0, len(ranked))
	for _, r := range ranked {
		item := r.Item
		item.Rank = r.Rank
		result = append(result, item)
	}
	return result
}
