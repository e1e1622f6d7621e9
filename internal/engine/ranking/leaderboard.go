package ranking

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

type sellerAggregate struct {
	code    string
	name    string
	sales   int
	revenue decimal.Decimal
}

func (a sellerAggregate) averageTicket() decimal.Decimal {
	if a.sales == 0 {
		return decimal.Zero
	}
	return a.revenue.Div(decimal.NewFromInt(int64(a.sales)))
}

// GoalsFor resolve as metas de um vendedor
type GoalsFor func(sellerCode string) domain.Goals

// FixedGoals aplica as mesmas metas a todos os vendedores
func FixedGoals(goals domain.Goals) GoalsFor {
	return func(string) domain.Goals { return goals }
}

// SellerLeaderboard consolida as vendas por vendedor e monta o ranking por faturamento,
// usando o ticket médio como critério de desempate. Vendedores sem vendas aparecem
// zerados; referências desconhecidas são agrupadas com nome Unknown.
func SellerLeaderboard(sellers []domain.Seller, sales []domain.SaleRecord, goals GoalsFor, policy domain.BonusPolicy) []domain.LeaderboardEntry {
	aggregates := make([]*sellerAggregate, 0, len(sellers))
	byCode := make(map[string]*sellerAggregate, len(sellers))

	for _, seller := range sellers {
		if _, exists := byCode[seller.Code]; exists {
			continue
		}
		aggregate := &sellerAggregate{code: seller.Code, name: seller.Name, revenue: decimal.Zero}
		byCode[seller.Code] = aggregate
		aggregates = append(aggregates, aggregate)
	}

	for _, sale := range sales {
		aggregate, exists := byCode[sale.SellerRef]
		if !exists {
			aggregate = &sellerAggregate{code: sale.SellerRef, name: domain.Unknown, revenue: decimal.Zero}
			byCode[sale.SellerRef] = aggregate
			aggregates = append(aggregates, aggregate)
		}

		aggregate.sales++
		aggregate.revenue = aggregate.revenue.Add(sale.Total)
	}

	ranked := Rank(aggregates,
		func(a *sellerAggregate) float64 { return a.revenue.InexactFloat64() },
		func(a *sellerAggregate) float64 { return a.averageTicket().InexactFloat64() },
	)

	if goals == nil {
		goals = FixedGoals(domain.Goals{})
	}

	entries := make([]domain.LeaderboardEntry, 0, len(ranked))
	for _, r := range ranked {
		a := r.Item
		goal := goals(a.code)

		salesProgress := Progress(float64(a.sales), goal.Sales)
		revenueProgress := Progress(a.revenue.InexactFloat64(), goal.Revenue.InexactFloat64())

		met := 0
		for _, p := range []float64{salesProgress, revenueProgress} {
			if GoalMet(p, policy) {
				met++
			}
		}
		tier := TierFor(met, 2)

		entries = append(entries, domain.LeaderboardEntry{
			SellerCode:      a.code,
			SellerName:      a.name,
			SalesCount:      a.sales,
			Revenue:         a.revenue,
			AverageTicket:   a.averageTicket().Round(2),
			Rank:            r.Rank,
			SalesProgress:   salesProgress,
			RevenueProgress: revenueProgress,
			OverallProgress: OverallProgress(salesProgress, revenueProgress),
			Tier:            tier,
			Bonus:           Bonus(a.revenue, tier, policy),
		})
	}

	return entries
}

// ApplyPreviousPositions preenche posição anterior e variação a partir de um ranking
// anterior indexado por código do vendedor
func ApplyPreviousPositions(entries []domain.LeaderboardEntry, previous map[string]int) {
	for i := range entries {
		before, exists := previous[entries[i].SellerCode]
		if !exists || before <= 0 {
			continue
		}

		entries[i].PreviousRank = before
		entries[i].PositionChange = before - entries[i].Rank
	}
}
