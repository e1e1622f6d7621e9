package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/engine/chart"
	"github.com/vfg2006/retail-analytics-api/internal/engine/ranking"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

// goalsFor usa a meta individual do vendedor e, na falta dela, a meta geral
func goalsFor(request *LeaderboardRequest) ranking.GoalsFor {
	return func(sellerCode string) domain.Goals {
		if goals, ok := request.SellerGoals[sellerCode]; ok {
			return goals
		}
		return request.Goals
	}
}

func (s *Service) SellerLeaderboard(ctx context.Context, request *LeaderboardRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetSellerLeaderboard, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		sales := request.Sales
		start, end, ok, err := s.parseRange(WidgetSellerLeaderboard, request.Range, false)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			sales = s.salesIn(sales, domain.Period{Start: start, End: end})
		}

		entries := ranking.SellerLeaderboard(request.Sellers, sales, goalsFor(request), s.cfg.Analytics.BonusPolicy())
		if len(request.PreviousPositions) > 0 {
			ranking.ApplyPreviousPositions(entries, request.PreviousPositions)
		}

		revenue, bonus := decimal.Zero, decimal.Zero
		for _, entry := range entries {
			revenue = revenue.Add(entry.Revenue)
			bonus = bonus.Add(entry.Bonus)
		}

		logger.WithFields(log.Fields{
			"sellers_count": len(entries),
			"sales_count":   len(sales),
		}).Debug("Ranking de vendedores calculado")

		summary := domain.ChartRow{
			"sellers":            len(entries),
			domain.MetricRevenue: money(revenue),
			"bonus":              money(bonus),
		}

		return chart.ToRows(entries), summary, nil
	})
}
