package dashboard

import (
	"context"
	"sync"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Overview roda os widgets do painel principal em paralelo. O primeiro erro cancela os demais.
func (s *Service) Overview(ctx context.Context, request *OverviewRequest) (*domain.OverviewReport, error) {
	logger := log.ForContext(ctx).WithField("widget", WidgetOverview)

	widgets := map[string]func(context.Context) (*domain.Report, error){
		WidgetSalesEvolution: func(ctx context.Context) (*domain.Report, error) {
			return s.SalesEvolution(ctx, &SalesEvolutionRequest{
				Sales:       request.Sales,
				Range:       request.Range,
				Granularity: request.Granularity,
			})
		},
		WidgetSellerLeaderboard: func(ctx context.Context) (*domain.Report, error) {
			return s.SellerLeaderboard(ctx, &LeaderboardRequest{
				Sellers:     request.Sellers,
				Sales:       request.Sales,
				Range:       request.Range,
				Goals:       request.Goals,
				SellerGoals: request.SellerGoals,
			})
		},
		WidgetCategoryTurnover: func(ctx context.Context) (*domain.Report, error) {
			return s.CategoryTurnover(ctx, &TurnoverRequest{
				Stock:    request.Stock,
				Products: request.Products,
				Sales:    request.Sales,
				Now:      request.Now,
			})
		},
		WidgetStaleProducts: func(ctx context.Context) (*domain.Report, error) {
			return s.StaleProducts(ctx, &StaleProductsRequest{
				Stock:    request.Stock,
				Products: request.Products,
				Sales:    request.Sales,
				Now:      request.Now,
			})
		},
		WidgetCashFlow: func(ctx context.Context) (*domain.Report, error) {
			return s.CashFlowProjection(ctx, &CashFlowRequest{
				Accounts:       request.Accounts,
				OpeningBalance: request.OpeningBalance,
				Now:            request.Now,
			})
		},
	}

	var (
		mu      sync.Mutex
		reports = make(map[string]*domain.Report, len(widgets))
	)

	g, gctx := errgroup.WithContext(ctx)
	for name, build := range widgets {
		g.Go(func() error {
			report, err := build(gctx)
			if err != nil {
				return err
			}

			mu.Lock()
			reports[name] = report
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao montar painel principal")
		return nil, err
	}

	logger.WithField("widgets_count", len(reports)).Info("Painel principal gerado")

	return &domain.OverviewReport{
		GeneratedAt: s.clock().In(s.loc),
		Reports:     reports,
	}, nil
}
