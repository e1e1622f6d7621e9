package dashboard

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_dashboard.go -package=mocks

import (
	"context"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Nomes dos widgets, usados nas rotas, nos logs e nas chaves de cache
const (
	WidgetSalesEvolution         = "sales-evolution"
	WidgetInventoryEvolution     = "inventory-evolution"
	WidgetCashFlow               = "cash-flow"
	WidgetAccountsSummary        = "accounts-summary"
	WidgetSalesByCategory        = "sales-by-category"
	WidgetTopProducts            = "top-products"
	WidgetPaymentMethods         = "payment-methods"
	WidgetSellerLeaderboard      = "seller-leaderboard"
	WidgetPeriodComparison       = "period-comparison"
	WidgetCategoryTurnover       = "category-turnover"
	WidgetStaleProducts          = "stale-products"
	WidgetPromotionEffectiveness = "promotion-effectiveness"
	WidgetOverview               = "overview"
)

// Dashboard monta os relatórios dos widgets do painel
type Dashboard interface {
	SalesEvolution(ctx context.Context, request *SalesEvolutionRequest) (*domain.Report, error)
	InventoryEvolution(ctx context.Context, request *InventoryEvolutionRequest) (*domain.Report, error)
	CashFlowProjection(ctx context.Context, request *CashFlowRequest) (*domain.Report, error)
	AccountsSummary(ctx context.Context, request *AccountsSummaryRequest) (*domain.Report, error)
	SalesByCategory(ctx context.Context, request *BreakdownRequest) (*domain.Report, error)
	TopProducts(ctx context.Context, request *BreakdownRequest) (*domain.Report, error)
	PaymentMethods(ctx context.Context, request *BreakdownRequest) (*domain.Report, error)
	SellerLeaderboard(ctx context.Context, request *LeaderboardRequest) (*domain.Report, error)
	PeriodComparison(ctx context.Context, request *PeriodComparisonRequest) (*domain.Report, error)
	CategoryTurnover(ctx context.Context, request *TurnoverRequest) (*domain.Report, error)
	StaleProducts(ctx context.Context, request *StaleProductsRequest) (*domain.Report, error)
	PromotionEffectiveness(ctx context.Context, request *PromotionRequest) (*domain.Report, error)

	// Overview calcula em paralelo os widgets do painel principal
	Overview(ctx context.Context, request *OverviewRequest) (*domain.OverviewReport, error)

	// InvalidateCache apaga os relatórios em cache e retorna quantos foram removidos
	InvalidateCache(ctx context.Context) (int, error)
}
