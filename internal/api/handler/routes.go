package handler

import (
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/retail-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func analyticsRoute(widget string, handler http.Handler) router.Route {
	return router.Route{
		Path:        "/v1/analytics/" + widget,
		Method:      http.MethodPost,
		Handler:     handler,
		Middlewares: []func(http.Handler) http.Handler{middleware.JSONBody(middleware.DefaultMaxBodyBytes)},
	}
}

// Analytics retorna uma rota POST por widget; o corpo carrega os registros a agregar
func Analytics(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		analyticsRoute(dashboard.WidgetSalesEvolution, analyticsHandler(dashboard.WidgetSalesEvolution, service.SalesEvolution)),
		analyticsRoute(dashboard.WidgetInventoryEvolution, analyticsHandler(dashboard.WidgetInventoryEvolution, service.InventoryEvolution)),
		analyticsRoute(dashboard.WidgetCashFlow, analyticsHandler(dashboard.WidgetCashFlow, service.CashFlowProjection)),
		analyticsRoute(dashboard.WidgetAccountsSummary, analyticsHandler(dashboard.WidgetAccountsSummary, service.AccountsSummary)),
		analyticsRoute(dashboard.WidgetSalesByCategory, analyticsHandler(dashboard.WidgetSalesByCategory, service.SalesByCategory)),
		analyticsRoute(dashboard.WidgetTopProducts, analyticsHandler(dashboard.WidgetTopProducts, service.TopProducts)),
		analyticsRoute(dashboard.WidgetPaymentMethods, analyticsHandler(dashboard.WidgetPaymentMethods, service.PaymentMethods)),
		analyticsRoute(dashboard.WidgetSellerLeaderboard, analyticsHandler(dashboard.WidgetSellerLeaderboard, service.SellerLeaderboard)),
		analyticsRoute(dashboard.WidgetPeriodComparison, analyticsHandler(dashboard.WidgetPeriodComparison, service.PeriodComparison)),
		analyticsRoute(dashboard.WidgetCategoryTurnover, analyticsHandler(dashboard.WidgetCategoryTurnover, service.CategoryTurnover)),
		analyticsRoute(dashboard.WidgetStaleProducts, analyticsHandler(dashboard.WidgetStaleProducts, service.StaleProducts)),
		analyticsRoute(dashboard.WidgetPromotionEffectiveness, analyticsHandler(dashboard.WidgetPromotionEffectiveness, service.PromotionEffectiveness)),
		analyticsRoute(dashboard.WidgetOverview, analyticsHandler(dashboard.WidgetOverview, service.Overview)),
		{
			Path:    "/v1/analytics/cache",
			Method:  http.MethodDelete,
			Handler: InvalidateCache(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
