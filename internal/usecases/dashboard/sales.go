package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/engine/bucketing"
	"github.com/vfg2006/retail-analytics-api/internal/engine/chart"
	"github.com/vfg2006/retail-analytics-api/internal/engine/comparison"
	"github.com/vfg2006/retail-analytics-api/internal/engine/join"
	"github.com/vfg2006/retail-analytics-api/internal/engine/ranking"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

func saleMeasure(sale domain.SaleRecord) domain.Metrics {
	return domain.Metrics{
		domain.MetricRevenue:  sale.Total.InexactFloat64(),
		domain.MetricSales:    1,
		domain.MetricQuantity: sale.Quantity(),
		domain.MetricDiscount: sale.Discount.InexactFloat64(),
	}
}

// withAverageTicket calcula o ticket médio de cada bucket a partir dos totais já somados
func withAverageTicket(buckets []domain.Bucket) {
	for i := range buckets {
		metrics := buckets[i].Metrics
		metrics[domain.MetricAverageTicket] = 0
		if sales := metrics.Get(domain.MetricSales); sales > 0 {
			metrics[domain.MetricAverageTicket] = metrics.Get(domain.MetricRevenue) / sales
		}
	}
}

func salesSummary(metrics domain.SalesMetrics) domain.ChartRow {
	return domain.ChartRow{
		domain.MetricRevenue:       money(metrics.TotalRevenue),
		domain.MetricSales:         metrics.SalesQuantity,
		domain.MetricQuantity:      metrics.ItemsQuantity,
		domain.MetricDiscount:      money(metrics.Discount),
		domain.MetricAverageTicket: money(metrics.AverageTicket),
	}
}

func (s *Service) saleTimestamp(sale domain.SaleRecord) (time.Time, bool) {
	return sale.TimeIn(s.loc)
}

func (s *Service) SalesEvolution(ctx context.Context, request *SalesEvolutionRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetSalesEvolution, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		start, end, _, err := s.parseRange(WidgetSalesEvolution, request.Range, true)
		if err != nil {
			return nil, nil, err
		}

		granularity := s.granularity(request.Granularity)
		if err := s.checkBuckets(WidgetSalesEvolution, start, end, granularity); err != nil {
			return nil, nil, err
		}

		extractor := bucketing.Extractor[domain.SaleRecord]{
			Timestamp: s.saleTimestamp,
			Measure:   saleMeasure,
		}

		var buckets []domain.Bucket
		if s.strict(request.Strict) {
			buckets, err = bucketing.BucketizeStrict(request.Sales, extractor, start, end, granularity)
			var rangeErr *domain.RangeError
			if errors.As(err, &rangeErr) {
				return nil, nil, invalidRange(WidgetSalesEvolution, rangeErr)
			}
		} else {
			buckets = bucketing.Bucketize(request.Sales, extractor, start, end, granularity)
		}

		ensureMetrics(buckets, domain.MetricRevenue, domain.MetricSales, domain.MetricQuantity, domain.MetricDiscount)
		withAverageTicket(buckets)

		// O resumo cobre as mesmas unidades de calendário dos buckets
		unitStart := bucketing.Truncate(start, granularity)
		unitEnd := bucketing.Next(bucketing.Truncate(end, granularity), granularity).AddDate(0, 0, -1)
		inRange := s.salesIn(request.Sales, domain.Period{Start: unitStart, End: unitEnd})
		warnInconsistentSales(logger, inRange)

		logger.WithFields(log.Fields{
			"sales_count":   len(inRange),
			"buckets_count": len(buckets),
			"granularity":   granularity,
		}).Debug("Evolução de vendas calculada")

		return chart.ToRows(buckets), salesSummary(domain.CalculateSalesMetrics(inRange)), nil
	})
}

// breakdownSales aplica o intervalo opcional das requisições de agrupamento
func (s *Service) breakdownSales(widget string, request *BreakdownRequest) ([]domain.SaleRecord, error) {
	start, end, ok, err := s.parseRange(widget, request.Range, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return request.Sales, nil
	}
	return s.salesIn(request.Sales, domain.Period{Start: start, End: end}), nil
}

func breakdownSummary(groups []domain.Breakdown) domain.ChartRow {
	revenue := decimal.Zero
	quantity := 0.0
	for _, group := range groups {
		revenue = revenue.Add(group.Revenue)
		quantity += group.Quantity
	}

	return domain.ChartRow{
		"groups":              len(groups),
		domain.MetricRevenue:  money(revenue),
		domain.MetricQuantity: quantity,
	}
}

func (s *Service) SalesByCategory(ctx context.Context, request *BreakdownRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetSalesByCategory, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		sales, err := s.breakdownSales(WidgetSalesByCategory, request)
		if err != nil {
			return nil, nil, err
		}

		groups := join.GroupLines(join.SaleLinesIn(sales, request.Products, s.loc), join.ByLineCategory)
		ranked := ranking.RankBreakdowns(groups, ranking.ParseBreakdownOrder(request.OrderBy), request.Limit)

		logger.WithField("sales_count", len(sales)).Debug("Vendas por categoria calculadas")

		return chart.ToRows(ranked), breakdownSummary(groups), nil
	})
}

func (s *Service) TopProducts(ctx context.Context, request *BreakdownRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetTopProducts, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		sales, err := s.breakdownSales(WidgetTopProducts, request)
		if err != nil {
			return nil, nil, err
		}

		limit := orDefault(request.Limit, s.cfg.Analytics.TopProductsLimit)
		groups := join.GroupLines(join.SaleLinesIn(sales, request.Products, s.loc), join.ByLineProduct)
		ranked := ranking.RankBreakdowns(groups, ranking.ParseBreakdownOrder(request.OrderBy), limit)

		logger.WithFields(log.Fields{"sales_count": len(sales), "limit": limit}).Debug("Produtos mais vendidos calculados")

		return chart.ToRows(ranked), breakdownSummary(groups), nil
	})
}

func (s *Service) PaymentMethods(ctx context.Context, request *BreakdownRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetPaymentMethods, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		sales, err := s.breakdownSales(WidgetPaymentMethods, request)
		if err != nil {
			return nil, nil, err
		}

		groups := join.GroupSales(sales, join.ByPaymentMethod)
		ranked := ranking.RankBreakdowns(groups, ranking.ParseBreakdownOrder(request.OrderBy), request.Limit)

		logger.WithField("sales_count", len(sales)).Debug("Formas de pagamento calculadas")

		return chart.ToRows(ranked), breakdownSummary(groups), nil
	})
}

// defaultDeltaPolicy: contagens partindo de zero não geram variação; valores monetários geram ±100
func defaultDeltaPolicy() domain.DeltaPolicy {
	return domain.DeltaPolicy{
		Default: domain.ZeroOnEmptyBaseline,
		PerMetric: map[string]domain.ZeroDivisionPolicy{
			domain.MetricSales:         domain.ZeroOnEmptyBaseline,
			domain.MetricQuantity:      domain.ZeroOnEmptyBaseline,
			domain.MetricRevenue:       domain.FullOnEmptyBaseline,
			domain.MetricAverageTicket: domain.FullOnEmptyBaseline,
			domain.MetricDiscount:      domain.FullOnEmptyBaseline,
		},
	}
}

func deltaPolicy(overrides map[string]string) (domain.DeltaPolicy, error) {
	policy := defaultDeltaPolicy()
	for metric, value := range overrides {
		switch p := domain.ZeroDivisionPolicy(value); p {
		case domain.ZeroOnEmptyBaseline, domain.FullOnEmptyBaseline:
			policy.PerMetric[metric] = p
		default:
			return policy, NewAnalyticsError(ErrInvalidPolicy, apiErrors.ErrInvalidRequest, WidgetPeriodComparison,
				"política "+value+" para "+metric+" deve ser zero ou full")
		}
	}
	return policy, nil
}

func (s *Service) PeriodComparison(ctx context.Context, request *PeriodComparisonRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetPeriodComparison, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		start1, end1, _, err := s.parseRange(WidgetPeriodComparison, request.Period1, true)
		if err != nil {
			return nil, nil, err
		}

		start2, end2, _, err := s.parseRange(WidgetPeriodComparison, request.Period2, true)
		if err != nil {
			return nil, nil, err
		}

		policy, err := deltaPolicy(request.Policies)
		if err != nil {
			return nil, nil, err
		}

		result := comparison.Compare(
			request.Sales,
			s.saleTimestamp,
			domain.Period{Start: start1, End: end1},
			domain.Period{Start: start2, End: end2},
			func(sales []domain.SaleRecord) domain.Metrics {
				return domain.CalculateSalesMetrics(sales).Metrics()
			},
			policy,
		)

		logger.WithFields(log.Fields{
			"period1_count": result.Period1.Records,
			"period2_count": result.Period2.Records,
		}).Debug("Comparação de períodos calculada")

		summary := domain.ChartRow{
			"period1_records": result.Period1.Records,
			"period2_records": result.Period2.Records,
		}

		return chart.ToRows(result), summary, nil
	})
}
