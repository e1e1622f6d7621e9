package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/engine/bucketing"
	"github.com/vfg2006/retail-analytics-api/internal/engine/chart"
	"github.com/vfg2006/retail-analytics-api/internal/engine/join"
	"github.com/vfg2006/retail-analytics-api/internal/engine/ledger"
	"github.com/vfg2006/retail-analytics-api/internal/engine/turnover"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

func movementMeasure(movement domain.StockMovement) domain.Metrics {
	switch movement.Type {
	case domain.MovementInbound:
		return domain.Metrics{domain.MetricInbound: movement.Quantity}
	case domain.MovementOutbound:
		return domain.Metrics{domain.MetricOutbound: movement.Quantity}
	default:
		return nil
	}
}

// filterStock aplica os filtros de categoria, fornecedor e produto sobre o estoque enriquecido
func (s *Service) filterStock(request *InventoryEvolutionRequest) []domain.StockItem {
	predicates := make([]join.Predicate[domain.NormalizedRow], 0, 3)
	if request.Category != "" {
		predicates = append(predicates, join.ByCategory(request.Category))
	}
	if request.Supplier != "" {
		predicates = append(predicates, join.BySupplier(request.Supplier))
	}
	if request.ProductCode != "" {
		predicates = append(predicates, join.ByProductCode(request.ProductCode))
	}

	if len(predicates) == 0 {
		return request.Stock
	}

	rows := join.JoinProductContextIn(request.Stock, request.Products, nil, s.loc)
	codes := make(map[string]struct{})
	for _, row := range join.Filter(rows, predicates...) {
		codes[row.ProductCode] = struct{}{}
	}

	items := make([]domain.StockItem, 0, len(codes))
	for _, item := range request.Stock {
		if _, ok := codes[item.ProductCode]; ok {
			items = append(items, item)
		}
	}
	return items
}

func stockGridRows(item domain.StockItem) []domain.ChartRow {
	cells := join.StockGrid(item)
	rows := make([]domain.ChartRow, 0, len(cells))
	for _, cell := range cells {
		rows = append(rows, domain.ChartRow{
			"colorway": cell.Colorway,
			"size":     cell.Size,
			"quantity": cell.Quantity,
		})
	}
	return rows
}

func (s *Service) InventoryEvolution(ctx context.Context, request *InventoryEvolutionRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetInventoryEvolution, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		reference, err := s.now(WidgetInventoryEvolution, request.EndDate)
		if err != nil {
			return nil, nil, err
		}

		days := orDefault(request.Days, s.cfg.Analytics.InventoryEvolutionDays)
		if err := s.checkDays(WidgetInventoryEvolution, days); err != nil {
			return nil, nil, err
		}
		start := utils.StartOfDay(reference).AddDate(0, 0, -(days - 1))
		end := utils.EndOfDay(reference)

		items := s.filterStock(request)
		movements := make([]domain.StockMovement, 0)
		for _, item := range items {
			movements = append(movements, item.Movements...)
		}

		timestamp := func(movement domain.StockMovement) (time.Time, bool) {
			return movement.TimeIn(s.loc)
		}

		buckets := bucketing.Bucketize(movements, bucketing.Extractor[domain.StockMovement]{
			Timestamp: timestamp,
			Measure:   movementMeasure,
		}, start, end, domain.GranularityDay)
		ensureMetrics(buckets, domain.MetricInbound, domain.MetricOutbound)

		// Sem saldo inicial informado, parte do líquido das movimentações anteriores à janela
		opening := 0.0
		if request.OpeningQuantity != nil {
			opening = *request.OpeningQuantity
		} else {
			for _, movement := range movements {
				if ts, ok := timestamp(movement); ok && ts.Before(start) {
					opening += movement.Signed()
				}
			}
		}

		seed := decimal.NewFromFloat(opening)
		entries := ledger.Accumulate(buckets, seed, ledger.MetricDifference(domain.MetricInbound, domain.MetricOutbound))

		summary := domain.ChartRow{
			"opening":         opening,
			"closing":         ledger.Final(entries, seed).InexactFloat64(),
			"products_count":  len(items),
			"movements_count": len(movements),
		}
		if request.ProductCode != "" && len(items) == 1 {
			summary["grid"] = stockGridRows(items[0])
		}

		logger.WithFields(log.Fields{
			"products_count":  len(items),
			"movements_count": len(movements),
		}).Debug("Evolução de estoque calculada")

		return chart.ToRows(entries), summary, nil
	})
}

func (s *Service) CategoryTurnover(ctx context.Context, request *TurnoverRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetCategoryTurnover, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		now, err := s.now(WidgetCategoryTurnover, request.Now)
		if err != nil {
			return nil, nil, err
		}

		windowDays := orDefault(request.WindowDays, s.cfg.Analytics.TurnoverWindowDays)
		threshold := s.cfg.Analytics.SlowTurnoverThreshold
		if request.SlowThreshold != nil {
			threshold = *request.SlowThreshold
		}

		categories := turnover.TurnoverByCategory(request.Stock, request.Products, request.Sales, windowDays, now, threshold)

		slow := 0
		for _, category := range categories {
			if category.Slow {
				slow++
			}
		}

		logger.WithFields(log.Fields{
			"categories_count": len(categories),
			"slow_count":       slow,
		}).Debug("Giro por categoria calculado")

		summary := domain.ChartRow{
			"categories":     len(categories),
			"slow":           slow,
			"window_days":    windowDays,
			"slow_threshold": threshold,
		}

		return chart.ToRows(categories), summary, nil
	})
}

func (s *Service) StaleProducts(ctx context.Context, request *StaleProductsRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetStaleProducts, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		now, err := s.now(WidgetStaleProducts, request.Now)
		if err != nil {
			return nil, nil, err
		}

		staleDays := orDefault(request.StaleDays, s.cfg.Analytics.StaleDays)
		report := turnover.StalenessReport(request.Stock, request.Products, request.Sales, staleDays, now)

		immobilized := decimal.Zero
		neverSold := 0
		for _, product := range report {
			immobilized = immobilized.Add(product.ImmobilizedValue)
			if product.NeverSold {
				neverSold++
			}
		}

		logger.WithField("stale_count", len(report)).Debug("Produtos parados calculados")

		summary := domain.ChartRow{
			"products":          len(report),
			"never_sold":        neverSold,
			"immobilized_value": money(immobilized),
			"stale_days":        staleDays,
		}

		return chart.ToRows(report), summary, nil
	})
}

func (s *Service) PromotionEffectiveness(ctx context.Context, request *PromotionRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetPromotionEffectiveness, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		now, err := s.now(WidgetPromotionEffectiveness, request.Now)
		if err != nil {
			return nil, nil, err
		}

		var fixedStart *time.Time
		if request.PromoStart != "" {
			start, ok := utils.ParseFlexible(request.PromoStart, s.loc)
			if !ok {
				return nil, nil, invalidDate(WidgetPromotionEffectiveness, "promo_start", request.PromoStart)
			}
			fixedStart = &start
		}

		wanted := make(map[string]struct{}, len(request.ProductCodes))
		for _, code := range request.ProductCodes {
			wanted[code] = struct{}{}
		}

		records := make([]domain.EffectivenessRecord, 0)
		skipped := 0
		for _, product := range request.Products {
			if _, ok := wanted[product.Code]; len(wanted) > 0 && !ok {
				continue
			}

			promoStart, ok := product.PromotionStart(now)
			if fixedStart != nil {
				promoStart, ok = *fixedStart, true
			}
			if !ok {
				skipped++
				continue
			}

			records = append(records, turnover.PromotionEffectiveness(product, request.Sales, promoStart, now))
		}

		logger.WithFields(log.Fields{
			"products_count": len(records),
			"skipped_count":  skipped,
		}).Debug("Efetividade de promoções calculada")

		summary := domain.ChartRow{
			"products": len(records),
			"skipped":  skipped,
		}

		return chart.ToRows(records), summary, nil
	})
}
