// Package chart converte os agregados internos nas linhas planas consumidas pelos gráficos.
// Nenhuma regra de negócio vive aqui.
package chart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// Campos fixos esperados pelos widgets
const (
	FieldLabel   = "label"
	FieldEntries = "entries"
	FieldDelta   = "delta"
	FieldBalance = "balance"
)

// ToRows aceita qualquer agregado do motor; tipos desconhecidos geram lista vazia
func ToRows(aggregate any) []domain.ChartRow {
	switch value := aggregate.(type) {
	case []domain.Bucket:
		return BucketRows(value)
	case []domain.LedgerEntry:
		return LedgerRows(value)
	case []domain.LeaderboardEntry:
		return LeaderboardRows(value)
	case domain.ComparisonResult:
		return ComparisonRows(value)
	case *domain.ComparisonResult:
		if value == nil {
			return []domain.ChartRow{}
		}
		return ComparisonRows(*value)
	case []domain.CategoryTurnover:
		return TurnoverRows(value)
	case []domain.StaleProduct:
		return StaleRows(value)
	case []domain.EffectivenessRecord:
		return EffectivenessRows(value)
	case domain.EffectivenessRecord:
		return EffectivenessRows([]domain.EffectivenessRecord{value})
	case []domain.Breakdown:
		return BreakdownRows(value)
	case []domain.AccountSummary:
		return AccountSummaryRows(value)
	default:
		return []domain.ChartRow{}
	}
}

func money(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

func round(value float64) float64 {
	return utils.RoundWithTwoDecimalPlace(value)
}

// metricKeys junta as chaves de todos os buckets para que toda linha tenha os mesmos campos
func metricKeys(buckets []domain.Bucket) []string {
	union := domain.Metrics{}
	for _, bucket := range buckets {
		for key := range bucket.Metrics {
			union[key] = 0
		}
	}
	return union.Keys()
}

func BucketRows(buckets []domain.Bucket) []domain.ChartRow {
	keys := metricKeys(buckets)
	rows := make([]domain.ChartRow, 0, len(buckets))
	for _, bucket := range buckets {
		row := domain.ChartRow{
			FieldLabel:   bucket.Label,
			FieldEntries: bucket.Entries,
		}
		for _, key := range keys {
			row[key] = round(bucket.Metrics.Get(key))
		}
		rows = append(rows, row)
	}
	return rows
}

func LedgerRows(entries []domain.LedgerEntry) []domain.ChartRow {
	buckets := make([]domain.Bucket, 0, len(entries))
	for _, entry := range entries {
		buckets = append(buckets, entry.Bucket)
	}

	rows := BucketRows(buckets)
	for i, entry := range entries {
		rows[i][FieldDelta] = money(entry.Delta)
		rows[i][FieldBalance] = money(entry.Balance)
	}
	return rows
}

func LeaderboardRows(entries []domain.LeaderboardEntry) []domain.ChartRow {
	rows := make([]domain.ChartRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, domain.ChartRow{
			"rank":             entry.Rank,
			"seller_code":      entry.SellerCode,
			"seller_name":      entry.SellerName,
			"sales":            entry.SalesCount,
			"revenue":          money(entry.Revenue),
			"average_ticket":   money(entry.AverageTicket),
			"sales_progress":   entry.SalesProgress,
			"revenue_progress": entry.RevenueProgress,
			"overall_progress": entry.OverallProgress,
			"tier":             string(entry.Tier),
			"bonus":            money(entry.Bonus),
			"previous_rank":    entry.PreviousRank,
			"position_change":  entry.PositionChange,
		})
	}
	return rows
}

func ComparisonRows(result domain.ComparisonResult) []domain.ChartRow {
	rows := make([]domain.ChartRow, 0, len(result.Deltas))
	for _, delta := range result.Deltas {
		rows = append(rows, domain.ChartRow{
			"metric":  delta.Metric,
			"period1": round(delta.Value1),
			"period2": round(delta.Value2),
			"delta":   delta.Delta,
			"policy":  string(delta.Policy),
		})
	}
	return rows
}

func TurnoverRows(turnover []domain.CategoryTurnover) []domain.ChartRow {
	rows := make([]domain.ChartRow, 0, len(turnover))
	for _, t := range turnover {
		row := domain.ChartRow{
			"category":      t.Category,
			"stock_units":   round(t.StockUnits),
			"units_sold":    round(t.UnitsSold),
			"turnover_rate": t.TurnoverRate,
			"slow":          t.Slow,
		}

		// cobertura infinita segue como texto para o gráfico não interpretar como número
		if t.DaysOfStock.Infinite {
			row["days_of_stock"] = t.DaysOfStock.String()
		} else {
			row["days_of_stock"] = t.DaysOfStock.Days
		}
		rows = append(rows, row)
	}
	return rows
}

func StaleRows(report []domain.StaleProduct) []domain.ChartRow {
	rows := make([]domain.ChartRow, 0, len(report))
	for _, stale := range report {
		lastSale := ""
		if stale.LastSaleAt != nil {
			lastSale = stale.LastSaleAt.Format(time.DateOnly)
		}

		rows = append(rows, domain.ChartRow{
			"product_code":         stale.ProductCode,
			"name":                 stale.Name,
			"category":             stale.Category,
			"quantity":             round(stale.Quantity),
			"sale_price":           money(stale.SalePrice),
			"immobilized_value":    money(stale.ImmobilizedValue),
			"last_sale_at":         lastSale,
			"days_since_last_sale": stale.DaysSinceLastSale,
			"never_sold":           stale.NeverSold,
		})
	}
	return rows
}

func EffectivenessRows(records []domain.EffectivenessRecord) []domain.ChartRow {
	rows := make([]domain.ChartRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, domain.ChartRow{
			"product_code":     record.ProductCode,
			"name":             record.Name,
			"promo_start":      record.PromoStart.Format(time.DateOnly),
			"quantity_before":  round(record.QuantityBefore),
			"quantity_after":   round(record.QuantityAfter),
			"revenue_before":   money(record.RevenueBefore),
			"revenue_after":    money(record.RevenueAfter),
			"daily_avg_before": record.DailyAvgBefore,
			"daily_avg_after":  record.DailyAvgAfter,
			"lift":             record.Lift,
			"conversion_share": record.ConversionShare,
			"severity":         string(record.Severity),
		})
	}
	return rows
}

func BreakdownRows(breakdown []domain.Breakdown) []domain.ChartRow {
	rows := make([]domain.ChartRow, 0, len(breakdown))
	for _, b := range breakdown {
		rows = append(rows, domain.ChartRow{
			"rank":     b.Rank,
			"key":      b.Key,
			"label":    b.Label,
			"quantity": round(b.Quantity),
			"revenue":  money(b.Revenue),
			"count":    b.Count,
		})
	}
	return rows
}

func AccountSummaryRows(summaries []domain.AccountSummary) []domain.ChartRow {
	rows := make([]domain.ChartRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, domain.ChartRow{
			"kind":      string(summary.Kind),
			"status":    string(summary.Status),
			"count":     summary.Count,
			"value":     money(summary.Value),
			"remaining": money(summary.Remaining),
		})
	}
	return rows
}
