package turnover

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// PromotionEffectiveness divide as vendas do produto em promoStart: antes (< promoStart)
// e depois (>= promoStart, até now). O lift compara as médias diárias de quantidade.
func PromotionEffectiveness(product domain.Product, sales []domain.SaleRecord, promoStart, now time.Time) domain.EffectivenessRecord {
	record := domain.EffectivenessRecord{
		ProductCode:   product.Code,
		Name:          product.Name,
		PromoStart:    promoStart,
		RevenueBefore: decimal.Zero,
		RevenueAfter:  decimal.Zero,
	}

	var earliestBefore *time.Time
	for _, sale := range sales {
		ts, ok := sale.TimeIn(now.Location())
		if !ok || ts.After(now) {
			continue
		}

		for _, item := range sale.Items {
			if item.ProductCode != product.Code {
				continue
			}

			if ts.Before(promoStart) {
				record.QuantityBefore += item.Quantity
				record.RevenueBefore = record.RevenueBefore.Add(item.Subtotal)
				if earliestBefore == nil || ts.Before(*earliestBefore) {
					t := ts
					earliestBefore = &t
				}
				continue
			}

			record.QuantityAfter += item.Quantity
			record.RevenueAfter = record.RevenueAfter.Add(item.Subtotal)
		}
	}

	record.DaysBefore = 1
	if earliestBefore != nil {
		record.DaysBefore = atLeastOne(utils.DaysBetween(*earliestBefore, promoStart))
	}
	record.DaysAfter = atLeastOne(utils.DaysBetween(promoStart, now))

	record.DailyAvgBefore = utils.RoundWithTwoDecimalPlace(record.QuantityBefore / float64(record.DaysBefore))
	record.DailyAvgAfter = utils.RoundWithTwoDecimalPlace(record.QuantityAfter / float64(record.DaysAfter))

	record.Lift = Lift(record.QuantityBefore/float64(record.DaysBefore), record.QuantityAfter/float64(record.DaysAfter))

	total := record.QuantityBefore + record.QuantityAfter
	if total > 0 {
		record.ConversionShare = utils.RoundWithTwoDecimalPlace(record.QuantityAfter / total)
	}

	record.Severity = domain.SeverityFor(record.Lift)

	return record
}

// Lift compara as médias diárias: 100 quando não havia vendas antes e passou a haver,
// 0 quando não houve vendas em nenhum dos lados
func Lift(avgBefore, avgAfter float64) float64 {
	if avgBefore <= 0 {
		if avgAfter > 0 {
			return 100
		}
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((avgAfter - avgBefore) / avgBefore * 100)
}

func atLeastOne(days int) int {
	if days < 1 {
		return 1
	}
	return days
}
