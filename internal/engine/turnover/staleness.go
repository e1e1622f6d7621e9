package turnover

import (
	"sort"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/engine/join"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// StalenessReport lista itens com estoque positivo que nunca venderam ou cuja última
// venda tem mais de staleDays dias. Ordena pelo valor imobilizado, do maior para o menor.
func StalenessReport(
	stock []domain.StockItem,
	products []domain.Product,
	sales []domain.SaleRecord,
	staleDays int,
	now time.Time,
) []domain.StaleProduct {
	rows := join.JoinProductContextIn(stock, products, sales, now.Location())

	report := make([]domain.StaleProduct, 0)
	for _, row := range rows {
		// Sem estoque não há valor parado
		if row.OnHand <= 0 {
			continue
		}

		stale := domain.StaleProduct{
			ProductCode:       row.ProductCode,
			Name:              row.Name,
			Category:          row.Category,
			Quantity:          row.OnHand,
			SalePrice:         row.SalePrice,
			LastSaleAt:        row.LastSaleAt,
			DaysSinceLastSale: -1,
		}

		if row.LastSaleAt == nil {
			stale.NeverSold = true
		} else {
			stale.DaysSinceLastSale = utils.DaysBetween(*row.LastSaleAt, now)
			if stale.DaysSinceLastSale <= staleDays {
				continue
			}
		}

		stale.ImmobilizedValue = domain.ImmobilizedValue(row.OnHand, row.SalePrice)
		report = append(report, stale)
	}

	sort.SliceStable(report, func(i, j int) bool {
		if !report[i].ImmobilizedValue.Equal(report[j].ImmobilizedValue) {
			return report[i].ImmobilizedValue.GreaterThan(report[j].ImmobilizedValue)
		}
		return report[i].ProductCode < report[j].ProductCode
	})

	return report
}
