// Package turnover calcula giro de estoque, produtos parados e efetividade de promoções.
// Todas as funções recebem "now" explicitamente.
package turnover

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/engine/join"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// Window é a janela de vendas considerada no giro: os windowDays dias até now
type Window struct {
	Days int
	Now  time.Time
}

func (w Window) Start() time.Time {
	return utils.StartOfDay(w.Now).AddDate(0, 0, -(w.Days - 1))
}

func (w Window) Contains(t time.Time) bool {
	if w.Days <= 0 {
		return false
	}
	t = t.In(w.Now.Location())
	return !t.Before(w.Start()) && !t.After(w.Now)
}

type categoryTotals struct {
	stock float64
	sold  float64
}

// TurnoverByCategory calcula, por categoria, giro = vendidos/estoque*100 e a cobertura
// em dias. Categorias com estoque e giro abaixo de slowThreshold são marcadas como lentas.
func TurnoverByCategory(
	stock []domain.StockItem,
	products []domain.Product,
	sales []domain.SaleRecord,
	windowDays int,
	now time.Time,
	slowThreshold float64,
) []domain.CategoryTurnover {
	window := Window{Days: windowDays, Now: now}
	index := join.IndexProducts(products)
	totals := make(map[string]*categoryTotals)

	totalsFor := func(category string) *categoryTotals {
		t, ok := totals[category]
		if !ok {
			t = &categoryTotals{}
			totals[category] = t
		}
		return t
	}

	for _, item := range stock {
		quantity := item.Quantity
		if quantity < 0 {
			quantity = 0
		}
		totalsFor(index[item.ProductCode].CategoryName()).stock += quantity
	}

	for _, line := range join.SaleLinesIn(sales, products, now.Location()) {
		if !line.HasTimestamp || !window.Contains(line.Timestamp) {
			continue
		}
		totalsFor(line.Category).sold += line.Item.Quantity
	}

	result := make([]domain.CategoryTurnover, 0, len(totals))
	for category, t := range totals {
		rate := 0.0
		if t.stock > 0 {
			rate = utils.RoundWithTwoDecimalPlace(t.sold / t.stock * 100)
		}

		coverage := domain.StockCoverage{Infinite: true}
		if t.stock > 0 && t.sold > 0 && windowDays > 0 {
			coverage = domain.StockCoverage{Days: int(math.Round(t.stock / t.sold * float64(windowDays)))}
		}

		result = append(result, domain.CategoryTurnover{
			Category:     category,
			StockUnits:   t.stock,
			UnitsSold:    t.sold,
			TurnoverRate: rate,
			DaysOfStock:  coverage,
			Slow:         t.stock > 0 && rate < slowThreshold,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TurnoverRate != result[j].TurnoverRate {
			return result[i].TurnoverRate > result[j].TurnoverRate
		}
		return result[i].Category < result[j].Category
	})

	return result
}
