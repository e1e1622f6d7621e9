// Package join resolve as referências entre estoque, produtos e vendas antes da agregação
package join

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// IndexProducts indexa produtos por código; em códigos repetidos vale o primeiro
func IndexProducts(products []domain.Product) map[string]*domain.Product {
	index := make(map[string]*domain.Product, len(products))
	for i := range products {
		code := products[i].Code
		if _, exists := index[code]; exists {
			continue
		}
		index[code] = &products[i]
	}
	return index
}

// SupplierOf resolve o fornecedor pela entrada mais recente que informa fornecedor
func SupplierOf(item domain.StockItem) string {
	for i := len(item.Movements) - 1; i >= 0; i-- {
		movement := item.Movements[i]
		if movement.Type != domain.MovementInbound || movement.Supplier == nil {
			continue
		}

		if name := movement.Supplier.Resolve(""); name != "" {
			return name
		}
	}
	return domain.Unknown
}

// SaleLines achata os itens das vendas associando cada um ao seu produto
func SaleLines(sales []domain.SaleRecord, products []domain.Product) []domain.SaleLine {
	return saleLinesIn(sales, IndexProducts(products), time.UTC)
}

// SaleLinesIn é SaleLines interpretando datas sem fuso em loc
func SaleLinesIn(sales []domain.SaleRecord, products []domain.Product, loc *time.Location) []domain.SaleLine {
	return saleLinesIn(sales, IndexProducts(products), loc)
}

func saleLinesIn(sales []domain.SaleRecord, index map[string]*domain.Product, loc *time.Location) []domain.SaleLine {
	lines := make([]domain.SaleLine, 0, len(sales))
	for position, sale := range sales {
		ts, ok := sale.TimeIn(loc)
		for _, item := range sale.Items {
			product := index[item.ProductCode]
			lines = append(lines, domain.SaleLine{
				SaleID:        sale.ID,
				SaleIndex:     position,
				SellerRef:     sale.SellerRef,
				PaymentMethod: sale.PaymentMethod,
				Timestamp:     ts,
				HasTimestamp:  ok,
				Item:          item,
				Product:       product,
				Category:      product.CategoryName(),
			})
		}
	}
	return lines
}

type salesSummary struct {
	units      float64
	revenue    decimal.Decimal
	count      int
	lastSaleAt *time.Time
}

// JoinProductContext faz left join estoque -> produto e anexa o resumo de vendas
// de cada código. Itens sem produto cadastrado permanecem com Product nil.
func JoinProductContext(stock []domain.StockItem, products []domain.Product, sales []domain.SaleRecord) []domain.NormalizedRow {
	return JoinProductContextIn(stock, products, sales, time.UTC)
}

// JoinProductContextIn é JoinProductContext interpretando datas sem fuso em loc
func JoinProductContextIn(stock []domain.StockItem, products []domain.Product, sales []domain.SaleRecord, loc *time.Location) []domain.NormalizedRow {
	index := IndexProducts(products)
	summaries := summarizeSales(saleLinesIn(sales, index, loc))

	rows := make([]domain.NormalizedRow, 0, len(stock))
	for _, item := range stock {
		product := index[item.ProductCode]

		row := domain.NormalizedRow{
			ProductCode: item.ProductCode,
			Product:     product,
			Category:    product.CategoryName(),
			Supplier:    SupplierOf(item),
			OnHand:      item.Quantity,
			CostPrice:   item.CostPrice,
			SalePrice:   item.SalePrice,
			Revenue:     decimal.Zero,
		}

		if product != nil {
			row.Name = product.Name
			if row.SalePrice.IsZero() {
				row.SalePrice = product.SalePrice
			}
			if row.CostPrice.IsZero() {
				row.CostPrice = product.CostPrice
			}
		}

		if summary, ok := summaries[item.ProductCode]; ok {
			row.UnitsSold = summary.units
			row.Revenue = summary.revenue
			row.SalesCount = summary.count
			row.LastSaleAt = summary.lastSaleAt
		}

		rows = append(rows, row)
	}

	return rows
}

func summarizeSales(lines []domain.SaleLine) map[string]*salesSummary {
	summaries := make(map[string]*salesSummary)
	for _, line := range lines {
		summary, ok := summaries[line.Item.ProductCode]
		if !ok {
			summary = &salesSummary{revenue: decimal.Zero}
			summaries[line.Item.ProductCode] = summary
		}

		summary.units += line.Item.Quantity
		summary.revenue = summary.revenue.Add(line.Item.Subtotal)
		summary.count++

		if line.HasTimestamp && (summary.lastSaleAt == nil || line.Timestamp.After(*summary.lastSaleAt)) {
			ts := line.Timestamp
			summary.lastSaleAt = &ts
		}
	}
	return summaries
}

// StockGridCell é o saldo de uma combinação cor/tamanho
type StockGridCell struct {
	Colorway string
	Size     string
	Quantity float64
}

// StockGrid soma entradas menos saídas por cor e tamanho, na ordem em que cada
// combinação aparece no log
func StockGrid(item domain.StockItem) []StockGridCell {
	type key struct{ colorway, size string }

	positions := make(map[key]int)
	cells := make([]StockGridCell, 0)
	for _, movement := range item.Movements {
		k := key{movement.Colorway, movement.Size}
		i, ok := positions[k]
		if !ok {
			i = len(cells)
			positions[k] = i
			cells = append(cells, StockGridCell{Colorway: movement.Colorway, Size: movement.Size})
		}
		cells[i].Quantity += movement.Signed()
	}
	return cells
}
