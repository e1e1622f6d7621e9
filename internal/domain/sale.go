package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// SaleLineItem é um item de uma venda
type SaleLineItem struct {
	ProductCode string          `json:"product_code"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleRecord é uma venda como chega do backend. Timestamp é mantido como texto
// porque as datas são digitadas manualmente e nem sempre são válidas.
type SaleRecord struct {
	ID            string          `json:"id"`
	Timestamp     string          `json:"timestamp"`
	SellerRef     string          `json:"seller_ref"`
	ClientRef     string          `json:"client_ref"`
	Items         []SaleLineItem  `json:"items"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
}

// Time interpreta o timestamp da venda; ok é falso para datas ausentes ou inválidas
func (s SaleRecord) Time() (time.Time, bool) {
	return utils.ParseFlexible(s.Timestamp, time.UTC)
}

// TimeIn interpreta o timestamp considerando loc para datas sem fuso
func (s SaleRecord) TimeIn(loc *time.Location) (time.Time, bool) {
	return utils.ParseFlexible(s.Timestamp, loc)
}

// ItemsSubtotal soma os subtotais dos itens
func (s SaleRecord) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.Subtotal)
	}
	return sum
}

// Quantity soma as quantidades dos itens
func (s SaleRecord) Quantity() float64 {
	quantity := 0.0
	for _, item := range s.Items {
		quantity += item.Quantity
	}
	return quantity
}

// Consistent verifica total == soma dos subtotais - desconto
func (s SaleRecord) Consistent() bool {
	return s.Total.Equal(s.ItemsSubtotal().Sub(s.Discount))
}

// Seller é o vendedor referenciado por SaleRecord.SellerRef
type Seller struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SalesMetrics são as métricas consolidadas de um conjunto de vendas
type SalesMetrics struct {
	TotalRevenue  decimal.Decimal
	SalesQuantity int
	ItemsQuantity float64
	Discount      decimal.Decimal
	AverageTicket decimal.Decimal
}

// CalculateSalesMetrics consolida receita, quantidade e ticket médio
func CalculateSalesMetrics(sales []SaleRecord) SalesMetrics {
	metrics := SalesMetrics{
		TotalRevenue:  decimal.Zero,
		Discount:      decimal.Zero,
		AverageTicket: decimal.Zero,
	}

	for _, sale := range sales {
		metrics.TotalRevenue = metrics.TotalRevenue.Add(sale.Total)
		metrics.Discount = metrics.Discount.Add(sale.Discount)
		metrics.ItemsQuantity += sale.Quantity()
		metrics.SalesQuantity++
	}

	if metrics.SalesQuantity > 0 {
		metrics.AverageTicket = metrics.TotalRevenue.Div(decimal.NewFromInt(int64(metrics.SalesQuantity)))
	}

	return metrics
}

// Metrics converte as métricas para o formato usado pelo comparador de períodos
func (m SalesMetrics) Metrics() Metrics {
	return Metrics{
		MetricRevenue:       m.TotalRevenue.InexactFloat64(),
		MetricSales:         float64(m.SalesQuantity),
		MetricQuantity:      m.ItemsQuantity,
		MetricDiscount:      m.Discount.InexactFloat64(),
		MetricAverageTicket: m.AverageTicket.InexactFloat64(),
	}
}
