package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// StockCoverage é a cobertura de estoque em dias; Infinite quando não há giro
type StockCoverage struct {
	Days     int  `json:"days"`
	Infinite bool `json:"infinite"`
}

func (c StockCoverage) String() string {
	if c.Infinite {
		return "infinite"
	}
	return strconv.Itoa(c.Days)
}

type CategoryTurnover struct {
	Category     string        `json:"category"`
	StockUnits   float64       `json:"stock_units"`
	UnitsSold    float64       `json:"units_sold"`
	TurnoverRate float64       `json:"turnover_rate"`
	DaysOfStock  StockCoverage `json:"days_of_stock"`
	Slow         bool          `json:"slow"`
}

type StaleProduct struct {
	ProductCode       string          `json:"product_code"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          float64         `json:"quantity"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	ImmobilizedValue  decimal.Decimal `json:"immobilized_value"`
	LastSaleAt        *time.Time      `json:"last_sale_at,omitempty"`
	DaysSinceLastSale int             `json:"days_since_last_sale"` // -1 quando nunca vendeu
	NeverSold         bool            `json:"never_sold"`
}

type Severity string

const (
	SeverityExcellent Severity = "Excellent"
	SeverityGood      Severity = "Good"
	SeverityRegular   Severity = "Regular"
	SeverityNegative  Severity = "Negative"
)

// SeverityFor classifica o lift de uma promoção
func SeverityFor(lift float64) Severity {
	switch {
	case lift >= 50:
		return SeverityExcellent
	case lift >= 20:
		return SeverityGood
	case lift >= 0:
		return SeverityRegular
	default:
		return SeverityNegative
	}
}

type EffectivenessRecord struct {
	ProductCode     string          `json:"product_code"`
	Name            string          `json:"name"`
	PromoStart      time.Time       `json:"promo_start"`
	QuantityBefore  float64         `json:"quantity_before"`
	QuantityAfter   float64         `json:"quantity_after"`
	RevenueBefore   decimal.Decimal `json:"revenue_before"`
	RevenueAfter    decimal.Decimal `json:"revenue_after"`
	DaysBefore      int             `json:"days_before"`
	DaysAfter       int             `json:"days_after"`
	DailyAvgBefore  float64         `json:"daily_avg_before"`
	DailyAvgAfter   float64         `json:"daily_avg_after"`
	Lift            float64         `json:"lift"`
	ConversionShare float64         `json:"conversion_share"`
	Severity        Severity        `json:"severity"`
}
