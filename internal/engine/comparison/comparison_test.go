package comparison

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func saleAt(date string, total int64, quantity float64) domain.SaleRecord {
	return domain.SaleRecord{
		Timestamp: date,
		Total:     decimal.NewFromInt(total),
		Items:     []domain.SaleLineItem{{Quantity: quantity}},
	}
}

func saleTime(s domain.SaleRecord) (time.Time, bool) { return s.Time() }

func salesMetrics(sales []domain.SaleRecord) domain.Metrics {
	return domain.CalculateSalesMetrics(sales).Metrics()
}

func period(start, end string) domain.Period {
	s, _ := time.Parse(time.DateOnly, start)
	e, _ := time.Parse(time.DateOnly, end)
	return domain.Period{Start: s, End: e}
}

var records = []domain.SaleRecord{
	saleAt("2024-01-05", 100, 1),
	saleAt("2024-01-31T20:00:00Z", 100, 1),
	saleAt("2024-02-10", 300, 3),
	saleAt("inválida", 999, 9),
}

func TestCompare_PeriodoContraEleMesmoTemDeltaZero(t *testing.T) {
	policies := []domain.DeltaPolicy{
		{Default: domain.ZeroOnEmptyBaseline},
		{Default: domain.FullOnEmptyBaseline},
	}

	for _, p := range []domain.Period{period("2024-01-01", "2024-01-31"), period("2023-01-01", "2023-01-31")} {
		for _, policy := range policies {
			result := Compare(records, saleTime, p, p, salesMetrics, policy)
			require.NotEmpty(t, result.Deltas)
			for _, delta := range result.Deltas {
				assert.Zero(t, delta.Delta, delta.Metric)
			}
		}
	}
}

func TestCompare_LimitesInclusivosEOrdemLivre(t *testing.T) {
	january := period("2024-01-01", "2024-01-31")
	february := period("2024-02-01", "2024-02-29")

	result := Compare(records, saleTime, february, january, salesMetrics, domain.DeltaPolicy{})

	assert.Equal(t, 1, result.Period1.Records)
	assert.Equal(t, 2, result.Period2.Records) // 31/01 às 20h entra em janeiro

	deltas := map[string]domain.MetricDelta{}
	for _, d := range result.Deltas {
		deltas[d.Metric] = d
	}
	assert.Equal(t, 300.0, deltas[domain.MetricRevenue].Value1)
	assert.Equal(t, 200.0, deltas[domain.MetricRevenue].Value2)
	assert.Equal(t, -33.33, deltas[domain.MetricRevenue].Delta)

	// métricas em ordem alfabética
	metricNames := make([]string, 0, len(result.Deltas))
	for _, d := range result.Deltas {
		metricNames = append(metricNames, d.Metric)
	}
	assert.IsIncreasing(t, metricNames)
}

func TestCompare_PeriodosSobrepostos(t *testing.T) {
	result := Compare(records, saleTime, period("2024-01-01", "2024-02-15"), period("2024-01-20", "2024-02-29"), salesMetrics, domain.DeltaPolicy{})

	assert.Equal(t, 3, result.Period1.Records)
	assert.Equal(t, 2, result.Period2.Records)
}

func TestCompare_PoliticaPorMetrica(t *testing.T) {
	policy := domain.DeltaPolicy{
		Default:   domain.ZeroOnEmptyBaseline,
		PerMetric: map[string]domain.ZeroDivisionPolicy{domain.MetricRevenue: domain.FullOnEmptyBaseline},
	}

	result := Compare(records, saleTime, period("2023-01-01", "2023-01-31"), period("2024-01-01", "2024-01-31"), salesMetrics, policy)

	for _, d := range result.Deltas {
		switch d.Metric {
		case domain.MetricRevenue:
			assert.Equal(t, 100.0, d.Delta)
			assert.Equal(t, domain.FullOnEmptyBaseline, d.Policy)
		case domain.MetricSales:
			assert.Equal(t, 0.0, d.Delta)
			assert.Equal(t, domain.ZeroOnEmptyBaseline, d.Policy)
		}
	}
}

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		m1, m2   float64
		policy   domain.ZeroDivisionPolicy
		expected float64
	}{
		{"Crescimento simples", 100, 150, domain.ZeroOnEmptyBaseline, 50},
		{"Queda simples", 200, 50, domain.ZeroOnEmptyBaseline, -75},
		{"Ambos zero", 0, 0, domain.FullOnEmptyBaseline, 0},
		{"Base zero com política zero", 0, 10, domain.ZeroOnEmptyBaseline, 0},
		{"Base zero com política cheia", 0, 10, domain.FullOnEmptyBaseline, 100},
		{"Base zero e valor negativo com política cheia", 0, -10, domain.FullOnEmptyBaseline, -100},
		{"Base negativa usa valor absoluto", -100, -50, domain.ZeroOnEmptyBaseline, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Delta(tt.m1, tt.m2, tt.policy))
		})
	}
}
