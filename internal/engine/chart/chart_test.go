package chart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func TestBucketRows_PreencheMetricasAusentes(t *testing.T) {
	buckets := []domain.Bucket{
		{Label: "2024-01-01", Entries: 2, Metrics: domain.Metrics{domain.MetricRevenue: 10.006}},
		{Label: "2024-01-02", Metrics: domain.Metrics{}},
		{Label: "2024-01-03", Entries: 1, Metrics: domain.Metrics{domain.MetricQuantity: 3}},
	}

	rows := ToRows(buckets)

	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Contains(t, row, domain.MetricRevenue)
		assert.Contains(t, row, domain.MetricQuantity)
		assert.Contains(t, row, FieldLabel)
	}
	assert.Equal(t, 10.01, rows[0][domain.MetricRevenue])
	assert.Equal(t, 0.0, rows[1][domain.MetricRevenue])
	assert.Equal(t, 0, rows[1][FieldEntries])
}

func TestLedgerRows(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Bucket: domain.Bucket{Label: "a"}, Delta: decimal.RequireFromString("1.234"), Balance: decimal.RequireFromString("11.234")},
	}

	rows := ToRows(entries)

	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0][FieldLabel])
	assert.Equal(t, 1.23, rows[0][FieldDelta])
	assert.Equal(t, 11.23, rows[0][FieldBalance])
}

func TestTurnoverRows_CoberturaInfinita(t *testing.T) {
	rows := ToRows([]domain.CategoryTurnover{
		{Category: "A", DaysOfStock: domain.StockCoverage{Days: 12}},
		{Category: "B", DaysOfStock: domain.StockCoverage{Infinite: true}},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, 12, rows[0]["days_of_stock"])
	assert.Equal(t, "infinite", rows[1]["days_of_stock"])
}

func TestToRows_TotalParaQualquerEntrada(t *testing.T) {
	tests := []struct {
		name      string
		aggregate any
		expected  int
	}{
		{"Nil", nil, 0},
		{"Tipo desconhecido", "texto", 0},
		{"Ponteiro nulo de comparação", (*domain.ComparisonResult)(nil), 0},
		{"Lista vazia de buckets", []domain.Bucket{}, 0},
		{"Registro único de efetividade", domain.EffectivenessRecord{PromoStart: time.Now()}, 1},
		{"Comparação", domain.ComparisonResult{Deltas: []domain.MetricDelta{{Metric: "revenue"}}}, 1},
		{"Ranking", []domain.LeaderboardEntry{{Rank: 1}}, 1},
		{"Produtos parados", []domain.StaleProduct{{ProductCode: "X"}}, 1},
		{"Agrupamento", []domain.Breakdown{{Key: "pix"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ToRows(tt.aggregate)
			assert.NotNil(t, rows)
			assert.Len(t, rows, tt.expected)
		})
	}
}

func TestAccountSummaryRows(t *testing.T) {
	rows := ToRows([]domain.AccountSummary{
		{Kind: domain.AccountReceivable, Status: domain.AccountStatusOverdue, Count: 2, Value: decimal.NewFromFloat(100.456), Remaining: decimal.NewFromInt(80)},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "receivable", rows[0]["kind"])
	assert.Equal(t, "Overdue", rows[0]["status"])
	assert.Equal(t, 2, rows[0]["count"])
	assert.Equal(t, 100.46, rows[0]["value"])
	assert.Equal(t, 80.0, rows[0]["remaining"])
}
