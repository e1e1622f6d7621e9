package bucketing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

type record struct {
	date  string
	value float64
}

var recordExtractor = Extractor[record]{
	Timestamp: func(r record) (time.Time, bool) {
		return utils.ParseFlexible(r.date, time.UTC)
	},
	Measure: func(r record) domain.Metrics {
		return domain.Metrics{domain.MetricRevenue: r.value}
	},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBucketize_DezVendasEmTresDias(t *testing.T) {
	records := []record{
		{"2024-03-01", 10}, {"2024-03-01 10:30:00", 10}, {"2024-03-01T18:00:00Z", 10}, {"2024-03-01", 10},
		{"2024-03-03", 20}, {"2024-03-03", 20}, {"2024-03-03", 20},
		{"2024-03-05", 5}, {"2024-03-05", 5}, {"2024-03-05T23:59:59Z", 5},
	}

	buckets := Bucketize(records, recordExtractor, date(2024, 3, 1), date(2024, 3, 5), domain.GranularityDay)

	require.Len(t, buckets, 5)
	labels := make([]string, 0, len(buckets))
	empty := 0
	for _, bucket := range buckets {
		labels = append(labels, bucket.Label)
		if bucket.Entries == 0 {
			empty++
		}
	}

	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"}, labels)
	assert.Equal(t, 2, empty)
	assert.Equal(t, 4, buckets[0].Entries)
	assert.Equal(t, 40.0, buckets[0].Metrics.Get(domain.MetricRevenue))
	assert.Equal(t, 60.0, buckets[2].Metrics.Get(domain.MetricRevenue))
	assert.Equal(t, 3, buckets[4].Entries)
}

func TestBucketize_QuantidadeDeBuckets(t *testing.T) {
	tests := []struct {
		name        string
		start, end  time.Time
		granularity domain.Granularity
		expected    int
	}{
		{"Deve gerar um bucket para um único dia", date(2024, 1, 10), date(2024, 1, 10), domain.GranularityDay, 1},
		{"Deve atravessar ano bissexto", date(2024, 2, 27), date(2024, 3, 1), domain.GranularityDay, 4},
		{"Deve contar meses inclusive", date(2023, 11, 15), date(2024, 2, 3), domain.GranularityMonth, 4},
		{"Deve considerar horário do fim como dia inteiro", date(2024, 1, 1), time.Date(2024, 1, 3, 22, 0, 0, 0, time.UTC), domain.GranularityDay, 3},
		{"Intervalo invertido retorna vazio", date(2024, 1, 5), date(2024, 1, 1), domain.GranularityDay, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := Bucketize[record](nil, recordExtractor, tt.start, tt.end, tt.granularity)
			assert.NotNil(t, buckets)
			assert.Len(t, buckets, tt.expected)
			assert.Equal(t, tt.expected, Count(tt.start, tt.end, tt.granularity))

			for _, bucket := range buckets {
				assert.Zero(t, bucket.Entries)
			}
		})
	}
}

func TestBucketize_IgnoraDatasInvalidasEForaDoIntervalo(t *testing.T) {
	records := []record{
		{"", 100},
		{"ontem", 100},
		{"31/02/2024", 100},
		{"2024-02-29", 100},
		{"2024-03-02", 7},
		{"02/03/2024", 3},
	}

	buckets := Bucketize(records, recordExtractor, date(2024, 3, 1), date(2024, 3, 2), domain.GranularityDay)

	require.Len(t, buckets, 2)
	assert.Zero(t, buckets[0].Entries)
	assert.Equal(t, 2, buckets[1].Entries)
	assert.Equal(t, 10.0, buckets[1].Metrics.Get(domain.MetricRevenue))
}

func TestBucketize_Mensal(t *testing.T) {
	records := []record{
		{"2024-01-31", 1}, {"2024-03-01", 2}, {"2024-03-31T23:00:00Z", 3},
	}

	buckets := Bucketize(records, recordExtractor, date(2024, 1, 20), date(2024, 3, 2), domain.GranularityMonth)

	require.Len(t, buckets, 3)
	assert.Equal(t, "01-2024", buckets[0].Label)
	assert.Equal(t, "02-2024", buckets[1].Label)
	assert.Equal(t, "03-2024", buckets[2].Label)
	assert.Equal(t, 1, buckets[0].Entries)
	assert.Equal(t, 0, buckets[1].Entries)
	assert.Equal(t, 5.0, buckets[2].Metrics.Get(domain.MetricRevenue))
}

func TestBucketize_SemMeasureContaApenasEntradas(t *testing.T) {
	ex := Extractor[record]{Timestamp: recordExtractor.Timestamp}

	buckets := Bucketize([]record{{"2024-01-01", 50}}, ex, date(2024, 1, 1), date(2024, 1, 1), domain.GranularityDay)

	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Entries)
	assert.Empty(t, buckets[0].Metrics)
}

func TestBucketize_Idempotente(t *testing.T) {
	records := []record{{"2024-01-02", 1}, {"2024-01-04", 2}}

	first := Bucketize(records, recordExtractor, date(2024, 1, 1), date(2024, 1, 5), domain.GranularityDay)
	second := Bucketize(records, recordExtractor, date(2024, 1, 1), date(2024, 1, 5), domain.GranularityDay)

	assert.Equal(t, first, second)
}

func TestBucketizeStrict(t *testing.T) {
	_, err := BucketizeStrict[record](nil, recordExtractor, date(2024, 1, 5), date(2024, 1, 1), domain.GranularityDay)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	var rangeErr *domain.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, date(2024, 1, 5), rangeErr.Start)

	buckets, err := BucketizeStrict[record](nil, recordExtractor, date(2024, 1, 1), date(2024, 1, 1), domain.GranularityDay)
	require.NoError(t, err)
	assert.Len(t, buckets, 1)
}

func TestBucketize_UsaFusoDoInicio(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo)

	// 02:00 UTC do dia 2 ainda é dia 1 em BRT
	records := []record{{"2024-05-02T02:00:00Z", 1}}

	buckets := Bucketize(records, recordExtractor, start, start.AddDate(0, 0, 1), domain.GranularityDay)

	require.Len(t, buckets, 2)
	assert.Equal(t, 1, buckets[0].Entries)
	assert.Zero(t, buckets[1].Entries)
}
