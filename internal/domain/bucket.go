package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// ParseGranularity aceita "day"/"dia" e "month"/"mes"; qualquer outro valor vira dia
func ParseGranularity(value string) Granularity {
	switch value {
	case "month", "mes", "mês", "monthly":
		return GranularityMonth
	default:
		return GranularityDay
	}
}

// Chaves das métricas usadas nos buckets e nos gráficos
const (
	MetricRevenue       = "revenue"
	MetricSales         = "sales"
	MetricQuantity      = "quantity"
	MetricDiscount      = "discount"
	MetricAverageTicket = "average_ticket"
	MetricInbound       = "inbound"
	MetricOutbound      = "outbound"
	MetricReceivable    = "receivable"
	MetricPayable       = "payable"
)

// Metrics é um conjunto de valores numéricos nomeados
type Metrics map[string]float64

// Add soma other em m, criando as chaves que não existem
func (m Metrics) Add(other Metrics) {
	for key, value := range other {
		m[key] += value
	}
}

func (m Metrics) Get(key string) float64 {
	if m == nil {
		return 0
	}
	return m[key]
}

// Keys retorna as chaves em ordem alfabética
func (m Metrics) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (m Metrics) Clone() Metrics {
	clone := make(Metrics, len(m))
	for key, value := range m {
		clone[key] = value
	}
	return clone
}

// Bucket é uma fatia de calendário (dia ou mês) com os valores acumulados nela
type Bucket struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	Entries int       `json:"entries"`
	Metrics Metrics   `json:"metrics"`
}

// LedgerEntry é um bucket acompanhado do saldo acumulado até ele
type LedgerEntry struct {
	Bucket  Bucket          `json:"bucket"`
	Delta   decimal.Decimal `json:"delta"`
	Balance decimal.Decimal `json:"balance"`
}
