package domain

import (
	"time"

	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// ZeroDivisionPolicy define o delta percentual quando a base de comparação é zero
type ZeroDivisionPolicy string

const (
	// ZeroOnEmptyBaseline: base zero sempre gera delta 0
	ZeroOnEmptyBaseline ZeroDivisionPolicy = "zero"
	// FullOnEmptyBaseline: base zero e valor atual diferente de zero gera ±100
	FullOnEmptyBaseline ZeroDivisionPolicy = "full"
)

// DeltaPolicy associa uma política de divisão por zero a cada métrica
type DeltaPolicy struct {
	Default   ZeroDivisionPolicy
	PerMetric map[string]ZeroDivisionPolicy
}

func (p DeltaPolicy) For(metric string) ZeroDivisionPolicy {
	if policy, ok := p.PerMetric[metric]; ok {
		return policy
	}
	if p.Default == "" {
		return ZeroOnEmptyBaseline
	}
	return p.Default
}

// Period é um intervalo de dias de calendário com limites inclusivos
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains considera o dia inteiro de Start e de End
func (p Period) Contains(t time.Time) bool {
	start := utils.StartOfDay(p.Start)
	end := utils.EndOfDay(p.End.In(p.Start.Location()))
	t = t.In(p.Start.Location())

	return !t.Before(start) && !t.After(end)
}

type Snapshot struct {
	Period  Period  `json:"period"`
	Records int     `json:"records"`
	Metrics Metrics `json:"metrics"`
}

type MetricDelta struct {
	Metric string             `json:"metric"`
	Value1 float64            `json:"value1"`
	Value2 float64            `json:"value2"`
	Delta  float64            `json:"delta"`
	Policy ZeroDivisionPolicy `json:"policy"`
}

type ComparisonResult struct {
	Period1 Snapshot      `json:"period1"`
	Period2 Snapshot      `json:"period2"`
	Deltas  []MetricDelta `json:"deltas"`
}
