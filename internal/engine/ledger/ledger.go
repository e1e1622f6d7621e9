// Package ledger calcula saldos acumulados sobre sequências de buckets
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// DeltaFunc extrai a variação de saldo de um bucket
type DeltaFunc func(domain.Bucket) decimal.Decimal

// Accumulate percorre os buckets uma única vez, da esquerda para a direita,
// somando delta ao saldo que parte de seed
func Accumulate(buckets []domain.Bucket, seed decimal.Decimal, delta DeltaFunc) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, 0, len(buckets))

	balance := seed
	for _, bucket := range buckets {
		change := decimal.Zero
		if delta != nil {
			change = delta(bucket)
		}

		balance = balance.Add(change)
		entries = append(entries, domain.LedgerEntry{
			Bucket:  bucket,
			Delta:   change,
			Balance: balance,
		})
	}

	return entries
}

// Final retorna o saldo final, ou seed quando não há lançamentos
func Final(entries []domain.LedgerEntry, seed decimal.Decimal) decimal.Decimal {
	if len(entries) == 0 {
		return seed
	}
	return entries[len(entries)-1].Balance
}

// MetricDifference gera um DeltaFunc que subtrai a métrica minus da métrica plus
func MetricDifference(plus, minus string) DeltaFunc {
	return func(bucket domain.Bucket) decimal.Decimal {
		return decimal.NewFromFloat(bucket.Metrics.Get(plus)).Sub(decimal.NewFromFloat(bucket.Metrics.Get(minus)))
	}
}
