package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

var accountKinds = []domain.AccountKind{domain.AccountReceivable, domain.AccountPayable}

// SummarizeAccounts agrupa as contas por tipo e status efetivo em now. A saída segue
// a ordem receber/pagar e AccountStatusOrder, omitindo grupos vazios.
func SummarizeAccounts(accounts []domain.Account, now time.Time) []domain.AccountSummary {
	type key struct {
		kind   domain.AccountKind
		status domain.AccountStatus
	}

	groups := make(map[key]*domain.AccountSummary)
	for _, account := range accounts {
		k := key{account.Kind, account.EffectiveStatus(now)}
		summary, ok := groups[k]
		if !ok {
			summary = &domain.AccountSummary{
				Kind:      k.kind,
				Status:    k.status,
				Value:     decimal.Zero,
				Remaining: decimal.Zero,
			}
			groups[k] = summary
		}

		summary.Count++
		summary.Value = summary.Value.Add(account.Value)
		summary.Remaining = summary.Remaining.Add(account.Remaining())
	}

	result := make([]domain.AccountSummary, 0, len(groups))
	for _, kind := range accountKinds {
		for _, status := range domain.AccountStatusOrder {
			if summary, ok := groups[key{kind, status}]; ok {
				result = append(result, *summary)
				delete(groups, key{kind, status})
			}
		}
	}

	// Tipos ou status fora do catálogo vão para o fim, em ordem alfabética
	leftovers := make([]domain.AccountSummary, 0, len(groups))
	for _, summary := range groups {
		leftovers = append(leftovers, *summary)
	}
	sort.Slice(leftovers, func(i, j int) bool {
		if leftovers[i].Kind != leftovers[j].Kind {
			return leftovers[i].Kind < leftovers[j].Kind
		}
		return leftovers[i].Status < leftovers[j].Status
	})

	return append(result, leftovers...)
}
