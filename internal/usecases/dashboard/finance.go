package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/engine/bucketing"
	"github.com/vfg2006/retail-analytics-api/internal/engine/chart"
	"github.com/vfg2006/retail-analytics-api/internal/engine/ledger"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

func accountMeasure(account domain.Account) domain.Metrics {
	remaining := account.Remaining().InexactFloat64()
	switch account.Kind {
	case domain.AccountReceivable:
		return domain.Metrics{domain.MetricReceivable: remaining}
	case domain.AccountPayable:
		return domain.Metrics{domain.MetricPayable: remaining}
	default:
		return nil
	}
}

func (s *Service) CashFlowProjection(ctx context.Context, request *CashFlowRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetCashFlow, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		now, err := s.now(WidgetCashFlow, request.Now)
		if err != nil {
			return nil, nil, err
		}

		days := orDefault(request.Days, s.cfg.Analytics.CashFlowDays)
		if err := s.checkDays(WidgetCashFlow, days); err != nil {
			return nil, nil, err
		}
		today := utils.StartOfDay(now)
		end := utils.EndOfDay(today.AddDate(0, 0, days-1))

		open := make([]domain.Account, 0, len(request.Accounts))
		overdue := map[domain.AccountKind]decimal.Decimal{
			domain.AccountReceivable: decimal.Zero,
			domain.AccountPayable:    decimal.Zero,
		}
		for _, account := range request.Accounts {
			if account.Settled() || !account.Remaining().IsPositive() {
				continue
			}
			open = append(open, account)

			if account.EffectiveStatus(now) == domain.AccountStatusOverdue {
				if total, tracked := overdue[account.Kind]; tracked {
					overdue[account.Kind] = total.Add(account.Remaining())
				}
			}
		}

		// Contas vencidas e ainda abertas entram no dia de hoje
		timestamp := func(account domain.Account) (time.Time, bool) {
			due, ok := account.DueTime(s.loc)
			if !ok {
				return due, false
			}
			if due.Before(today) {
				return today, true
			}
			return due, true
		}

		buckets := bucketing.Bucketize(open, bucketing.Extractor[domain.Account]{
			Timestamp: timestamp,
			Measure:   accountMeasure,
		}, today, end, domain.GranularityDay)
		ensureMetrics(buckets, domain.MetricReceivable, domain.MetricPayable)

		seed := request.OpeningBalance
		entries := ledger.Accumulate(buckets, seed, ledger.MetricDifference(domain.MetricReceivable, domain.MetricPayable))

		logger.WithFields(log.Fields{
			"accounts_count": len(request.Accounts),
			"open_count":     len(open),
		}).Debug("Projeção de fluxo de caixa calculada")

		summary := domain.ChartRow{
			"opening":            money(seed),
			"closing":            money(ledger.Final(entries, seed)),
			"overdue_receivable": money(overdue[domain.AccountReceivable]),
			"overdue_payable":    money(overdue[domain.AccountPayable]),
			"open_accounts":      len(open),
		}

		return chart.ToRows(entries), summary, nil
	})
}

func (s *Service) AccountsSummary(ctx context.Context, request *AccountsSummaryRequest) (*domain.Report, error) {
	return s.report(ctx, WidgetAccountsSummary, request, func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error) {
		now, err := s.now(WidgetAccountsSummary, request.Now)
		if err != nil {
			return nil, nil, err
		}

		summaries := ledger.SummarizeAccounts(request.Accounts, now)

		remaining := map[domain.AccountKind]decimal.Decimal{
			domain.AccountReceivable: decimal.Zero,
			domain.AccountPayable:    decimal.Zero,
		}
		overdue := 0
		for _, summary := range summaries {
			if total, tracked := remaining[summary.Kind]; tracked {
				remaining[summary.Kind] = total.Add(summary.Remaining)
			}
			if summary.Status == domain.AccountStatusOverdue {
				overdue += summary.Count
			}
		}

		logger.WithField("accounts_count", len(request.Accounts)).Debug("Resumo de contas calculado")

		summary := domain.ChartRow{
			"receivable_remaining": money(remaining[domain.AccountReceivable]),
			"payable_remaining":    money(remaining[domain.AccountPayable]),
			"overdue":              overdue,
		}

		return chart.ToRows(summaries), summary, nil
	})
}
