// Package dashboard monta os relatórios dos widgets a partir dos dados enviados pelo cliente.
// O cálculo fica no motor (internal/engine); aqui ficam defaults, cache e logs.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-analytics-api/infrastructure/cache"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/engine/bucketing"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

type Service struct {
	cfg   *config.Config
	cache cache.ReportCache
	keys  cache.KeyBuilder
	loc   *time.Location
	clock func() time.Time
}

func NewService(cfg *config.Config, reportCache cache.ReportCache) *Service {
	return NewServiceWithClock(cfg, reportCache, time.Now)
}

// NewServiceWithClock permite fixar o relógio, usado em testes
func NewServiceWithClock(cfg *config.Config, reportCache cache.ReportCache, clock func() time.Time) *Service {
	if reportCache == nil {
		reportCache = cache.NoopReportCache{}
	}

	return &Service{
		cfg:   cfg,
		cache: reportCache,
		keys:  cache.KeyBuilder{Prefix: cfg.Cache.KeyPrefix},
		loc:   cfg.App.Location(),
		clock: clock,
	}
}

// builder calcula as linhas e o resumo de um widget
type builder func(logger log.Logger) ([]domain.ChartRow, domain.ChartRow, error)

// report consulta o cache e, em caso de falta, calcula e grava o relatório.
// Falhas no cache são apenas registradas.
func (s *Service) report(ctx context.Context, widget string, request any, build builder) (*domain.Report, error) {
	logger := log.ForContext(ctx).WithField("widget", widget)

	key, err := s.keys.Key(widget, request)
	if err != nil {
		logger.WithError(err).Warn("Não foi possível gerar a chave de cache")
	}

	if key != "" {
		cached, found, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			logger.WithError(err).Warn("Erro ao consultar cache de relatórios")
		case found:
			logger.WithFields(log.Fields{"cache": "hit", "report_id": cached.ReportID}).Debug("Relatório servido do cache")
			return cached, nil
		default:
			logger.WithField("cache", "miss").Debug("Relatório não encontrado no cache")
		}
	}

	rows, summary, err := build(logger)
	if err != nil {
		logger.WithError(err).Warn("Falha ao montar relatório")
		return nil, err
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar identificador do relatório")
		return nil, NewAnalyticsError(ErrGenerateID, apiErrors.ErrInternalServer, widget, "Falha ao gerar identificador do relatório")
	}

	report := &domain.Report{
		ReportID:    reportID,
		Widget:      widget,
		GeneratedAt: s.clock().In(s.loc),
		Rows:        rows,
		Summary:     summary,
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, report); err != nil {
			logger.WithError(err).Warn("Erro ao gravar relatório no cache")
		}
	}

	logger.WithFields(log.Fields{"report_id": reportID, "rows_count": len(rows)}).Info("Relatório gerado")

	return report, nil
}

func (s *Service) InvalidateCache(ctx context.Context) (int, error) {
	logger := log.ForContext(ctx)

	deleted, err := s.cache.Invalidate(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao limpar cache de relatórios")
		return deleted, NewAnalyticsError(ErrCachePurge, apiErrors.ErrCacheOperation, "", err.Error())
	}

	logger.WithField("deleted_count", deleted).Info("Cache de relatórios limpo")
	return deleted, nil
}

// now resolve o instante de referência: o informado na requisição ou o relógio
func (s *Service) now(widget, value string) (time.Time, error) {
	if value == "" {
		return s.clock().In(s.loc), nil
	}

	parsed, ok := utils.ParseFlexible(value, s.loc)
	if !ok {
		return time.Time{}, invalidDate(widget, "now", value)
	}
	return parsed, nil
}

// parseRange converte o intervalo para início e fim de dia. Sem required, um
// intervalo vazio retorna ok=false para que o widget use todos os registros.
func (s *Service) parseRange(widget string, r DateRange, required bool) (start, end time.Time, ok bool, err error) {
	if r.Empty() {
		if required {
			return start, end, false, missingRange(widget)
		}
		return start, end, false, nil
	}

	if r.Start == "" || r.End == "" {
		return start, end, false, missingRange(widget)
	}

	start, parsed := utils.ParseFlexible(r.Start, s.loc)
	if !parsed {
		return start, end, false, invalidDate(widget, "start_date", r.Start)
	}

	end, parsed = utils.ParseFlexible(r.End, s.loc)
	if !parsed {
		return start, end, false, invalidDate(widget, "end_date", r.End)
	}

	return utils.StartOfDay(start.In(s.loc)), utils.EndOfDay(end.In(s.loc)), true, nil
}

// salesIn filtra as vendas com data dentro do período (dias inteiros)
func (s *Service) salesIn(sales []domain.SaleRecord, period domain.Period) []domain.SaleRecord {
	selected := make([]domain.SaleRecord, 0, len(sales))
	for _, sale := range sales {
		ts, ok := sale.TimeIn(s.loc)
		if ok && period.Contains(ts) {
			selected = append(selected, sale)
		}
	}
	return selected
}

func (s *Service) granularity(value string) domain.Granularity {
	if value == "" {
		value = s.cfg.Analytics.DefaultGranularity
	}
	return domain.ParseGranularity(value)
}

func (s *Service) strict(override *bool) bool {
	if override != nil {
		return *override
	}
	return s.cfg.Analytics.StrictRanges
}

func money(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

// ensureMetrics garante as chaves em todos os buckets, mesmo sem registros
func ensureMetrics(buckets []domain.Bucket, keys ...string) {
	for i := range buckets {
		for _, key := range keys {
			buckets[i].Metrics[key] += 0
		}
	}
}

// checkBuckets rejeita séries maiores que o limite antes de alocar os buckets
func (s *Service) checkBuckets(widget string, start, end time.Time, granularity domain.Granularity) error {
	limit := s.cfg.Analytics.BucketLimit()
	if units := bucketing.Count(start, end, granularity); units > limit {
		return rangeTooLarge(widget, units, limit)
	}
	return nil
}

// checkDays valida janelas em dias, antes de qualquer aritmética de datas
func (s *Service) checkDays(widget string, days int) error {
	if limit := s.cfg.Analytics.BucketLimit(); days > limit {
		return rangeTooLarge(widget, days, limit)
	}
	return nil
}

func orDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

// warnInconsistentSales registra vendas cujo total não bate com itens menos desconto
func warnInconsistentSales(logger log.Logger, sales []domain.SaleRecord) {
	inconsistent := 0
	for _, sale := range sales {
		if !sale.Consistent() {
			inconsistent++
		}
	}

	if inconsistent > 0 {
		logger.WithField("inconsistent_count", inconsistent).Warn("Vendas com total diferente da soma dos itens menos desconto")
	}
}
