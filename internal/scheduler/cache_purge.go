// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
)

// CacheInvalidator é quem efetivamente apaga os relatórios em cache
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) (int, error)
}

type CachePurgeConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type CachePurgeService struct {
	scheduler            *gocron.Scheduler
	invalidator          CacheInvalidator
	config               CachePurgeConfig
	syncRunning          bool
	syncMutex            sync.Mutex
	lastSyncStartedAt    time.Time
	lastSyncCompletedAt  time.Time
	lastPurgedCount      int
	lastSyncErrorMessage string
}

func NewCachePurgeService(invalidator CacheInvalidator, cfg *config.Config) *CachePurgeService {
	purgeConfig := CachePurgeConfig{
		CronSchedule: cfg.CachePurge.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.CachePurge.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": purgeConfig.CronSchedule,
	}).Info("Configuração do agendador de limpeza do cache carregada")

	return &CachePurgeService{
		scheduler:   gocron.NewScheduler(time.Local),
		invalidator: invalidator,
		config:      purgeConfig,
	}
}

func (s *CachePurgeService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de limpeza do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza do cache de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.PurgeReports(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza do cache de relatórios")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar limpeza do cache de relatórios")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// PurgeReports apaga os relatórios em cache. Uma execução concorrente é ignorada.
func (s *CachePurgeService) PurgeReports(ctx context.Context) (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza do cache já está em execução")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza do cache de relatórios")

	deleted, err := s.invalidator.InvalidateCache(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastPurgedCount = deleted
	s.lastSyncErrorMessage = ""
	if err != nil {
		s.lastSyncErrorMessage = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return deleted, errors.Wrap(err, "limpeza do cache falhou")
	}

	logrus.WithField("deleted_count", deleted).Info("Limpeza do cache de relatórios concluída")

	return deleted, nil
}

// TriggerManualSync inicia manualmente uma limpeza do cache
func (s *CachePurgeService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza do cache já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do cache de relatórios")
	go func() {
		if _, err := s.PurgeReports(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual do cache de relatórios")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CachePurgeService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_purged_count":      s.lastPurgedCount,
		"last_sync_error":        s.lastSyncErrorMessage,
	}
}
