package main

import (
	"context"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/cache"
	"github.com/vfg2006/retail-analytics-api/internal/api"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/dashboard"
)

func main() {
	configureLogger()

	if err := run(); err != nil {
		logrus.WithError(err).Fatal("API de análises encerrada com erro")
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar configuração")
	}
	setLogLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem Redis o cache vira no-op e os relatórios são sempre recalculados
	reportCache := cache.New(ctx, cfg.Cache)
	if closer, ok := reportCache.(io.Closer); ok {
		defer closer.Close()
	}

	dashboardService := dashboard.NewService(cfg, reportCache)

	cachePurgeService := scheduler.NewCachePurgeService(dashboardService, cfg)
	if err := cachePurgeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache")
	}

	server, err := api.New(cfg, dashboardService, cachePurgeService)
	if err != nil {
		return errors.Wrap(err, "erro ao criar servidor HTTP")
	}

	return server.Run(ctx)
}

func setLogLevel(level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)
}

// configureLogger configura o formato dos logs e posiciona o processo no
// diretório do binário, onde o .env local é procurado
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
