// Package cache guarda relatórios já calculados, indexados pelo widget e pelo conteúdo da requisição
package cache

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

import (
	"context"
	"crypto/sha1"
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultKeyPrefix = "analytics:"

// ReportCache é o cache de relatórios dos widgets
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.Report, bool, error)
	Set(ctx context.Context, key string, report *domain.Report) error
	// Invalidate remove todos os relatórios e retorna quantas chaves foram apagadas
	Invalidate(ctx context.Context) (int, error)
}

// NoopReportCache é usado quando o cache está desabilitado
type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string) (*domain.Report, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ *domain.Report) error {
	return nil
}

func (NoopReportCache) Invalidate(_ context.Context) (int, error) {
	return 0, nil
}

// KeyBuilder monta chaves a partir do prefixo configurado
type KeyBuilder struct {
	Prefix string
}

// Key gera prefixo + widget + sha1 da requisição serializada
func (b KeyBuilder) Key(widget string, request any) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao serializar requisição do widget %s", widget)
	}

	sum := sha1.Sum(payload)

	prefix := b.Prefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return prefix + widget + ":" + hex.EncodeToString(sum[:]), nil
}

// New cria o cache conforme configuração. Se o Redis estiver indisponível o serviço
// segue sem cache.
func New(ctx context.Context, cfg config.Cache) ReportCache {
	if !cfg.Enabled {
		logrus.Info("Cache de relatórios desabilitado por configuração")
		return NoopReportCache{}
	}

	redisCache, err := NewRedisReportCache(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de relatórios")
		return NoopReportCache{}
	}

	logrus.WithFields(logrus.Fields{
		"ttl":    redisCache.ttl.String(),
		"prefix": redisCache.prefix,
	}).Info("Cache de relatórios no Redis habilitado")

	return redisCache
}
