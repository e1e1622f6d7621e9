package cache

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

const (
	defaultTTL       = 5 * time.Minute
	scanBatchSize    = 200
	pingTimeout      = 5 * time.Second
	defaultRedisHost = "127.0.0.1"
	defaultRedisPort = "6379"
)

type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisReportCache conecta no Redis e valida a conexão com PING
func NewRedisReportCache(ctx context.Context, cfg config.Cache) (*RedisReportCache, error) {
	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "redis ping falhou")
	}

	return NewRedisReportCacheWithClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisReportCacheWithClient usa um cliente já configurado
func NewRedisReportCacheWithClient(client *redis.Client, ttl time.Duration, prefix string) *RedisReportCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisReportCache{client: client, ttl: ttl, prefix: prefix}
}

func buildRedisOptions(cfg config.Cache) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, errors.Wrap(err, "redis url inválida")
		}
		return opts, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = defaultRedisHost
	}

	port := cfg.RedisPort
	if port == "" {
		port = defaultRedisPort
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func (c *RedisReportCache) Get(ctx context.Context, key string) (*domain.Report, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "erro ao ler chave %s", key)
	}

	var report domain.Report
	if err := json.Unmarshal(value, &report); err != nil {
		return nil, false, errors.Wrapf(err, "relatório inválido na chave %s", key)
	}

	return &report, true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, report *domain.Report) error {
	if report == nil {
		return nil
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar relatório")
	}

	return errors.Wrapf(c.client.Set(ctx, key, payload, c.ttl).Err(), "erro ao gravar chave %s", key)
}

// Invalidate apaga as chaves do prefixo usando SCAN para não bloquear o Redis
func (c *RedisReportCache) Invalidate(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		deleted int
	)

	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return deleted, errors.Wrap(err, "redis scan falhou")
		}

		if len(keys) > 0 {
			removed, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, errors.Wrap(err, "redis del falhou")
			}
			deleted += int(removed)
		}

		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
