package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Analytics  Analytics  `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	CachePurge CachePurge `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
	Timezone string `mapstructure:"app_timezone"`
}

// Location carrega o fuso configurado; em caso de erro usa UTC
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando UTC", a.Timezone)
		return time.UTC
	}
	return loc
}

// Analytics reúne os parâmetros de negócio do motor de agregação
type Analytics struct {
	BonusFullRate          float64 `mapstructure:"analytics_bonus_full_rate"`
	BonusHalfRate          float64 `mapstructure:"analytics_bonus_half_rate"`
	GoalThreshold          float64 `mapstructure:"analytics_goal_threshold"`
	SlowTurnoverThreshold  float64 `mapstructure:"analytics_slow_turnover_threshold"`
	TurnoverWindowDays     int     `mapstructure:"analytics_turnover_window_days"`
	StaleDays              int     `mapstructure:"analytics_stale_days"`
	InventoryEvolutionDays int     `mapstructure:"analytics_inventory_evolution_days"`
	CashFlowDays           int     `mapstructure:"analytics_cash_flow_days"`
	TopProductsLimit       int     `mapstructure:"analytics_top_products_limit"`
	StrictRanges           bool    `mapstructure:"analytics_strict_ranges"`
	DefaultGranularity     string  `mapstructure:"analytics_default_granularity"`
	MaxBuckets             int     `mapstructure:"analytics_max_buckets"`
}

// DefaultMaxBuckets limita as séries a 10 anos de dias
const DefaultMaxBuckets = 3660

// BucketLimit retorna MaxBuckets ou o padrão quando não configurado
func (a Analytics) BucketLimit() int {
	if a.MaxBuckets > 0 {
		return a.MaxBuckets
	}
	return DefaultMaxBuckets
}

func (a Analytics) BonusPolicy() domain.BonusPolicy {
	return domain.BonusPolicy{
		FullRate:      a.BonusFullRate,
		HalfRate:      a.BonusHalfRate,
		GoalThreshold: a.GoalThreshold,
	}
}

type Cache struct {
	Enabled       bool          `mapstructure:"cache_enabled"`
	RedisURL      string        `mapstructure:"redis_url"`
	RedisHost     string        `mapstructure:"redis_host"`
	RedisPort     string        `mapstructure:"redis_port"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"cache_ttl"`
	KeyPrefix     string        `mapstructure:"cache_key_prefix"`
}

type CachePurge struct {
	CronSchedule string `mapstructure:"cache_purge_cron"`
	Enabled      bool   `mapstructure:"cache_purge_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	// Bonificação: 5% com as duas metas batidas, metade com apenas uma
	viper.SetDefault("ANALYTICS_BONUS_FULL_RATE", 0.05)
	viper.SetDefault("ANALYTICS_BONUS_HALF_RATE", 0.025)
	viper.SetDefault("ANALYTICS_GOAL_THRESHOLD", 100)

	viper.SetDefault("ANALYTICS_SLOW_TURNOVER_THRESHOLD", 10) // giro abaixo de 10% na janela é lento
	viper.SetDefault("ANALYTICS_TURNOVER_WINDOW_DAYS", 30)
	viper.SetDefault("ANALYTICS_STALE_DAYS", 30)
	viper.SetDefault("ANALYTICS_INVENTORY_EVOLUTION_DAYS", 30)
	viper.SetDefault("ANALYTICS_CASH_FLOW_DAYS", 30)
	viper.SetDefault("ANALYTICS_TOP_PRODUCTS_LIMIT", 10)
	viper.SetDefault("ANALYTICS_STRICT_RANGES", false)
	viper.SetDefault("ANALYTICS_DEFAULT_GRANULARITY", "day")
	viper.SetDefault("ANALYTICS_MAX_BUCKETS", DefaultMaxBuckets)

	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_HOST", "127.0.0.1")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_KEY_PREFIX", "analytics:")

	viper.SetDefault("CACHE_PURGE_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("CACHE_PURGE_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Leitura opcional, as variáveis já foram carregadas pelo godotenv
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
