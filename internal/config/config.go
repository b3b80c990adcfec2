package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Seo      SeoConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RegistryCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// SeoConfig holds the knobs of the taxonomy/indexability engine.
type SeoConfig struct {
	// MinPublishedForIndex is the single indexability threshold shared by every
	// page kind that enumerates listings.
	MinPublishedForIndex int
	TrafficLookback      time.Duration
	PageviewBatchSize    int
	FetchFanout          int
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	PrewarmRegistry   bool
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RegistryCacheTTL: time.Duration(viper.GetInt("REGISTRY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Seo: SeoConfig{
			MinPublishedForIndex: viper.GetInt("SEO_MIN_PUBLISHED_FOR_INDEX"),
			TrafficLookback:      time.Duration(viper.GetInt("SEO_TRAFFIC_LOOKBACK_DAYS")) * 24 * time.Hour,
			PageviewBatchSize:    viper.GetInt("SEO_PAGEVIEW_BATCH_SIZE"),
			FetchFanout:          viper.GetInt("SEO_FETCH_FANOUT"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
			PrewarmRegistry:   viper.GetBool("WORKER_PREWARM_REGISTRY"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.RegistryCacheTTL == 0 {
		cfg.Cache.RegistryCacheTTL = 300 * time.Second
	}
	if cfg.Seo.MinPublishedForIndex == 0 {
		cfg.Seo.MinPublishedForIndex = 3
	}
	if cfg.Seo.TrafficLookback == 0 {
		cfg.Seo.TrafficLookback = 30 * 24 * time.Hour
	}
	if cfg.Seo.PageviewBatchSize == 0 {
		cfg.Seo.PageviewBatchSize = 5000
	}
	if cfg.Seo.FetchFanout == 0 {
		cfg.Seo.FetchFanout = 4
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "registry-rebuild-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
