package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	MongoURI string
	MongoDB  string

	RedisURL   string
	SessionTTL time.Duration

	AMQPURL   string
	AMQPQueue string

	AuthDelay       time.Duration
	AssistantDelay  time.Duration
	PaymentDelay    time.Duration
	ListingCacheTTL time.Duration
	// ListingCacheSize es el máximo de listados guardados en caché
	ListingCacheSize int

	// EnvFileLoaded indica si se leyó un archivo .env
	EnvFileLoaded bool
}

// LoadConfig lee la configuración de las variables de entorno.
// Solo carga .env en desarrollo local; si no existe se usan las del sistema.
func LoadConfig() (*Config, error) {
	loaded := false
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
		loaded = true
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "release"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "carteasy"),
		RedisURL:      getEnv("REDIS_URL", ""),
		AMQPURL:       getEnv("AMQP_URL", ""),
		AMQPQueue:     getEnv("AMQP_QUEUE", "orders"),
		EnvFileLoaded: loaded,
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SESSION_TTL", 24 * time.Hour, &cfg.SessionTTL},
		{"AUTH_DELAY", time.Second, &cfg.AuthDelay},
		{"ASSISTANT_DELAY", time.Second, &cfg.AssistantDelay},
		{"PAYMENT_DELAY", 2 * time.Second, &cfg.PaymentDelay},
		{"LISTING_CACHE_TTL", 2 * time.Minute, &cfg.ListingCacheTTL},
	}

	var errs []error
	for _, d := range durations {
		v, err := getDuration(d.key, d.fallback)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*d.dst = v
	}
	size, err := getInt("LISTING_CACHE_SIZE", 500)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.ListingCacheSize = size

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.ListingCacheTTL <= 0 {
		return nil, fmt.Errorf("LISTING_CACHE_TTL must be positive, got %s", cfg.ListingCacheTTL)
	}

	if cfg.ListingCacheSize <= 0 {
		return nil, fmt.Errorf("LISTING_CACHE_SIZE must be positive, got %d", cfg.ListingCacheSize)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
