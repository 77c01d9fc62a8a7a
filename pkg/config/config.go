package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// catalog cache TTL in seconds
	CatalogTTL int
}

type RecommendConfig struct {
	PerStrategy         int
	PopularityDecayDays float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	perStrategy, err := strconv.Atoi(getEnv("RECO_PER_STRATEGY", "3"))
	if err != nil || perStrategy <= 0 {
		return nil, errors.New("invalid per-strategy cap")
	}

	decayDays, err := strconv.ParseFloat(getEnv("RECO_POPULARITY_DECAY_DAYS", "30"), 64)
	if err != nil || decayDays <= 0 {
		return nil, errors.New("invalid popularity decay days")
	}

	catalogTTL, err := strconv.Atoi(getEnv("REDIS_CATALOG_TTL_SECONDS", "60"))
	if err != nil || catalogTTL < 0 {
		return nil, errors.New("invalid catalog cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "WiseBuy Recommendations API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "wisebuy"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CatalogTTL:    catalogTTL,
		},
		Recommend: RecommendConfig{
			PerStrategy:         perStrategy,
			PopularityDecayDays: decayDays,
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
