package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host                  string `yaml:"host"`
		Port                  int    `yaml:"port"`
		Env                   string `yaml:"env"`
		LogLevel              string `yaml:"log_level"` // debug, info, warn, error; empty = by env
		RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Redis struct {
		Enabled    bool   `yaml:"enabled"`
		Addr       string `yaml:"addr"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"redis"`

	Rating struct {
		LikeRatioThreshold    float64 `yaml:"like_ratio_threshold"`
		CommentRatioThreshold float64 `yaml:"comment_ratio_threshold"`
		LexiconPath           string  `yaml:"lexicon_path"` // optional YAML word lists
	} `yaml:"rating"`

	Matching struct {
		Concurrency  int `yaml:"concurrency"`
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
		NotifyLimit  int `yaml:"notify_limit"`
	} `yaml:"matching"`

	Workers struct {
		Enabled             bool `yaml:"enabled"`
		TierIntervalMinutes int  `yaml:"tier_interval_minutes"`
		UnratedBatchSize    int  `yaml:"unrated_batch_size"`
	} `yaml:"workers"`

	RateLimit struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

var AppConfig *Config

// LoadConfig заполняет AppConfig. Если задан DATABASE_URL, конфигурация
// собирается из переменных окружения (режим теста), иначе из config.yaml.
func LoadConfig() {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		log.Println("✅ Загрузка конфигурации из ПЕРЕМЕННЫХ ОКРУЖЕНИЯ")
		AppConfig = FromEnv()
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	log.Printf("Загрузка из %s", configPath)
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config file at %s: %v", configPath, err)
	}
	AppConfig = cfg
}

// Load читает YAML-файл и применяет значения по умолчанию.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() *Config {
	var cfg Config

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Enabled = true
		cfg.Redis.Addr = addr
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	}

	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.RequestTimeoutSeconds <= 0 {
		c.Server.RequestTimeoutSeconds = 15
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Redis.TTLSeconds <= 0 {
		c.Redis.TTLSeconds = 600
	}
	if c.Rating.LikeRatioThreshold <= 0 {
		c.Rating.LikeRatioThreshold = 0.5
	}
	if c.Rating.CommentRatioThreshold <= 0 {
		c.Rating.CommentRatioThreshold = 0.3
	}
	if c.Matching.Concurrency <= 0 {
		c.Matching.Concurrency = 8
	}
	if c.Matching.DefaultLimit <= 0 {
		c.Matching.DefaultLimit = 10
	}
	if c.Matching.MaxLimit <= 0 {
		c.Matching.MaxLimit = 50
	}
	if c.Matching.NotifyLimit <= 0 {
		c.Matching.NotifyLimit = 20
	}
	if c.Workers.TierIntervalMinutes <= 0 {
		c.Workers.TierIntervalMinutes = 60
	}
	if c.Workers.UnratedBatchSize <= 0 {
		c.Workers.UnratedBatchSize = 100
	}
	if c.RateLimit.RPS <= 0 {
		c.RateLimit.RPS = 5
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 10
	}
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}

func (c *Config) RatingCacheTTL() time.Duration {
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

func (c *Config) TierInterval() time.Duration {
	return time.Duration(c.Workers.TierIntervalMinutes) * time.Minute
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
