package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/wordlestrat/internal/api"
	"github.com/mcoot/wordlestrat/internal/factory"
	"github.com/mcoot/wordlestrat/internal/services/frequency"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
	redisstorage "github.com/mcoot/wordlestrat/internal/storage/redis"
)

// serverConfig is the server process configuration, read from the environment
type serverConfig struct {
	WordsPath   string        `env:"WORDLESTRAT_WORDS"     envDefault:"data/five_letter_words.txt"`
	StorageType string        `env:"STORAGE_TYPE"          envDefault:"memory"`
	RedisURL    string        `env:"REDIS_URL"`
	RunTTL      time.Duration `env:"WORDLESTRAT_RUN_TTL"   envDefault:"168h"`
	Selection   string        `env:"WORDLESTRAT_SELECTION" envDefault:"ranked"`
	Host        string        `env:"HOST"`
	Port        int           `env:"PORT"                  envDefault:"8080"`
	LogLevel    slog.Level    `env:"LOG_LEVEL"             envDefault:"INFO"`
}

func loadConfig() (serverConfig, error) {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return serverConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StorageType == factory.StorageTypeRedis && cfg.RedisURL == "" {
		return serverConfig{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
	}
	return cfg, nil
}

func (c serverConfig) factoryConfig(logger *slog.Logger) (factory.Config, error) {
	selection, err := frequency.ParseSelection(c.Selection)
	if err != nil {
		return factory.Config{}, err
	}

	// Plain text histograms for HTTP clients
	hist := histogram.DefaultConfig()
	hist.Color = false

	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		Selection:   selection,
		Histogram:   hist,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.RunTTL = c.RunTTL
		fc.RedisConfig = &redisCfg
	}
	return fc, nil
}

func (c serverConfig) apiConfig() api.ServerConfig {
	sc := api.DefaultServerConfig()
	sc.Host = c.Host
	sc.Port = c.Port
	return sc
}
