package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mcoot/wordlestrat/internal/factory"
	redisstorage "github.com/mcoot/wordlestrat/internal/storage/redis"
)

// DefaultWordsPath is the word list used when neither flag nor env names one
const DefaultWordsPath = "data/five_letter_words.txt"

// Config holds CLI configuration
type Config struct {
	WordsPath   string
	StorageType string
	RedisURL    string
	ServerURL   string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		WordsPath:   getEnvOrDefault("WORDLESTRAT_WORDS", DefaultWordsPath),
		StorageType: getEnvOrDefault("WORDLESTRAT_STORAGE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("REDIS_URL", redisstorage.DefaultConfig().URL),
		ServerURL:   os.Getenv("WORDLESTRAT_SERVER"),
		Output:      "text",
		Verbose:     false,
	}
}

// Logger returns a human-readable logger writing to w.
// Only warnings and errors are shown unless Verbose is set.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	return slog.New(log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: c.Verbose,
	}))
}

// FactoryConfig converts CLI settings into application factory settings
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
