// Load envs from .env
// Load YAML config
// Apply env overrides
// Provide default values
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	// Paths
	SeenPath   string `yaml:"seen_path"`
	ArchiveDir string `yaml:"archive_dir"`

	// Fetching
	FetchTimeoutSeconds int  `yaml:"fetch_timeout_seconds"`
	FetchAttempts       int  `yaml:"fetch_attempts"`
	SkipTLSVerify       bool `yaml:"skip_tls_verify"`
	MaxParallel         int  `yaml:"max_parallel"`
}

func Load(path string) *Config {
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	// Env vars beat the file
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			// notifications degrade to a no-op, the watch itself still runs
			log.Printf("⚠️ Invalid TELEGRAM_CHAT_ID %q: %v", chatID, err)
		} else {
			cfg.TelegramChatID = id
		}
	}

	// Defaults
	if cfg.SeenPath == "" {
		cfg.SeenPath = "seen_links.json"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "."
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = 25
	}
	if cfg.FetchAttempts <= 0 {
		cfg.FetchAttempts = 2
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = 4
	}

	return cfg
}

// FetchTimeout is the per-request budget.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// NotifierEnabled reports whether both Telegram credentials are
// present. Their absence is an accepted mode, not an error.
func (c *Config) NotifierEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
