package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider     string `yaml:"provider"`
		APIKey       string `yaml:"api_key"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"data_source"`
	Watchlist []string `yaml:"watchlist"`
	Risk      struct {
		AccountSize float64 `yaml:"account_size"`
		RiskPercent float64 `yaml:"risk_percent"`
		RRRatio     float64 `yaml:"rr_ratio"`
	} `yaml:"risk"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Alerts struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"alerts"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
		Env   string `yaml:"env"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = splitSymbols(v)
	}
	if v := os.Getenv("ACCOUNT_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Risk.AccountSize = f
		}
	}
	if v := os.Getenv("RISK_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Risk.RiskPercent = f
		}
	}
	if v := os.Getenv("RR_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Risk.RRRatio = f
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Log.Env = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		if cfg.DataSource.APIKey != "" {
			cfg.DataSource.Provider = "alphavantage"
		} else {
			cfg.DataSource.Provider = "yahoo"
		}
	}
	if cfg.DataSource.LookbackDays == 0 {
		cfg.DataSource.LookbackDays = 200
	}
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []string{"AAPL", "MSFT", "GOOGL"}
	}
	if cfg.Risk.AccountSize == 0 {
		cfg.Risk.AccountSize = 10000
	}
	if cfg.Risk.RiskPercent == 0 {
		cfg.Risk.RiskPercent = 1
	}
	if cfg.Risk.RRRatio == 0 {
		cfg.Risk.RRRatio = 3
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 20 * * 1-5"
	}
	if cfg.Alerts.StateFile == "" {
		cfg.Alerts.StateFile = "data/alert_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/quant_sentinel.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Env == "" {
		cfg.Log.Env = "production"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "alphavantage":
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for the alphavantage provider")
		}
	case "yahoo":
	default:
		return fmt.Errorf("data_source.provider must be alphavantage or yahoo, got %q", c.DataSource.Provider)
	}
	if c.DataSource.LookbackDays < 40 {
		return fmt.Errorf("data_source.lookback_days must be at least 40")
	}
	if c.Risk.AccountSize <= 0 {
		return fmt.Errorf("risk.account_size must be positive")
	}
	if c.Risk.RiskPercent <= 0 || c.Risk.RiskPercent > 100 {
		return fmt.Errorf("risk.risk_percent must be in (0, 100]")
	}
	if c.Risk.RRRatio <= 0 {
		return fmt.Errorf("risk.rr_ratio must be positive")
	}
	return nil
}

// TelegramEnabled reports whether notifications can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if sym := strings.ToUpper(strings.TrimSpace(part)); sym != "" {
			out = append(out, sym)
		}
	}
	return out
}
