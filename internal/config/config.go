// internal/config/config.go

package config

import (
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Receipt ReceiptConfig
}

type AppConfig struct {
	Port     string
	LogLevel string
}

type ReceiptConfig struct {
	FontPath  string
	OutputDir string
}

// Load reads .env (if present) and the environment. Missing .env is not an error.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		slog.Debug(".env file not loaded, using environment variables", "error", err)
	}

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RECEIPT_FONT_PATH", "")
	v.SetDefault("RECEIPT_OUTPUT_DIR", ".")

	return &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Receipt: ReceiptConfig{
			FontPath:  v.GetString("RECEIPT_FONT_PATH"),
			OutputDir: v.GetString("RECEIPT_OUTPUT_DIR"),
		},
	}
}

func (c *AppConfig) Addr() string {
	return ":" + c.Port
}
