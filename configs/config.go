package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port          string `mapstructure:"port"`
	SessionSecret string `mapstructure:"session_secret"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

type LedgerConfig struct {
	DefaultDeliveryDate string `mapstructure:"default_delivery_date"`
}

// AfricaTalkingConfig holds the SMS gateway credentials used by the reminder notifier.
type AfricaTalkingConfig struct {
	Username string `mapstructure:"username"`
	APIKey   string `mapstructure:"api_key"`
	SMSURL   string `mapstructure:"url"`
	SenderID string `mapstructure:"sender_id"`
}

type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Database DatabaseConfig      `mapstructure:"database"`
	Ledger   LedgerConfig        `mapstructure:"ledger"`
	SMS      AfricaTalkingConfig `mapstructure:"sms"`
}

// Load reads config.yaml (when present) and overlays BAKERY_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("bakery")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// DATABASE_URL is what the deployment platform exports.
	if url, ok := os.LookupEnv("DATABASE_URL"); ok && url != "" {
		cfg.Database.URL = url
	}

	if cfg.Ledger.DefaultDeliveryDate == "" {
		return nil, errors.New("ledger.default_delivery_date must not be empty")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.session_secret", "change-me")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "bakery")
	v.SetDefault("database.password", "bakery")
	v.SetDefault("database.name", "bakery")
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("ledger.default_delivery_date", "23.12")

	v.SetDefault("sms.username", "sandbox")
	v.SetDefault("sms.api_key", "")
	v.SetDefault("sms.url", "https://api.sandbox.africastalking.com/version1/messaging") // Sandbox URL
	v.SetDefault("sms.sender_id", "AFRICASTKNG")
}
