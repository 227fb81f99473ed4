package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// AI completion
	LLM LLMConfig

	// Delivery
	Telegram  TelegramConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LLMConfig selects the single completion provider used for general chat.
type LLMConfig struct {
	Provider string // "gemini" or "openai"
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	// NgrokAPIURL is polled for a public tunnel when WebhookURL is empty.
	NgrokAPIURL string
}

type AuthConfig struct {
	InternalKey string
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxKeys        int
	KeyTTL         time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	if dsn := viper.GetString("postgres_dsn"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// AI completion
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	if apiKey := viper.GetString("llm_api_key"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	// Older deployments only set GEMINI_API_KEY.
	if cfg.LLM.APIKey == "" && cfg.LLM.Provider == "gemini" {
		cfg.LLM.APIKey = viper.GetString("gemini_api_key")
	}

	// Delivery
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Auth.InternalKey = viper.GetString("auth.internal_key")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxKeys = viper.GetInt("rate_limit.max_keys")
	cfg.RateLimit.KeyTTL = viper.GetDuration("rate_limit.key_ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 2)
	viper.SetDefault("postgres.conn_max_lifetime", "1h")

	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.model", "gemini-2.5-flash")
	viper.SetDefault("llm.timeout", "30s")

	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.max_keys", 1000)
	viper.SetDefault("rate_limit.key_ttl", "5m")
}

// validate checks settings every deployment needs. The AI credential is
// checked when the provider is constructed, not here.
func validate(cfg *Config) error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	switch cfg.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("llm.provider %q is not supported", cfg.LLM.Provider)
	}
	if cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
