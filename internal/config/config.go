// Package config carga la configuración del servicio desde archivo y
// variables de entorno.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa toda la configuración del API.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"db"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Assistant  AssistantConfig  `mapstructure:"assistant"`
	BreedFacts BreedFactsConfig `mapstructure:"breedfacts"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	// DSN vacío => repos in-memory (modo dev).
	DSN string `mapstructure:"dsn"`
	// Migrate aplica las migraciones embebidas al arrancar.
	Migrate bool `mapstructure:"migrate"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
}

// AuthConfig apunta al servicio de identidad externo.
// BaseURL vacío => modo dev con header X-Debug-User-ID.
type AuthConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type AssistantConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// String enmascara la API key para poder loguear la config sin filtrarla.
func (c AssistantConfig) String() string {
	return fmt.Sprintf("AssistantConfig{APIKey:%s, Model:%s}", maskKey(c.APIKey), c.Model)
}

func maskKey(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return "***"
	}
	return key[:visible] + "****" + key[len(key)-visible:]
}

type BreedFactsConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// PerMinute es el límite de requests por usuario por minuto.
	PerMinute int `mapstructure:"per_minute"`
	Burst     int `mapstructure:"burst"`
}

// Load lee config.yaml (directorio actual) y variables PETCOMPANION_*.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.dsn", "")
	v.SetDefault("db.migrate", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.app", "pet-companion")

	v.SetDefault("auth.base_url", "")
	v.SetDefault("auth.api_key", "")

	v.SetDefault("assistant.model", "claude-haiku-4-5-20251001")

	v.SetDefault("breedfacts.base_url", "")
	v.SetDefault("breedfacts.api_key", "")

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.per_minute", 120)
	v.SetDefault("ratelimit.burst", 120)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PETCOMPANION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env vars con nombre propio
	_ = v.BindEnv("assistant.api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("db.dsn", "DB_DSN")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("ratelimit.per_minute must be positive")
	}
	if strings.TrimSpace(c.Auth.BaseURL) != "" && strings.TrimSpace(c.Auth.APIKey) == "" {
		return fmt.Errorf("auth.api_key is required when auth.base_url is set")
	}
	return nil
}
