package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"prescription-reader/internal/domain/prescriptions"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	// Si AUTH_JWT_SECRET viene vacío, la API corre en modo dev (sin token).
	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
	AuthIssuer    string `mapstructure:"AUTH_ISSUER"`
	AuthAudience  string `mapstructure:"AUTH_AUDIENCE"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	MaxInputBytes int64  `mapstructure:"MAX_INPUT_BYTES"`
	RulesFile     string `mapstructure:"RULES_FILE"`

	ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"AUTH_JWT_SECRET", "AUTH_ISSUER", "AUTH_AUDIENCE",
	"CORS_ORIGINS", "MAX_INPUT_BYTES", "RULES_FILE",
	"READ_TIMEOUT", "WRITE_TIMEOUT",
}

// Load lee configuración de env vars y, si existe, de un archivo .env.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "rxreader")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAX_INPUT_BYTES", 1<<20)
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")

	// Unmarshal solo ve las env vars que están bindeadas explícitamente.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// CORS_ORIGINS llega como CSV desde env.
	cfg.CORSOrigins = splitCSV(strings.Join(cfg.CORSOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// AuthEnabled indica si las rutas de recetas exigen bearer token.
func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.AuthJWTSecret) != ""
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("%w: PORT is required", ErrInvalidConfig)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("%w: MAX_INPUT_BYTES must be positive, got %d", ErrInvalidConfig, c.MaxInputBytes)
	}
	if !c.IsDev() && !c.AuthEnabled() {
		return fmt.Errorf("%w: AUTH_JWT_SECRET is required when ENV=%q", ErrInvalidConfig, c.Env)
	}
	if c.AuthEnabled() && len(c.AuthJWTSecret) < 16 {
		return fmt.Errorf("%w: AUTH_JWT_SECRET must be at least 16 bytes", ErrInvalidConfig)
	}
	return nil
}

// LoadRules arma las reglas del parser. Sin RULES_FILE devuelve las reglas por defecto.
// El archivo puede ser YAML, JSON o TOML (según extensión) con los campos de
// prescriptions.RuleOverrides.
func (c *Config) LoadRules() (prescriptions.Rules, error) {
	rules := prescriptions.DefaultRules()
	if strings.TrimSpace(c.RulesFile) == "" {
		return rules, nil
	}

	v := viper.New()
	v.SetConfigFile(c.RulesFile)
	if err := v.ReadInConfig(); err != nil {
		return prescriptions.Rules{}, fmt.Errorf("read rules file %q: %w", c.RulesFile, err)
	}

	var o prescriptions.RuleOverrides
	if err := v.Unmarshal(&o); err != nil {
		return prescriptions.Rules{}, fmt.Errorf("unmarshal rules file %q: %w", c.RulesFile, err)
	}
	return rules.Extend(o), nil
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
