package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"AmHughesAbsalom/halftime-analytics/analytics"
	"AmHughesAbsalom/halftime-analytics/odds"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Log       LogConfig       `yaml:"log"`
}

type DatabaseConfig struct {
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	Name           string `yaml:"name"`
	SSLMode        string `yaml:"ssl_mode"`
	MigrationsPath string `yaml:"migrations_path"`
}

type ServerConfig struct {
	Port           string        `yaml:"port"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type AnalyticsConfig struct {
	Threshold       int     `yaml:"threshold"`
	MinOdds         float64 `yaml:"min_odds"`
	MaxOdds         float64 `yaml:"max_odds"`
	HeadToHeadLimit int     `yaml:"head_to_head_limit"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
	)
}

// Defaults converts the analytics section into engine defaults.
func (a AnalyticsConfig) Defaults() analytics.Defaults {
	return analytics.Defaults{
		Threshold:       a.Threshold,
		Band:            odds.NewBand(a.MinOdds, a.MaxOdds),
		HeadToHeadLimit: a.HeadToHeadLimit,
	}
}

func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:           "localhost",
			Port:           "5432",
			SSLMode:        "disable",
			MigrationsPath: "migrations",
		},
		Server: ServerConfig{
			Port:           ":8080",
			CORSOrigins:    []string{"http://localhost:3000"},
			RequestTimeout: 10 * time.Second,
		},
		Analytics: AnalyticsConfig{
			Threshold:       analytics.DefaultSettings.Threshold,
			MinOdds:         odds.DefaultBand.Min.InexactFloat64(),
			MaxOdds:         odds.DefaultBand.Max.InexactFloat64(),
			HeadToHeadLimit: analytics.DefaultSettings.HeadToHeadLimit,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads .env (if present), then the YAML file named by ANALYTICS_CONFIG,
// then environment variables. Later sources win.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := Default()
	if path := os.Getenv("ANALYTICS_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.User, "USER_NAME")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "SSL_MODE")
	setString(&c.Database.MigrationsPath, "MIGRATIONS_PATH")
	setString(&c.Server.Port, "PORT")
	setString(&c.Log.Level, "LOG_LEVEL")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_PRETTY: %w", err)
		}
		c.Log.Pretty = pretty
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		c.Server.RequestTimeout = d
	}

	if err := setInt(&c.Analytics.Threshold, "DEFAULT_THRESHOLD"); err != nil {
		return err
	}
	if err := setInt(&c.Analytics.HeadToHeadLimit, "HEAD_TO_HEAD_LIMIT"); err != nil {
		return err
	}
	if err := setFloat(&c.Analytics.MinOdds, "DEFAULT_MIN_ODDS"); err != nil {
		return err
	}
	return setFloat(&c.Analytics.MaxOdds, "DEFAULT_MAX_ODDS")
}

// Validate checks the analytics defaults the same way request parameters are
// checked.
func (c *Config) Validate() error {
	if err := analytics.ValidatePositive("threshold", c.Analytics.Threshold); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := analytics.ValidatePositive("head_to_head_limit", c.Analytics.HeadToHeadLimit); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := analytics.ValidateBand(c.Analytics.Defaults().Band); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
