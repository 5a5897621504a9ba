// Package config loads server settings from defaults, an optional YAML file,
// a .env file and ERP_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"erp/internal/store"
)

// Config holds the server configuration.
type Config struct {
	Addr        string `yaml:"addr"`
	DB          string `yaml:"db"`
	MenuFile    string `yaml:"menu_file"`
	CompanyName string `yaml:"company_name"`

	Log   LogConfig   `yaml:"log"`
	Admin AdminConfig `yaml:"admin"`
}

// LogConfig selects the zap configuration.
type LogConfig struct {
	Level string `yaml:"level"`
	Dev   bool   `yaml:"dev"`
}

// AdminConfig is the account seeded at startup.
type AdminConfig struct {
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	DisplayName string `yaml:"display_name"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:        ":8080",
		DB:          store.MemoryDSN,
		CompanyName: "ERP 시스템",
		Log:         LogConfig{Level: "info"},
		Admin:       AdminConfig{Username: "admin", Password: "admin", DisplayName: "관리자"},
	}
}

// Load builds a Config. path and envFile may be empty; a missing .env file
// is not an error.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	strs := []struct {
		key string
		dst *string
	}{
		{"ERP_ADDR", &c.Addr},
		{"ERP_DB", &c.DB},
		{"ERP_MENU_FILE", &c.MenuFile},
		{"ERP_COMPANY_NAME", &c.CompanyName},
		{"ERP_LOG_LEVEL", &c.Log.Level},
		{"ERP_ADMIN_USER", &c.Admin.Username},
		{"ERP_ADMIN_PASSWORD", &c.Admin.Password},
	}
	for _, s := range strs {
		if v, ok := os.LookupEnv(s.key); ok && v != "" {
			*s.dst = v
		}
	}
	if v := os.Getenv("ERP_LOG_DEV"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ERP_LOG_DEV: %w", err)
		}
		c.Log.Dev = dev
	}
	return nil
}

// Validate checks the settings before the server starts.
func (c *Config) Validate() error {
	var errs []error
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		errs = append(errs, fmt.Errorf("addr %q: %w", c.Addr, err))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if strings.TrimSpace(c.Admin.Username) == "" {
		errs = append(errs, errors.New("admin username is required"))
	}
	if c.Admin.Password == "" {
		errs = append(errs, errors.New("admin password is required"))
	}
	return errors.Join(errs...)
}
