package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress   = "localhost:5000"
	defaultLogLevel        = "info"
	defaultEnv             = "local"
	defaultPageSize        = 10
	defaultMaxUploadSizeMB = 20
	defaultTimeout         = 30 * time.Second
)

type Config struct {
	Env             string        `mapstructure:"app_env"`
	ServerAddress   string        `mapstructure:"server_address"`
	LogLevel        string        `mapstructure:"log_level"`
	PageSize        int           `mapstructure:"page_size"`
	MaxUploadSizeMB int           `mapstructure:"max_upload_size_mb"`
	Timeout         time.Duration `mapstructure:"timeout"`
	EnableTLS       bool          `mapstructure:"enable_tls"`
}

// Load reads the client configuration: .env first, then the environment,
// then the optional config file already set on v.
func Load(v *viper.Viper) (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("page_size", defaultPageSize)
	v.SetDefault("max_upload_size_mb", defaultMaxUploadSizeMB)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("enable_tls", false)

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &Config{
		Env:             v.GetString("app_env"),
		ServerAddress:   v.GetString("server_address"),
		LogLevel:        v.GetString("log_level"),
		PageSize:        v.GetInt("page_size"),
		MaxUploadSizeMB: v.GetInt("max_upload_size_mb"),
		Timeout:         v.GetDuration("timeout"),
		EnableTLS:       v.GetBool("enable_tls"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max_upload_size_mb must be positive, got %d", c.MaxUploadSizeMB)
	}
	return nil
}

// MaxUploadBytes is the per-file limit checked before uploading.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) << 20
}

// BaseURL returns the server URL with scheme.
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}

func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
