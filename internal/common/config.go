package common

import (
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Lookup   LookupConfig
	Database DatabaseConfig
	Server   ServerConfig
	Mail     MailConfig
	Invoice  InvoiceConfig
}

// LookupConfig holds registration-lookup client configuration
type LookupConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// MailConfig holds outbound SMTP configuration
type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	SSL         bool
}

// InvoiceConfig holds generated-document configuration
type InvoiceConfig struct {
	OutputDir string
}

// LoadConfig loads configuration from environment variables via viper. Pass
// the instance command-line flags are bound to so flag overrides take effect;
// nil gets a fresh env-only instance.
func LoadConfig(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	v.AutomaticEnv()

	v.SetDefault("LOOKUP_TIMEOUT", 15*time.Second)
	v.SetDefault("DB_URL", "file:workshop.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_CONN_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", 5*time.Minute)
	v.SetDefault("DB_DIAL_TIMEOUT", 3*time.Second)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_SSL", true)
	v.SetDefault("INVOICE_DIR", "./invoices")

	return &Config{
		Lookup: LookupConfig{
			BaseURL: v.GetString("LOOKUP_BASE_URL"),
			APIKey:  v.GetString("LOOKUP_API_KEY"),
			Timeout: v.GetDuration("LOOKUP_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DB_URL"),
			MaxConns:        v.GetInt32("DB_MAX_CONNS"),
			MinConns:        v.GetInt32("DB_MIN_CONNS"),
			MaxConnLifetime: v.GetDuration("DB_MAX_CONN_LIFETIME"),
			MaxConnIdleTime: v.GetDuration("DB_MAX_CONN_IDLE_TIME"),
			DialTimeout:     v.GetDuration("DB_DIAL_TIMEOUT"),
		},
		Server: ServerConfig{
			HTTPAddr: v.GetString("HTTP_ADDR"),
		},
		Mail: MailConfig{
			Host:        v.GetString("SMTP_HOST"),
			Port:        v.GetInt("SMTP_PORT"),
			Username:    v.GetString("SMTP_USERNAME"),
			Password:    v.GetString("SMTP_PASSWORD"),
			FromAddress: v.GetString("MAIL_FROM"),
			SSL:         v.GetBool("SMTP_SSL"),
		},
		Invoice: InvoiceConfig{
			OutputDir: v.GetString("INVOICE_DIR"),
		},
	}
}

// Validate validates the loaded configuration. The core trusts config as
// already valid, so everything is checked here, before construction.
func (c *Config) Validate() error {
	if c.Lookup.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "LOOKUP_BASE_URL is required", ErrInvalidArgument)
	}
	if u, err := url.Parse(c.Lookup.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return NewAppError("CONFIG_ERROR", "LOOKUP_BASE_URL must be an absolute URL", ErrInvalidArgument)
	}
	if c.Lookup.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "LOOKUP_API_KEY is required", ErrInvalidArgument)
	}
	if c.Database.URL == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidArgument)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidArgument)
	}
	if c.Mail.Host != "" {
		if c.Mail.Port < 1 || c.Mail.Port > 65535 {
			return NewAppError("CONFIG_ERROR", "SMTP_PORT must be between 1 and 65535", ErrInvalidArgument)
		}
		if c.Mail.FromAddress == "" {
			return NewAppError("CONFIG_ERROR", "MAIL_FROM is required when SMTP_HOST is set", ErrInvalidArgument)
		}
	}
	if c.Invoice.OutputDir == "" {
		return NewAppError("CONFIG_ERROR", "INVOICE_DIR is required", ErrInvalidArgument)
	}
	return nil
}
