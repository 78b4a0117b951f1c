package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Email    EmailConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"3000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	PublicDir       string        `envconfig:"PUBLIC_DIR" default:"public"`
	// BaseURL is the public origin used to build response links in emails.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:3000"`
	// TrustedProxies are the CIDRs whose X-Forwarded-For is believed. Empty
	// means the socket address is the client IP.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" default:"postgres"`
	Password       string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name           string        `envconfig:"DB_NAME" default:"meeting_planner"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns       int           `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns       int           `envconfig:"DB_MIN_CONNS" default:"5"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
	AutoMigrate    bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

// EmailConfig holds the outbound mail transport settings
type EmailConfig struct {
	Enabled  bool          `envconfig:"EMAIL_ENABLED" default:"false"`
	Host     string        `envconfig:"SMTP_HOST"`
	Port     int           `envconfig:"SMTP_PORT" default:"587"`
	User     string        `envconfig:"SMTP_USER"`
	Password string        `envconfig:"SMTP_PASSWORD"`
	From     string        `envconfig:"SMTP_FROM"`
	UseTLS   bool          `envconfig:"SMTP_USE_TLS" default:"true"`
	Timeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"10s"`
	// DispatchBudget bounds sending the invitations of one meeting
	DispatchBudget time.Duration `envconfig:"EMAIL_DISPATCH_BUDGET" default:"1m"`
}

// StorageConfig holds attachment payload storage configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"database"` // "database" or "minio"
	Endpoint        string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"MINIO_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"MINIO_SECRET_KEY"`
	BucketName      string `envconfig:"MINIO_BUCKET" default:"meeting-attachments"`
	UseSSL          bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// RedisConfig holds Redis configuration and the respond endpoint rate limit.
// With an empty Addr the limit is kept in process memory.
type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	RespondRate int           `envconfig:"RESPOND_RATE_LIMIT" default:"30"`
	RateWindow  time.Duration `envconfig:"RESPOND_RATE_WINDOW" default:"1m"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if config.Email.From == "" {
		config.Email.From = config.Email.User
	}
	config.Server.BaseURL = strings.TrimRight(config.Server.BaseURL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	switch c.Storage.Type {
	case "database":
	case "minio":
		if c.Storage.AccessKeyID == "" || c.Storage.SecretAccessKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when STORAGE_TYPE=minio")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE %q", c.Storage.Type)
	}
	if c.Redis.RespondRate <= 0 || c.Redis.RateWindow <= 0 {
		return fmt.Errorf("RESPOND_RATE_LIMIT and RESPOND_RATE_WINDOW must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// MissingSettings lists the transport settings that must be present before
// invitations can be sent. The names match the environment variables.
func (e EmailConfig) MissingSettings() []string {
	var missing []string
	if e.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if e.Port <= 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if e.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if e.Password == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if e.From == "" {
		missing = append(missing, "SMTP_FROM")
	}
	return missing
}
