package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	S3        S3Config
	Templates TemplatesConfig
	Registry  RegistryConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for the remote template store.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// TemplatesConfig holds template storage and sync settings.
type TemplatesConfig struct {
	// Store selects the backing store for template loads: "local" or "s3".
	Store string `mapstructure:"store"`
	// LocalDir is the directory for the local store and the sync target.
	LocalDir string `mapstructure:"local_dir"`
	// SyncOnStart copies the remote template set into LocalDir at startup.
	SyncOnStart bool `mapstructure:"sync_on_start"`
}

// RegistryConfig holds the external company-registry lookup settings.
type RegistryConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the DOCUGEN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCUGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "docugen")
	v.SetDefault("db.password", "docugen_secret")
	v.SetDefault("db.name", "docugen_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "docugen")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "docugen-templates")
	v.SetDefault("s3.prefix", "templates/")
	v.SetDefault("s3.endpoint", "")

	// Template store defaults
	v.SetDefault("templates.store", "local")
	v.SetDefault("templates.local_dir", "./templates")
	v.SetDefault("templates.sync_on_start", false)

	// Registry defaults
	v.SetDefault("registry.base_url", "")
	v.SetDefault("registry.timeout", "20s")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "DOCUGEN_SERVER_PORT",
		"server.read_timeout":      "DOCUGEN_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "DOCUGEN_SERVER_WRITE_TIMEOUT",
		"server.environment":       "DOCUGEN_SERVER_ENVIRONMENT",
		"db.host":                  "DOCUGEN_DB_HOST",
		"db.port":                  "DOCUGEN_DB_PORT",
		"db.user":                  "DOCUGEN_DB_USER",
		"db.password":              "DOCUGEN_DB_PASSWORD",
		"db.name":                  "DOCUGEN_DB_NAME",
		"db.sslmode":               "DOCUGEN_DB_SSLMODE",
		"db.max_open":              "DOCUGEN_DB_MAX_OPEN",
		"db.max_idle":              "DOCUGEN_DB_MAX_IDLE",
		"jwt.secret":               "DOCUGEN_JWT_SECRET",
		"jwt.access_expiry":        "DOCUGEN_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":       "DOCUGEN_JWT_REFRESH_EXPIRY",
		"jwt.issuer":               "DOCUGEN_JWT_ISSUER",
		"s3.region":                "DOCUGEN_S3_REGION",
		"s3.bucket":                "DOCUGEN_S3_BUCKET",
		"s3.prefix":                "DOCUGEN_S3_PREFIX",
		"s3.endpoint":              "DOCUGEN_S3_ENDPOINT",
		"s3.access_key":            "DOCUGEN_S3_ACCESS_KEY",
		"s3.secret_key":            "DOCUGEN_S3_SECRET_KEY",
		"templates.store":          "DOCUGEN_TEMPLATES_STORE",
		"templates.local_dir":      "DOCUGEN_TEMPLATES_LOCAL_DIR",
		"templates.sync_on_start":  "DOCUGEN_TEMPLATES_SYNC_ON_START",
		"registry.base_url":        "DOCUGEN_REGISTRY_BASE_URL",
		"registry.timeout":         "DOCUGEN_REGISTRY_TIMEOUT",
		"cors.allowed_origins":     "DOCUGEN_CORS_ALLOWED_ORIGINS",
		"log.level":                "DOCUGEN_LOG_LEVEL",
		"log.format":               "DOCUGEN_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCUGEN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCUGEN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Prefix:    v.GetString("s3.prefix"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Templates = TemplatesConfig{
		Store:       v.GetString("templates.store"),
		LocalDir:    v.GetString("templates.local_dir"),
		SyncOnStart: v.GetBool("templates.sync_on_start"),
	}
	cfg.Registry = RegistryConfig{
		BaseURL: v.GetString("registry.base_url"),
		Timeout: v.GetDuration("registry.timeout"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
