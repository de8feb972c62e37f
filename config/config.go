package config

import (
	"fmt"
	"strings"

	"callaudit-srv/pkg/util"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Service    ServiceConfig

	// PostgreSQL - Reports, checklists, managers. Empty URL selects the in-memory store.
	Database DatabaseConfig

	// Gemini - Transcription and scoring
	Gemini GeminiConfig

	// Redis - Transcript hash cache (optional)
	Redis RedisConfig

	// MinIO - Audio archive (optional)
	MinIO MinIOConfig

	// Kafka - Analysis events (optional)
	Kafka KafkaConfig

	// Access control
	JWT            JWTConfig
	Cookie         CookieConfig
	CORS           CORSConfig
	InternalConfig InternalConfig

	// Exports and uploads
	PDF    PDFConfig
	Upload UploadConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServiceConfig describes the running build.
type ServiceConfig struct {
	Name    string
	Version string
}

// DatabaseConfig is the configuration for PostgreSQL.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnectTimeoutS int
}

// Enabled reports whether a database URL is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// GeminiConfig is the configuration for Google Gemini and the retry policy around it.
type GeminiConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	TimeoutS    int
	MaxAttempts int
	BaseDelayMS int
	MaxDelayMS  int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0 && c.Topic != ""
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTLS     int
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// CookieConfig lists the cookies the auth gate reads a token from, in order.
type CookieConfig struct {
	Names []string
}

// JWTConfig is used to verify tokens. An empty secret makes the auth gate check presence only.
type JWTConfig struct {
	Issuer    string
	SecretKey string
}

// CORSConfig lists allowed origins: exact, "https://*.example.com" or "*".
type CORSConfig struct {
	AllowedOrigins []string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// PDFConfig points at an optional UTF-8 TTF font for non-Latin reports.
type PDFConfig struct {
	FontPath string
}

type UploadConfig struct {
	MaxSizeMB int
}

// MaxBytes is the upload limit in bytes.
func (c UploadConfig) MaxBytes() int64 {
	return int64(c.MaxSizeMB) << 20
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is accepted as a credential on /api/internal routes. Optional.
	InternalKey string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("callaudit-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/callaudit/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; environment variables are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Service.Name = viper.GetString("service.name")
	cfg.Service.Version = viper.GetString("service.version")

	// Database
	cfg.Database.URL = viper.GetString("database.url")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnectTimeoutS = viper.GetInt("database.connect_timeout")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.BaseURL = viper.GetString("gemini.base_url")
	cfg.Gemini.TimeoutS = viper.GetInt("gemini.timeout")
	cfg.Gemini.MaxAttempts = viper.GetInt("gemini.max_attempts")
	cfg.Gemini.BaseDelayMS = viper.GetInt("gemini.base_delay_ms")
	cfg.Gemini.MaxDelayMS = viper.GetInt("gemini.max_delay_ms")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.TTLS = viper.GetInt("redis.ttl")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Brokers = listValue("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// JWT & cookies
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.Cookie.Names = listValue("cookie.names")

	// CORS
	cfg.CORS.AllowedOrigins = listValue("cors.allowed_origins")

	// Internal auth key
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")

	// Exports and uploads
	cfg.PDF.FontPath = viper.GetString("pdf.font_path")
	cfg.Upload.MaxSizeMB = viper.GetInt("upload.max_size_mb")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// listValue accepts both YAML lists and comma separated environment values.
func listValue(key string) []string {
	raw := viper.GetStringSlice(key)
	var out []string
	for _, v := range raw {
		out = append(out, util.SplitAndTrim(v, ",")...)
	}
	return out
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")
	viper.SetDefault("service.name", "callaudit-srv")
	viper.SetDefault("service.version", "dev")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Database
	viper.SetDefault("database.url", "")
	viper.SetDefault("database.max_open_conns", 20)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.connect_timeout", 5)

	// Gemini
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.base_url", "")
	viper.SetDefault("gemini.timeout", 120)
	viper.SetDefault("gemini.max_attempts", 3)
	viper.SetDefault("gemini.base_delay_ms", 1000)
	viper.SetDefault("gemini.max_delay_ms", 10000)

	// Redis (disabled unless host is set)
	viper.SetDefault("redis.host", "")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttl", 86400)

	// MinIO (disabled unless endpoint is set)
	viper.SetDefault("minio.endpoint", "")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "callaudit-audio")

	// Kafka (disabled unless brokers are set)
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "callaudit.analysis")

	// Access control
	viper.SetDefault("jwt.issuer", "")
	viper.SetDefault("cookie.names", []string{"access_token", "auth_token", "session"})
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	// Exports and uploads
	viper.SetDefault("pdf.font_path", "")
	viper.SetDefault("upload.max_size_mb", 50)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}
	if cfg.JWT.SecretKey != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.Gemini.MaxAttempts < 1 {
		return fmt.Errorf("gemini.max_attempts must be at least 1")
	}
	if cfg.Gemini.TimeoutS <= 0 {
		return fmt.Errorf("gemini.timeout must be greater than 0")
	}
	if cfg.Gemini.BaseDelayMS < 0 || cfg.Gemini.MaxDelayMS < 0 {
		return fmt.Errorf("gemini delays must not be negative")
	}
	if cfg.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload.max_size_mb must be greater than 0")
	}
	if cfg.MinIO.Enabled() {
		if cfg.MinIO.AccessKey == "" || cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.access_key and minio.secret_key are required when minio.endpoint is set")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required")
		}
	}
	if len(cfg.Cookie.Names) == 0 {
		return fmt.Errorf("cookie.names must have at least one value")
	}
	return nil
}
