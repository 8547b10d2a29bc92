package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Auth modes for bearer token verification on /api routes
const (
	AuthModeEnforced = "enforced"
	AuthModeOptional = "optional"
	AuthModeDisabled = "disabled"
)

// Transcription backends
const (
	TranscribeBackendWhisper    = "whisper"
	TranscribeBackendAssemblyAI = "assemblyai"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Groq       GroqConfig
	Transcribe TranscribeConfig
	Assembly   AssemblyAIConfig
	Storage    StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"3001"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	FrontendURL     string   `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	PublicURL       string   `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3001"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"https://whop.com,https://*.whop.com,http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	JSONBodyLimit   string   `envconfig:"JSON_BODY_LIMIT" default:"50M"`
	ExportDir       string   `envconfig:"EXPORT_DIR" default:"exports"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL         string `envconfig:"DATABASE_URL"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_notes"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration. An empty host disables Redis and the
// in-memory store is used instead.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AuthConfig holds bearer token verification settings
type AuthConfig struct {
	Mode      string `envconfig:"AUTH_MODE" default:"enforced"`
	JWTSecret string `envconfig:"SUPABASE_JWT_SECRET"`
	Issuer    string `envconfig:"AUTH_ISSUER"`
	Audience  string `envconfig:"AUTH_AUDIENCE" default:"authenticated"`
}

// GroqConfig holds completion API configuration
type GroqConfig struct {
	APIKey     string        `envconfig:"GROQ_API_KEY"`
	BaseURL    string        `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1"`
	Model      string        `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
	Timeout    time.Duration `envconfig:"GROQ_TIMEOUT" default:"60s"`
	MaxRetries int           `envconfig:"GROQ_MAX_RETRIES" default:"2"`
	CacheTTL   time.Duration `envconfig:"COMPLETION_CACHE_TTL" default:"10m"`
}

// TranscribeConfig holds speech recognition configuration
type TranscribeConfig struct {
	Backend        string        `envconfig:"TRANSCRIBE_BACKEND" default:"whisper"`
	WhisperBinary  string        `envconfig:"WHISPER_BIN" default:"whisper"`
	WhisperModel   string        `envconfig:"WHISPER_MODEL" default:"small"`
	WhisperTimeout time.Duration `envconfig:"WHISPER_TIMEOUT" default:"0s"`
	UploadDir      string        `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxUploadBytes int64         `envconfig:"MAX_UPLOAD_BYTES" default:"104857600"`
}

// AssemblyAIConfig holds the hosted transcription fallback configuration
type AssemblyAIConfig struct {
	APIKey       string `envconfig:"ASSEMBLYAI_API_KEY"`
	LanguageCode string `envconfig:"ASSEMBLYAI_LANGUAGE" default:"en"`
}

// StorageConfig holds export storage configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"local"` // "local" or "minio"
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-notes-exports"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse reads .env and the environment without cross-field validation, for
// tools that only need part of the configuration
func Parse() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Auth.Mode {
	case AuthModeEnforced, AuthModeOptional:
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("SUPABASE_JWT_SECRET is required when AUTH_MODE=%s", c.Auth.Mode)
		}
	case AuthModeDisabled:
	default:
		return fmt.Errorf("AUTH_MODE must be one of enforced, optional, disabled (got %q)", c.Auth.Mode)
	}

	switch c.Transcribe.Backend {
	case TranscribeBackendWhisper:
	case TranscribeBackendAssemblyAI:
		if c.Assembly.APIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when TRANSCRIBE_BACKEND=assemblyai")
		}
	default:
		return fmt.Errorf("TRANSCRIBE_BACKEND must be whisper or assemblyai (got %q)", c.Transcribe.Backend)
	}

	switch c.Storage.Type {
	case "local", "minio":
	default:
		return fmt.Errorf("STORAGE_TYPE must be local or minio (got %q)", c.Storage.Type)
	}

	if c.Transcribe.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// AllowedOrigins returns the CORS allow-list including the frontend origin
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.Server.AllowedOrigins)+1)
	seen := make(map[string]bool)
	for _, o := range append([]string{c.Server.FrontendURL}, c.Server.AllowedOrigins...) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
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

// RedisEnabled reports whether a Redis host is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
