package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Selection SelectionConfig
	Visitor   VisitorConfig
	Notify    NotifyConfig
	Directory DirectoryConfig
	Events    EventsConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	HubLogFilePath     string
	CorsAllowedOrigins string
	RedisURL           string
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type SelectionConfig struct {
	// Store is "redis" or "memory".
	Store              string
	KeyPrefix          string
	TTL                time.Duration
	RedisOpTimeout     time.Duration
	AssetDownloadHosts []string
}

type VisitorConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
}

type NotifyConfig struct {
	AdminEmail      string
	CareersEmail    string
	SiteName        string
	LogoPath        string
	SlackWebhookURL string
}

// DirectoryConfig scopes the public companies listing.
type DirectoryConfig struct {
	CompanyWebsite string
}

type EventsConfig struct {
	NatsURL   string
	Retention time.Duration
}

type TracingConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			HubLogFilePath:     getEnv("HUB_LOG_FILE_PATH", "logs/selection_hub.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "BuildChem"),
		},
		Selection: SelectionConfig{
			Store:              strings.ToLower(getEnv("SELECTION_STORE", "memory")),
			KeyPrefix:          getEnv("SELECTION_KEY_PREFIX", "solutions-cart"),
			TTL:                getEnvAsDuration("SELECTION_TTL", 30*24*time.Hour),
			RedisOpTimeout:     getEnvAsDuration("REDIS_OP_TIMEOUT", 2*time.Second),
			AssetDownloadHosts: getEnvAsList("ASSET_DOWNLOAD_HOSTS", nil),
		},
		Visitor: VisitorConfig{
			Secret:     getEnv("VISITOR_TOKEN_SECRET", ""),
			CookieName: getEnv("VISITOR_COOKIE_NAME", "visitor_token"),
			TTL:        getEnvAsDuration("VISITOR_TOKEN_TTL", 365*24*time.Hour),
		},
		Notify: NotifyConfig{
			AdminEmail:      getEnv("ADMIN_EMAIL", ""),
			CareersEmail:    getEnv("CAREERS_EMAIL", ""),
			SiteName:        getEnv("SITE_NAME", "BuildChem"),
			LogoPath:        getEnv("EMAIL_LOGO_PATH", "assets/logo.png"),
			SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
		},
		Events: EventsConfig{
			NatsURL:   getEnv("NATS_URL", "nats://localhost:4222"),
			Retention: getEnvAsDuration("LEAD_EVENT_RETENTION", 720*time.Hour),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvAsBool("OTEL_ENABLED", false),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "buildchem-be"),
		},
	}

	cfg.Directory.CompanyWebsite = getEnv("COMPANY_WEBSITE", cfg.Notify.SiteName)

	if cfg.Visitor.Secret == "" {
		cfg.Visitor.Secret = randomSecret()
		log.Println("[WARN] VISITOR_TOKEN_SECRET not set, visitor cookies will not survive a restart")
	}

	return cfg
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Panicf("Unable to generate visitor secret: %v", err)
	}
	return hex.EncodeToString(b)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated value, dropping blanks.
func getEnvAsList(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strings.TrimSpace(strValue) == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(strValue, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
