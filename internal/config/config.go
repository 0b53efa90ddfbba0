package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	DbHost           string
	DbPort           string
	DbUser           string
	DbPassword       string
	DbName           string
	DbParams         string
	CacheDir         string
	FeedPollInterval time.Duration
	NotifyWebhookURL string
	// DefaultUserID/DefaultWorkspaceID bind the background change-feed
	// watcher; requests carry their own session headers.
	DefaultUserID      string
	DefaultWorkspaceID string
	TrustedProxies     []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "eastask"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "eastask"),
		DbName:             getEnv("MYSQL_DATABASE", "eastask"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		CacheDir:           getEnv("CACHE_DIR", ".cache"),
		FeedPollInterval:   parseDuration(os.Getenv("FEED_POLL_INTERVAL"), 2*time.Second),
		NotifyWebhookURL:   os.Getenv("NOTIFY_WEBHOOK_URL"),
		DefaultUserID:      os.Getenv("DEFAULT_USER_ID"),
		DefaultWorkspaceID: os.Getenv("DEFAULT_WORKSPACE_ID"),
		TrustedProxies:     parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
