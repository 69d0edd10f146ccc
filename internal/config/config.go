package config

import (
	"log"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Remote RemoteConfig
	Local  LocalConfig
	Auth   AuthConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// RemoteConfig carries the hosted relational backend connection values.
// Remote mode is active iff URL and AccessKey are both present and the URL
// parses. There is no reachability probe.
type RemoteConfig struct {
	URL       string
	AccessKey string
}

type LocalConfig struct {
	DataDir string
}

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Remote: RemoteConfig{
			URL:       getEnv("REMOTE_DB_URL", ""),
			AccessKey: getEnv("REMOTE_DB_KEY", ""),
		},
		Local: LocalConfig{
			DataDir: getEnv("LOCAL_DATA_DIR", "./data"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "default_secret"),
			TokenExpiry: getEnvAsDuration("TOKEN_EXPIRY", 24*time.Hour),
		},
	}
}

// RemoteConfigured reports whether the remote backend connection values are
// present and well-formed. Evaluated once at bootstrap; every data operation
// afterwards goes through the provider chosen from this single check.
func (c *Config) RemoteConfigured() bool {
	if c.Remote.URL == "" || c.Remote.AccessKey == "" {
		return false
	}
	u, err := url.Parse(c.Remote.URL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
