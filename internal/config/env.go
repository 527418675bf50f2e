package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL = "sqlite://./news_reports.db"
	defaultKeyPrefix   = "reports/"
	defaultPort        = 8000
	defaultSaveDir     = "saved_reports"
)

// Settings holds all runtime configuration loaded from the environment.
type Settings struct {
	OpenAIAPIKey string
	GeminiAPIKey string

	// DatabaseURL is normalized: the legacy "postgres://" scheme is rewritten
	// to the canonical "postgresql://".
	DatabaseURL string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageUseSSL    bool
	StorageBucket    string
	StorageKeyPrefix string

	SaveDir     string
	Port        int
	Environment string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{".env", ".env.local", "../.env"}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}
	return nil
}

// Load reads Settings from the environment, applying defaults.
func Load() (*Settings, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	port := defaultPort
	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		port = parsed
	}

	s := &Settings{
		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		DatabaseURL:      NormalizeDatabaseURL(getEnvOrDefault("DATABASE_URL", defaultDatabaseURL)),
		StorageEndpoint:  getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		StorageAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		StorageUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		StorageBucket:    os.Getenv("MINIO_BUCKET"),
		StorageKeyPrefix: getEnvOrDefault("MINIO_KEY_PREFIX", defaultKeyPrefix),
		SaveDir:          getEnvOrDefault("SAVE_DIR", defaultSaveDir),
		Port:             port,
		Environment:      getEnvOrDefault("ENVIRONMENT", "development"),
	}
	return s, nil
}

// NormalizeDatabaseURL rewrites the legacy "postgres://" scheme prefix to the
// canonical "postgresql://". Other URLs pass through unchanged.
func NormalizeDatabaseURL(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

// IsPostgres reports whether DatabaseURL points at a Postgres server.
func (s *Settings) IsPostgres() bool {
	return strings.HasPrefix(s.DatabaseURL, "postgresql://")
}

// SQLitePath returns the on-disk path for the SQLite database when
// DatabaseURL uses the sqlite scheme (or is a bare path).
func (s *Settings) SQLitePath() string {
	path := s.DatabaseURL
	for _, prefix := range []string{"sqlite:///", "sqlite://"} {
		if strings.HasPrefix(path, prefix) {
			return strings.TrimPrefix(path, prefix)
		}
	}
	return path
}

func getEnvOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
