package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	StaticDir  string

	RootURL  string
	SiteName string

	CMSURL           string
	GraphQLEndpoint  string
	GraphQLAuthToken string

	PreviewSecret    string
	HomeFallbackFile string

	CacheHTML    string
	CachePrivate string

	StaticParamsLimit int
	MetricsPath       string
	LogLevel          slog.Level
}

// Load reads configuration from the environment. Values from a .env file
// in the working directory are applied first without overriding variables
// that are already set.
func Load() Config {
	_ = godotenv.Load()

	cmsURL := strings.TrimRight(getEnv("SITE_CMS_URL", "http://localhost:3000"), "/")

	return Config{
		ListenAddr:        getEnv("SITE_LISTEN_ADDR", ":8080"),
		StaticDir:         getEnv("SITE_STATIC_DIR", "internal/web/static"),
		RootURL:           strings.TrimRight(getEnv("SITE_ROOT_URL", "http://localhost:8080"), "/"),
		SiteName:          getEnv("SITE_NAME", "Payload Website Template"),
		CMSURL:            cmsURL,
		GraphQLEndpoint:   getEnv("SITE_GRAPHQL_ENDPOINT", cmsURL+"/api/graphql"),
		GraphQLAuthToken:  os.Getenv("SITE_GRAPHQL_AUTH_TOKEN"),
		PreviewSecret:     os.Getenv("SITE_PREVIEW_SECRET"),
		HomeFallbackFile:  strings.TrimSpace(os.Getenv("SITE_HOME_FALLBACK_FILE")),
		CacheHTML:         strings.TrimSpace(os.Getenv("SITE_CACHE_HTML")),
		CachePrivate:      strings.TrimSpace(os.Getenv("SITE_CACHE_PRIVATE")),
		StaticParamsLimit: getEnvInt("SITE_STATIC_PARAMS_LIMIT", 1000),
		MetricsPath:       getEnv("SITE_METRICS_PATH", "/metrics"),
		LogLevel:          getEnvLevel("SITE_LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}

	return parsed
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return fallback
	}

	return level
}
