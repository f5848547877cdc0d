package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string
	LocalStoreDir   string

	// Pool overrides; zero keeps the process default.
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBConnMaxIdleTime time.Duration
	DBPingTimeout     time.Duration

	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration

	LogJSON  bool
	LogDebug bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is read if present; real environment
// variables win over it.
func Load() Config {
	return LoadFrom(viper.New(), ".env")
}

// LoadFrom reads configuration through v, optionally seeded from envFile.
func LoadFrom(v *viper.Viper, envFile string) Config {
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !isMissingFile(err) {
				log.Printf("config: read %s: %v", envFile, err)
			}
		}
	}

	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	timeout := time.Duration(v.GetInt("GEMINI_TIMEOUT_SECONDS")) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return Config{
		Port:                   v.GetString("PORT"),
		Env:                    env,
		CORSAllowOrigin:        splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		DatabaseURL:            dbURL,
		LocalStoreDir:          v.GetString("LOCAL_STORE_DIR"),
		DBMaxOpenConns:         v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:         v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:      v.GetDuration("DB_CONN_MAX_LIFETIME"),
		DBConnMaxIdleTime:      v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		DBPingTimeout:          v.GetDuration("DB_PING_TIMEOUT"),
		SupabaseURL:            strings.TrimRight(strings.TrimSpace(v.GetString("SUPABASE_URL")), "/"),
		SupabaseServiceRoleKey: strings.TrimSpace(v.GetString("SUPABASE_SERVICE_ROLE_KEY")),
		SupabaseJWTSecret:      strings.TrimSpace(v.GetString("SUPABASE_JWT_SECRET")),
		GeminiAPIKey:           strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:            strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		GeminiBaseURL:          strings.TrimSpace(v.GetString("GEMINI_BASE_URL")),
		GeminiTimeout:          timeout,
		LogJSON:                v.GetBool("LOG_JSON"),
		LogDebug:               v.GetBool("LOG_DEBUG"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("LOCAL_STORE_DIR", "./data")
	for _, key := range []string{"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME", "DB_PING_TIMEOUT"} {
		v.SetDefault(key, "")
	}
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	v.SetDefault("SUPABASE_JWT_SECRET", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "")
	v.SetDefault("GEMINI_TIMEOUT_SECONDS", 60)
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("LOG_DEBUG", false)
}

func isMissingFile(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such file") || strings.Contains(msg, "cannot find the file")
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

// IsDevLike reports whether env allows in-memory fallbacks.
func IsDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
