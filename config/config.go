package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at start; it is built once and passed down
type Config struct {
	Port            string
	Database        DatabaseConfig
	Cache           CacheConfig
	CORS            CORSConfig
	ShutdownTimeout time.Duration
}

// DatabaseConfig selects the SQL driver, its DSN and the migrations folder
type DatabaseConfig struct {
	Driver        string // "sqlite3" or "pgx"
	DSN           string
	MigrationsDir string // Parent folder; the driver name is appended
}

// CacheConfig configures the optional response cache
// An empty Type disables caching
type CacheConfig struct {
	Type          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// CORSConfig lists what cross-origin callers may do
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// Load reads .env (when present) and the process environment
func Load() (*Config, error) {
	// Missing .env is fine, the environment wins anyway
	_ = godotenv.Load()

	cfg := &Config{
		Port: getenvOrDefault("PORT", "3000"),
		Database: DatabaseConfig{
			Driver:        getenvOrDefault("DB_DRIVER", "sqlite3"),
			DSN:           getenvOrDefault("DB_PATH", "/tmp/test.db"),
			MigrationsDir: getenvOrDefault("MIGRATIONS_DIR", "./database/migrations"),
		},
		Cache: CacheConfig{
			Type:          os.Getenv("CACHE_TYPE"),
			RedisAddr:     getenvOrDefault("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getenvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
	}

	// DATABASE_URL switches to postgres, same as the hosted deployments expect
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.Driver = "pgx"
		cfg.Database.DSN = normalizePostgresURL(dbURL)
	}

	var err error
	if cfg.Cache.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Cache.TTL, err = getenvDuration("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	switch cfg.Database.Driver {
	case "sqlite3", "pgx":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite3 or pgx)", cfg.Database.Driver)
	}
	switch cfg.Cache.Type {
	case "", "memory", "redis":
	default:
		return nil, fmt.Errorf("unsupported CACHE_TYPE %q (want memory, redis or empty)", cfg.Cache.Type)
	}

	return cfg, nil
}

// normalizePostgresURL accepts the legacy postgres:// scheme
func normalizePostgresURL(u string) string {
	if strings.HasPrefix(u, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(u, "postgres://")
	}
	return u
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
