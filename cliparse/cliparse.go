package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"

	SessionCookie = "cookie"
	SessionShared = "shared"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	DatabaseSSL   bool
	SessionMode   string
	SessionSecret string
	RedisURL      string
	SecureCookie  bool
	DefaultUserID int64
	SeedData      bool
}

// LoadEnv reads a .env file into the process environment if one exists.
// Variables already set in the environment win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("travel-tracker", flag.ContinueOnError)

	// Network and store
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.BoolVar(&cfg.DatabaseSSL, "ssl", false, "Use TLS for the database connection")

	// Sessions
	fs.StringVar(&cfg.SessionMode, "session", "", "Session mode (cookie or shared)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for cookie sessions (optional)")
	fs.BoolVar(&cfg.SecureCookie, "secure-cookie", false, "Only send the session cookie over HTTPS")
	fs.Int64Var(&cfg.DefaultUserID, "default-user", 0, "User selected before any switch")

	fs.BoolVar(&cfg.SeedData, "seed", false, "Seed countries and starter users")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabasePostgres
		}
	}
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if !set["ssl"] {
		v, err := envBool("DATABASE_SSL")
		if err != nil {
			return Config{}, err
		}
		cfg.DatabaseSSL = v
	}
	if !set["secure-cookie"] {
		v, err := envBool("SECURE_COOKIE")
		if err != nil {
			return Config{}, err
		}
		cfg.SecureCookie = v
	}
	if !set["seed"] {
		v, err := envBool("SEED_DATA")
		if err != nil {
			return Config{}, err
		}
		cfg.SeedData = v
	}

	if cfg.SessionMode == "" {
		cfg.SessionMode = os.Getenv("SESSION_MODE")
		if cfg.SessionMode == "" {
			cfg.SessionMode = SessionCookie
		}
	}
	if cfg.SessionMode != SessionCookie && cfg.SessionMode != SessionShared {
		return Config{}, fmt.Errorf("unsupported session mode %q", cfg.SessionMode)
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionMode == SessionCookie && cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required in cookie session mode")
	}

	if cfg.DefaultUserID == 0 {
		if idStr := os.Getenv("DEFAULT_USER_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid DEFAULT_USER_ID env variable")
			}
			cfg.DefaultUserID = id
		} else {
			cfg.DefaultUserID = 1
		}
	}

	return cfg, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s env variable", key)
	}
	return b, nil
}
