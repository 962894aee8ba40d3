package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/bfhl/models"
)

// Supported DATABASE_TYPE values
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	DefaultPort         = 3001
	DefaultCORSOrigin   = "http://localhost:3000"
	DefaultMaxBodyBytes = 1 << 20
	DefaultIPHashSalt   = "bfhl"
	DefaultEnvFile      = ".env"
)

// DefaultIdentity is used for any identity field left unset
var DefaultIdentity = models.Identity{
	FullName:    "john_doe",
	Email:       "john@xyz.com",
	RollNumber:  "ABCD123",
	DateOfBirth: "17091999",
}

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	CORSOrigin   string
	MaxBodyBytes int64
	IPHashSalt   string
	EnvFile      string
	Identity     models.Identity
}

// HistoryEnabled reports whether submissions should be persisted
func (c Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// ParseFlags reads flags, then the .env file, then environment variables.
// CLI flags win over env, env wins over the .env file, defaults fill the rest.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("bfhl", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (empty disables submission history)")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	flags.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin")
	flags.Int64Var(&cfg.MaxBodyBytes, "max-body", 0, "Maximum request body size in bytes")
	flags.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Client IP hash salt (prefer env)")
	flags.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Path to a .env file")

	// Identity
	flags.StringVar(&cfg.Identity.FullName, "name", "", "User full name")
	flags.StringVar(&cfg.Identity.Email, "email", "", "User email")
	flags.StringVar(&cfg.Identity.RollNumber, "roll", "", "User roll number")
	flags.StringVar(&cfg.Identity.DateOfBirth, "dob", "", "User date of birth (ddmmyyyy)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables that are already set
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = envOr("CORS_ORIGIN", DefaultCORSOrigin)
	}

	if cfg.MaxBodyBytes == 0 {
		if s := os.Getenv("MAX_BODY_BYTES"); s != "" {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid MAX_BODY_BYTES env variable")
			}
			cfg.MaxBodyBytes = n
		} else {
			cfg.MaxBodyBytes = DefaultMaxBodyBytes
		}
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, errors.New("max body size must be positive")
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = envOr("IP_HASH_SALT", DefaultIPHashSalt)
	}

	// Identity fields fall back to fixed defaults
	if cfg.Identity.FullName == "" {
		cfg.Identity.FullName = envOr("USER_FULL_NAME", DefaultIdentity.FullName)
	}
	if cfg.Identity.Email == "" {
		cfg.Identity.Email = envOr("USER_EMAIL", DefaultIdentity.Email)
	}
	if cfg.Identity.RollNumber == "" {
		cfg.Identity.RollNumber = envOr("USER_ROLL_NUMBER", DefaultIdentity.RollNumber)
	}
	if cfg.Identity.DateOfBirth == "" {
		cfg.Identity.DateOfBirth = envOr("USER_DATE_OF_BIRTH", DefaultIdentity.DateOfBirth)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
