package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Similarity metric constants
const (
	MetricTrigram     = "trigram"
	MetricLevenshtein = "levenshtein"
)

type Config struct {
	Port             int
	DatabaseURL      string
	DatabaseType     string
	ClientSalt       string
	SimilarityMetric string
}

// ParseFlags validates flags and fills in defaults.
// A .env file in the working directory is loaded first, so its values
// behave like ordinary environment variables.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Ignore the error: a missing .env file is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet("phictionary", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres connection string)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ClientSalt, "client-salt", "", "Client IP hashing salt (prefer env)")

	// Search tuning
	fs.StringVar(&cfg.SimilarityMetric, "similarity", "", "Search similarity metric (trigram or levenshtein)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
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
			cfg.Port = 3818 // default
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
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("invalid database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.ClientSalt == "" {
		cfg.ClientSalt = os.Getenv("CLIENT_SALT")
	}
	if cfg.ClientSalt == "" {
		return Config{}, errors.New("CLIENT_SALT required")
	}

	if cfg.SimilarityMetric == "" {
		cfg.SimilarityMetric = os.Getenv("SIMILARITY_METRIC")
		if cfg.SimilarityMetric == "" {
			cfg.SimilarityMetric = MetricTrigram
		}
	}
	if cfg.SimilarityMetric != MetricTrigram && cfg.SimilarityMetric != MetricLevenshtein {
		return Config{}, fmt.Errorf("invalid similarity metric %q (want trigram or levenshtein)", cfg.SimilarityMetric)
	}

	return cfg, nil
}
