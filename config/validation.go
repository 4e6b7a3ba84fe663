package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requirements lists fields that must be set per environment beyond the common checks
var requirements = map[Environment][]string{
	Development: {},
	Test:        {},
	CI:          {},
	Production:  {"DBPassword", "Redis"},
}

// ValidateConfig checks if the configuration meets the requirements for env
func ValidateConfig(cfg *Config, env Environment) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort))
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "required when DB_DRIVER is sqlite")
		}
	case "postgres":
		if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
			add("DB_HOST", "DB_HOST, DB_NAME and DB_USER are required when DB_DRIVER is postgres")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unsupported driver %q (want sqlite or postgres)", cfg.DBDriver))
	}

	if cfg.RateLimitRequests <= 0 {
		add("RATE_LIMIT_REQUESTS", "must be positive")
	}
	if cfg.RateLimitWindow <= 0 {
		add("RATE_LIMIT_WINDOW", "must be positive")
	}
	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		add("AWS_REGION", "required when S3_BUCKET_NAME is set")
	}

	for _, req := range requirements[env] {
		switch req {
		case "DBPassword":
			if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
				add("DB_PASSWORD", "db_password secret is required")
			}
		case "Redis":
			if !cfg.RedisEnabled() {
				add("REDIS_URL", "redis is required in "+string(env))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
