package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable. Database settings depend on
// the selected driver: "mysql" uses the DB_USER/DB_HOST/DB_PORT/
// DB_NAME group, "sqlite3" only needs DB_PATH.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	DBDriver   string // storage driver: "mysql" or "sqlite3"
	DBUser     string // database username (mysql)
	DBPass     string // database password (mysql, optional)
	DBHost     string // database host address (mysql)
	DBPort     string // database port number (mysql)
	DBName     string // database name (mysql)
	DBPath     string // database file path (sqlite3)
	OMDBAPIKey string // OMDb API key; blank disables metadata enrichment
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// OMDB_API_KEY is deliberately optional: without it the application
// still works, movies are just stored with the bare title.
func Load() Config {
	cfg := Config{
		Env:        must("APP_ENV"),              // environment (dev/test/prod)
		Port:       must("APP_PORT"),             // port to bind the HTTP server
		DBDriver:   must("DB_DRIVER"),            // mysql or sqlite3
		OMDBAPIKey: os.Getenv("OMDB_API_KEY"),    // enrichment credential (empty allowed)
	}
	switch cfg.DBDriver {
	case "mysql":
		cfg.DBUser = must("DB_USER")      // database user
		cfg.DBPass = os.Getenv("DB_PASS") // database password (empty allowed)
		cfg.DBHost = must("DB_HOST")      // database host
		cfg.DBPort = must("DB_PORT")      // database port
		cfg.DBName = must("DB_NAME")      // database name
	case "sqlite3":
		cfg.DBPath = must("DB_PATH") // database file path
	default:
		log.Fatalf("unsupported DB_DRIVER: %q", cfg.DBDriver)
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
