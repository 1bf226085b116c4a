package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/shopspring/decimal" // fixed-point type used for the exchange rate
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Credentials (the metadata API key, the JWT
// secret, the admin secret) are required and enforced at startup: a fetch
// must never begin and only then discover it cannot authenticate.
type Config struct {
	Env          string          // application environment (e.g. "dev", "prod")
	Port         string          // HTTP port to listen on
	DBUser       string          // database username
	DBPass       string          // database password (optional)
	DBHost       string          // database host address
	DBPort       string          // database port number
	DBName       string          // database name
	JWTSecret    string          // secret used to sign admin JWTs
	AdminSecret  string          // shared secret exchanged for an admin token
	AccessTTLMin int             // admin token time-to-live in minutes
	TMDBAPIKey   string          // metadata API key
	TMDBBaseURL  string          // metadata API base URL
	MojoBaseURL  string          // box-office source base URL
	ExchangeRate decimal.Decimal // units of target currency per source unit
	TopFilmsMax  int             // ranking rows considered per weekend
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message before any network
// call is made.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),      // environment (dev/test/prod)
		Port:         must("APP_PORT"),     // port to bind the HTTP server
		DBUser:       must("DB_USER"),      // database user
		DBPass:       os.Getenv("DB_PASS"), // database password (empty allowed)
		DBHost:       must("DB_HOST"),      // database host
		DBPort:       must("DB_PORT"),      // database port
		DBName:       must("DB_NAME"),      // database name
		JWTSecret:    must("JWT_SECRET"),   // secret for signing admin tokens
		AdminSecret:  must("ADMIN_SECRET"), // secret required to obtain a token
		AccessTTLMin: intDefault("ACCESS_TOKEN_TTL_MIN", 60),
		TMDBAPIKey:   must("TMDB_API_KEY"), // key for the metadata API
		TMDBBaseURL:  getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		MojoBaseURL:  getenv("MOJO_BASE_URL", "https://www.boxofficemojo.com"),
		ExchangeRate: mustRate("EXCHANGE_RATE", "0.78"),
		TopFilmsMax:  intDefault("TOP_FILMS_MAX", 15),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustRate parses a decimal exchange rate, falling back to def when the
// variable is unset.  A present but malformed or non-positive rate is a
// configuration error and fatal.
func mustRate(key, def string) decimal.Decimal {
	s := getenv(key, def)
	rate, err := decimal.NewFromString(s)
	if err != nil || !rate.IsPositive() {
		log.Fatalf("invalid exchange rate for %s: %q", key, s)
	}
	return rate
}

// intDefault converts an optional integer variable, keeping def when the
// variable is unset and failing fatally when it is set but not a number.
func intDefault(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
