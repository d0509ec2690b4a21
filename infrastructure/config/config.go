package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Variant store backends.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Storage menu policies.
const (
	MenuCatalog = "catalog"
	MenuData    = "data"
)

// How catalog options without a price are shown.
const (
	UnavailableFlag = "flag"
	UnavailableHide = "hide"
)

type AppConfig struct {
	Addr string

	VariantStore string
	SQLitePath   string
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string

	MenuPolicy         string
	UnavailableOptions string
	SortByPrice        bool
	PriceLocale        string
	CurrencySymbol     string
	QueryTimeout       time.Duration

	LogLevel  slog.Level
	LogFormat string
}

// Load reads .env (if present) and the process environment.
func Load() (AppConfig, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the config from an arbitrary env lookup.
func FromLookup(lookup func(string) (string, bool)) (AppConfig, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	c := AppConfig{
		Addr:               get("APP_ADDR", ":8080"),
		VariantStore:       strings.ToLower(get("VARIANT_STORE", StoreSQLite)),
		SQLitePath:         get("SQLITE_PATH", "tradein.db"),
		DatabaseURL:        get("DATABASE_URL", ""),
		DBHost:             get("DB_HOST", "127.0.0.1"),
		DBPort:             get("DB_PORT", "5432"),
		DBUser:             get("DB_USER", "postgres"),
		DBPassword:         get("DB_PASSWORD", ""),
		DBName:             get("DB_NAME", "postgres"),
		DBSSLMode:          get("DB_SSLMODE", "require"),
		MenuPolicy:         strings.ToLower(get("MENU_POLICY", MenuCatalog)),
		UnavailableOptions: strings.ToLower(get("UNAVAILABLE_OPTIONS", UnavailableFlag)),
		PriceLocale:        get("PRICE_LOCALE", "en-IN"),
		CurrencySymbol:     get("CURRENCY_SYMBOL", "₹"),
		LogFormat:          strings.ToLower(get("LOG_FORMAT", "text")),
	}

	switch c.VariantStore {
	case StoreSQLite, StorePostgres, StoreMemory:
	default:
		return c, fmt.Errorf("invalid VARIANT_STORE %q", c.VariantStore)
	}
	switch c.MenuPolicy {
	case MenuCatalog, MenuData:
	default:
		return c, fmt.Errorf("invalid MENU_POLICY %q", c.MenuPolicy)
	}
	switch c.UnavailableOptions {
	case UnavailableFlag, UnavailableHide:
	default:
		return c, fmt.Errorf("invalid UNAVAILABLE_OPTIONS %q", c.UnavailableOptions)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return c, fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}

	sortByPrice, err := strconv.ParseBool(get("SORT_BY_PRICE", "true"))
	if err != nil {
		return c, fmt.Errorf("invalid SORT_BY_PRICE: %w", err)
	}
	c.SortByPrice = sortByPrice

	timeout, err := time.ParseDuration(get("QUERY_TIMEOUT", "5s"))
	if err != nil {
		return c, fmt.Errorf("invalid QUERY_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return c, fmt.Errorf("QUERY_TIMEOUT must be positive")
	}
	c.QueryTimeout = timeout

	if err := c.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return c, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return c, nil
}

// PostgresDSN returns DATABASE_URL when set, otherwise a lib/pq keyword DSN.
func (c AppConfig) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// NewLogger builds the process logger for the configured format and level.
func (c AppConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
