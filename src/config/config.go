package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	Port     string
	LogLevel string

	// Sheet sources. Each dashboard reads a fixed CSV export URL; column
	// order and header position are part of the per-source contract and
	// must not be auto-detected.
	SheetDespesasURL       string
	SheetFluxoURL          string
	SheetFinanciamentosURL string
	SheetDividasURL        string
	SheetProducaoURL       string

	// Fetch behaviour
	CacheTTL     time.Duration
	FetchTimeout time.Duration

	// Frontend origins allowed by CORS
	AllowedOrigins []string
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
// It centralizes all configuration logic for the application.
func LoadConfig() {
	// Try the current directory first, then the parent (common when running
	// from a subdirectory during development).
	errEnv := godotenv.Load()
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found. Relying on OS environment variables (expected in production).")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SheetDespesasURL: getEnv("SHEET_DESPESAS_URL",
			"https://docs.google.com/spreadsheets/d/1nbNmbgO37FC-9dlwivefFZnQ43-5A8H8Is7K9WLqgx4/export?format=csv&gid=850128765"),
		SheetFluxoURL: getEnv("SHEET_FLUXO_URL",
			"https://docs.google.com/spreadsheets/d/1m6tj6OOIKi2AFM3wLsga_vZkVwlLnXuGVkDco9PKHvg/export?format=csv&gid=690764200"),
		SheetFinanciamentosURL: getEnv("SHEET_FINANCIAMENTOS_URL",
			"https://docs.google.com/spreadsheets/d/106cKYOMqz5Zn1adQBLRvBFHwWqkmHA1Tlv4jLYNTcVs/export?format=csv&gid=0"),
		SheetDividasURL: getEnv("SHEET_DIVIDAS_URL",
			"https://docs.google.com/spreadsheets/d/14kGm7ZcimlB8RMO92Tsc-lCVJtyvURKRKpzpLRGbV6E/export?format=csv&gid=0"),
		SheetProducaoURL: getEnv("SHEET_PRODUCAO_URL",
			"https://docs.google.com/spreadsheets/d/1yBnRcKE9BpLMdjHuCkdnqR3dNm_do2a0tLylYG0ze8c/export?format=csv&gid=1843530588"),

		CacheTTL:     getEnvAsDuration("SHEET_CACHE_TTL", 5*time.Minute),
		FetchTimeout: getEnvAsDuration("SHEET_FETCH_TIMEOUT", 20*time.Second),

		AllowedOrigins: getOrigins("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, CacheTTL=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.CacheTTL)
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

// getOrigins retrieves and parses the comma-separated list of allowed CORS origins.
func getOrigins(key, fallback string) []string {
	originsStr := getEnv(key, fallback)
	origins := strings.Split(originsStr, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
