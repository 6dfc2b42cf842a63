package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Config struct {
	// Ledger source
	OperationsFile string
	LedgerBackend  string

	// User settings
	SettingsFile string

	// Activity log and report artifacts
	LogFile    string
	LogTable   string
	ReportsDir string

	// Quote APIs
	RatesAPIURL   string
	RatesAPIKey   string
	FinnhubAPIURL string
	FinnhubAPIKey string
}

func Load() *Config {
	return &Config{
		OperationsFile: getEnv("OPERATIONS_FILE", "./data/operations.csv"),
		LedgerBackend:  getEnv("LEDGER_BACKEND", "csv"),

		SettingsFile: getEnv("SETTINGS_FILE", "./user_settings.json"),

		LogFile:    getEnv("LOG_FILE", "./logs/activity.log"),
		LogTable:   getEnv("LOG_TABLE", "./logs/activity_report.csv"),
		ReportsDir: getEnv("REPORTS_DIR", "./logs"),

		RatesAPIURL:   getEnv("API_URL", ""),
		RatesAPIKey:   getEnv("API_KEY", ""),
		FinnhubAPIURL: getEnv("FINNHUB_API_URL", "https://finnhub.io/api/v1"),
		FinnhubAPIKey: getEnv("FINNHUB_API_KEY", ""),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"csv", "sheets"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.LedgerBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid ledger backend '%s': must be one of %v", c.LedgerBackend, validBackends))
	}

	if c.LedgerBackend == "csv" && c.OperationsFile == "" {
		errors = append(errors, "operations file path cannot be empty when using csv backend")
	}

	if c.SettingsFile == "" {
		errors = append(errors, "settings file path cannot be empty")
	}
	if c.LogFile == "" {
		errors = append(errors, "log file path cannot be empty")
	}
	if c.ReportsDir == "" {
		errors = append(errors, "reports directory cannot be empty")
	}

	// The rates API is required for the dashboards; the key goes with it.
	if c.RatesAPIURL == "" {
		errors = append(errors, "API_URL is required for currency rates")
	} else if parsed, err := url.Parse(c.RatesAPIURL); err != nil || parsed.Scheme == "" {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s'", c.RatesAPIURL))
	}
	if c.RatesAPIKey == "" {
		errors = append(errors, "API_KEY is required for currency rates")
	}
	if c.FinnhubAPIKey == "" {
		errors = append(errors, "FINNHUB_API_KEY is required for stock prices")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
