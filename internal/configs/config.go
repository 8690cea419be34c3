package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/constants"
)

// ScraperConfig holds the per-fetch settings.
type ScraperConfig struct {
	UserAgent           string `yaml:"user_agent"`
	TimeoutSeconds      int    `yaml:"timeout"`
	ParallelRequests    int    `yaml:"parallel_requests"`
	DelayBetweenPagesMs int    `yaml:"delay_between_pages_ms"`
	MaxPages            int    `yaml:"max_pages"`
}

// Timeout returns the per-fetch timeout as a duration.
func (c ScraperConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DelayBetweenPages returns the per-page-offset stagger delay.
func (c ScraperConfig) DelayBetweenPages() time.Duration {
	return time.Duration(c.DelayBetweenPagesMs) * time.Millisecond
}

// OutputConfig holds export destination defaults.
type OutputConfig struct {
	Path          string `yaml:"path"`
	DefaultFormat string `yaml:"default_format"`
}

// DeltaConfig controls delta mode.
type DeltaConfig struct {
	Enabled      bool   `yaml:"enabled"`
	PreviousFile string `yaml:"previous_file"`
}

type StdoutLogConfig struct {
	Level string `yaml:"level"`
}

type FluentBitConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Level   string `yaml:"level"`
}

// AppConfig is the full application configuration.
type AppConfig struct {
	AppName      string          `yaml:"app_name"`
	Scraper      ScraperConfig   `yaml:"scraper"`
	Output       OutputConfig    `yaml:"output"`
	Delta        DeltaConfig     `yaml:"delta_mode"`
	StdoutLogger StdoutLogConfig `yaml:"stdout_logger"`
	FluentBit    FluentBitConfig `yaml:"fluentbit"`
}

// LoadConfig builds the configuration in three layers: documented defaults,
// an optional YAML settings file, then environment variables (optionally
// loaded from a .env file). CLI flags are applied on top by the caller.
func LoadConfig(settingsPath string, envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// The .env file is optional for a CLI invocation.
		log.Printf("Info: could not load .env file (path: %v): %v\n", envPath, err)
	}

	cfg := defaultConfig()

	if settingsPath != "" {
		if err := applySettingsFile(cfg, settingsPath); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		AppName: "immobiliare-listing-scraper",
		Scraper: ScraperConfig{
			UserAgent:           constants.DefaultUserAgent,
			TimeoutSeconds:      20,
			ParallelRequests:    4,
			DelayBetweenPagesMs: 500,
			MaxPages:            1,
		},
		Output: OutputConfig{
			Path: "data/output.json",
		},
		StdoutLogger: StdoutLogConfig{Level: "info"},
		FluentBit:    FluentBitConfig{Port: 24224, Level: "info"},
	}
}

func applySettingsFile(cfg *AppConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Info: settings file %s not found, using defaults\n", path)
			return nil
		}
		return fmt.Errorf("configs: failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("configs: failed to parse settings file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) {
	cfg.AppName = getEnvAsString("APP_NAME", cfg.AppName)

	cfg.Scraper.UserAgent = getEnvAsString("SCRAPER_USER_AGENT", cfg.Scraper.UserAgent)
	cfg.Scraper.TimeoutSeconds = getEnvAsInt("SCRAPER_TIMEOUT", cfg.Scraper.TimeoutSeconds)
	cfg.Scraper.ParallelRequests = getEnvAsInt("SCRAPER_PARALLEL_REQUESTS", cfg.Scraper.ParallelRequests)
	cfg.Scraper.DelayBetweenPagesMs = getEnvAsInt("SCRAPER_DELAY_BETWEEN_PAGES_MS", cfg.Scraper.DelayBetweenPagesMs)
	cfg.Scraper.MaxPages = getEnvAsInt("SCRAPER_MAX_PAGES", cfg.Scraper.MaxPages)

	cfg.Output.Path = getEnvAsString("OUTPUT_PATH", cfg.Output.Path)
	cfg.Output.DefaultFormat = getEnvAsString("OUTPUT_FORMAT", cfg.Output.DefaultFormat)

	cfg.Delta.Enabled = getEnvAsBool("DELTA_ENABLED", cfg.Delta.Enabled)
	cfg.Delta.PreviousFile = getEnvAsString("DELTA_PREVIOUS_FILE", cfg.Delta.PreviousFile)

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", cfg.StdoutLogger.Level)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", cfg.FluentBit.Enabled)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = getEnvAsString("FLUENTBIT_HOST", cfg.FluentBit.Host)
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", cfg.FluentBit.Port)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", cfg.FluentBit.Level)
	}
}

// getEnvAsString reads an environment variable or returns the default.
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as int or returns the default.
// Logs when the variable exists but cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool reads an environment variable as bool or returns the default.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
