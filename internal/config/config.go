package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Version is the vartani release version.
const Version = "0.1.0"

// Config holds all vartani configuration.
type Config struct {
	Mode            string // "query" (one-shot) or "stream"
	Connector       ConnectorConfig
	Engine          EngineConfig
	Output          OutputConfig
	Report          ReportConfig
	LogLevel        string
	ShutdownTimeout time.Duration
	ShowVersion     bool
}

// ConnectorConfig holds transcript source settings.
type ConnectorConfig struct {
	Provider string
	Path     string // manifest path for the "manifest" provider
	Extra    map[string]string
}

// EngineConfig holds classification engine settings.
type EngineConfig struct {
	VocabularyPath  string // YAML word lists; empty = bundled defaults
	MaxEditDistance int
	Workers         int // 0 = GOMAXPROCS
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format string // "csv", "stdout", or "both"
	Path   string // CSV report path
	Pretty bool   // indent stdout JSON
}

// ReportConfig holds the fixed-ratio projection parameters.
type ReportConfig struct {
	TargetCorpusSize int // 0 disables the projection
	ErrorRate        float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Mode: getenv("VARTANI_MODE", "query"),
		Connector: ConnectorConfig{
			Provider: getenv("VARTANI_CONNECTOR", "manifest"),
			Path:     getenv("VARTANI_MANIFEST", "train_manifest.jsonl"),
		},
		Engine: EngineConfig{
			VocabularyPath:  os.Getenv("VARTANI_VOCABULARY"),
			MaxEditDistance: getenvInt("VARTANI_MAX_EDIT_DISTANCE", 1),
			Workers:         getenvInt("VARTANI_WORKERS", 0),
		},
		Output: OutputConfig{
			Format: getenv("VARTANI_OUTPUT", "csv"),
			Path:   getenv("VARTANI_OUTPUT_PATH", "final_word_list.csv"),
			Pretty: getenvBool("VARTANI_OUTPUT_PRETTY", false),
		},
		Report: ReportConfig{
			TargetCorpusSize: getenvInt("VARTANI_TARGET_CORPUS_SIZE", 175000),
			ErrorRate:        getenvFloat("VARTANI_ERROR_RATE", 0.045),
		},
		LogLevel:        getenv("VARTANI_LOG_LEVEL", "info"),
		ShutdownTimeout: getenvDuration("VARTANI_SHUTDOWN_TIMEOUT", 10*time.Second),
		ShowVersion:     getenvBool("VARTANI_SHOW_VERSION", false),
	}
}

// Validate checks the configuration for internal consistency. All problems
// are reported at once via a joined error.
func (c Config) Validate() error {
	var errs []error

	if c.Mode != "query" && c.Mode != "stream" {
		errs = append(errs, fmt.Errorf("invalid mode %q (want 'query' or 'stream')", c.Mode))
	}
	if c.Connector.Provider == "" {
		errs = append(errs, errors.New("connector provider is empty"))
	}
	if c.Connector.Provider == "manifest" && c.Connector.Path == "" {
		errs = append(errs, errors.New("VARTANI_MANIFEST is required for the manifest connector"))
	}
	if c.Engine.VocabularyPath != "" {
		if _, err := os.Stat(c.Engine.VocabularyPath); err != nil {
			errs = append(errs, fmt.Errorf("vocabulary file: %w", err))
		}
	}
	if c.Engine.MaxEditDistance < 0 {
		errs = append(errs, fmt.Errorf("max edit distance must be >= 0, got %d", c.Engine.MaxEditDistance))
	}
	if c.Engine.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Engine.Workers))
	}
	switch c.Output.Format {
	case "csv", "stdout", "both":
	default:
		errs = append(errs, fmt.Errorf("invalid output format %q (want 'csv', 'stdout', or 'both')", c.Output.Format))
	}
	if c.Output.Format != "stdout" && c.Output.Path == "" {
		errs = append(errs, errors.New("VARTANI_OUTPUT_PATH is required for csv output"))
	}
	if c.Report.ErrorRate < 0 || c.Report.ErrorRate >= 1 {
		errs = append(errs, fmt.Errorf("error rate must be in [0, 1), got %v", c.Report.ErrorRate))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be >= 0, got %v", c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
