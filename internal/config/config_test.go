package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VARTANI_MODE", "VARTANI_CONNECTOR", "VARTANI_MANIFEST",
		"VARTANI_VOCABULARY", "VARTANI_MAX_EDIT_DISTANCE", "VARTANI_WORKERS",
		"VARTANI_OUTPUT", "VARTANI_OUTPUT_PATH", "VARTANI_OUTPUT_PRETTY",
		"VARTANI_TARGET_CORPUS_SIZE", "VARTANI_ERROR_RATE",
		"VARTANI_LOG_LEVEL", "VARTANI_SHUTDOWN_TIMEOUT", "VARTANI_SHOW_VERSION",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Mode != "query" {
		t.Fatalf("expected default Mode='query', got %q", cfg.Mode)
	}
	if cfg.Connector.Provider != "manifest" {
		t.Fatalf("expected default provider 'manifest', got %q", cfg.Connector.Provider)
	}
	if cfg.Connector.Path != "train_manifest.jsonl" {
		t.Fatalf("expected default manifest path 'train_manifest.jsonl', got %q", cfg.Connector.Path)
	}
	if cfg.Engine.VocabularyPath != "" {
		t.Fatalf("expected empty VocabularyPath, got %q", cfg.Engine.VocabularyPath)
	}
	if cfg.Engine.MaxEditDistance != 1 {
		t.Fatalf("expected default MaxEditDistance=1, got %d", cfg.Engine.MaxEditDistance)
	}
	if cfg.Output.Format != "csv" {
		t.Fatalf("expected default output 'csv', got %q", cfg.Output.Format)
	}
	if cfg.Output.Path != "final_word_list.csv" {
		t.Fatalf("expected default output path 'final_word_list.csv', got %q", cfg.Output.Path)
	}
	if cfg.Output.Pretty {
		t.Fatal("expected default Pretty=false")
	}
	if cfg.Report.TargetCorpusSize != 175000 {
		t.Fatalf("expected default TargetCorpusSize=175000, got %d", cfg.Report.TargetCorpusSize)
	}
	if cfg.Report.ErrorRate != 0.045 {
		t.Fatalf("expected default ErrorRate=0.045, got %v", cfg.Report.ErrorRate)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default ShutdownTimeout=10s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	os.Setenv("VARTANI_MODE", "stream")
	os.Setenv("VARTANI_MANIFEST", "/data/hi/train.jsonl")
	os.Setenv("VARTANI_MAX_EDIT_DISTANCE", "2")
	os.Setenv("VARTANI_WORKERS", "4")
	os.Setenv("VARTANI_OUTPUT", "both")
	os.Setenv("VARTANI_ERROR_RATE", "0.1")
	os.Setenv("VARTANI_SHUTDOWN_TIMEOUT", "5s")
	defer clearEnv(t)

	cfg := Load()

	if cfg.Mode != "stream" {
		t.Fatalf("expected Mode='stream', got %q", cfg.Mode)
	}
	if cfg.Connector.Path != "/data/hi/train.jsonl" {
		t.Fatalf("expected manifest path override, got %q", cfg.Connector.Path)
	}
	if cfg.Engine.MaxEditDistance != 2 {
		t.Fatalf("expected MaxEditDistance=2, got %d", cfg.Engine.MaxEditDistance)
	}
	if cfg.Engine.Workers != 4 {
		t.Fatalf("expected Workers=4, got %d", cfg.Engine.Workers)
	}
	if cfg.Output.Format != "both" {
		t.Fatalf("expected output 'both', got %q", cfg.Output.Format)
	}
	if cfg.Report.ErrorRate != 0.1 {
		t.Fatalf("expected ErrorRate=0.1, got %v", cfg.Report.ErrorRate)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected ShutdownTimeout=5s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	os.Setenv("VARTANI_MAX_EDIT_DISTANCE", "many")
	os.Setenv("VARTANI_ERROR_RATE", "lots")
	defer clearEnv(t)

	cfg := Load()

	if cfg.Engine.MaxEditDistance != 1 {
		t.Fatalf("expected fallback MaxEditDistance=1, got %d", cfg.Engine.MaxEditDistance)
	}
	if cfg.Report.ErrorRate != 0.045 {
		t.Fatalf("expected fallback ErrorRate=0.045, got %v", cfg.Report.ErrorRate)
	}
}

// --- Validation tests ---

func validConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	vocabPath := filepath.Join(dir, "vocabulary.yaml")
	if err := os.WriteFile(vocabPath, []byte("core_words:\n  - x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return Config{
		Mode:      "query",
		Connector: ConnectorConfig{Provider: "manifest", Path: "train.jsonl"},
		Engine: EngineConfig{
			VocabularyPath:  vocabPath,
			MaxEditDistance: 1,
		},
		Output: OutputConfig{Format: "csv", Path: "out.csv"},
		Report: ReportConfig{TargetCorpusSize: 175000, ErrorRate: 0.045},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error for valid config, got: %v", err)
	}
}

func TestValidate_BadMode(t *testing.T) {
	cfg := validConfig(t)
	cfg.Mode = "replay"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid mode")
	}
	if !strings.Contains(err.Error(), "mode") {
		t.Fatalf("expected error to mention 'mode', got: %v", err)
	}
}

func TestValidate_MissingManifestPath(t *testing.T) {
	cfg := validConfig(t)
	cfg.Connector.Path = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty manifest path")
	}
	if !strings.Contains(err.Error(), "VARTANI_MANIFEST") {
		t.Fatalf("expected error to mention 'VARTANI_MANIFEST', got: %v", err)
	}
}

func TestValidate_MissingVocabularyFile(t *testing.T) {
	cfg := validConfig(t)
	cfg.Engine.VocabularyPath = "/nonexistent/vocabulary.yaml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing vocabulary file")
	}
	if !strings.Contains(err.Error(), "vocabulary") {
		t.Fatalf("expected error to mention 'vocabulary', got: %v", err)
	}
}

func TestValidate_EmptyVocabularyPathAllowed(t *testing.T) {
	// Empty path means bundled defaults.
	cfg := validConfig(t)
	cfg.Engine.VocabularyPath = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error with empty vocabulary path, got: %v", err)
	}
}

func TestValidate_NegativeEditDistance(t *testing.T) {
	cfg := validConfig(t)
	cfg.Engine.MaxEditDistance = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative edit distance")
	}
	if !strings.Contains(err.Error(), "edit distance") {
		t.Fatalf("expected error to mention 'edit distance', got: %v", err)
	}
}

func TestValidate_BadOutputFormat(t *testing.T) {
	cfg := validConfig(t)
	cfg.Output.Format = "parquet"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid output format")
	}
	if !strings.Contains(err.Error(), "output format") {
		t.Fatalf("expected error to mention 'output format', got: %v", err)
	}
}

func TestValidate_BadErrorRate(t *testing.T) {
	cfg := validConfig(t)
	cfg.Report.ErrorRate = 1.5
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for error rate 1.5")
	}
	if !strings.Contains(err.Error(), "error rate") {
		t.Fatalf("expected error to mention 'error rate', got: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Mode = "loud"
	cfg.Engine.MaxEditDistance = -2
	cfg.Output.Format = "xml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple bad fields")
	}
	msg := err.Error()
	for _, want := range []string{"mode", "edit distance", "output format"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got: %v", want, msg)
		}
	}
}

// --- getenv helper tests ---

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		set      bool
		fallback int
		want     int
	}{
		{"empty uses fallback", "", false, 8, 8},
		{"valid int", "3", true, 8, 3},
		{"zero", "0", true, 8, 0},
		{"invalid falls back", "abc", true, 8, 8},
		{"negative", "-1", true, 8, -1},
	}

	const key = "VARTANI_TEST_GETENVINT"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}
			got := getenvInt(key, tt.fallback)
			if got != tt.want {
				t.Errorf("getenvInt(%q, %d) = %d, want %d", tt.envVal, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestVersion_IsSet(t *testing.T) {
	if Version == "" {
		t.Fatal("expected non-empty Version constant")
	}
}
