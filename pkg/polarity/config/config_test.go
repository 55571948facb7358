package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/polarity/pkg/polarity/internalerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
train: data/train.csv
test: data/test.csv
truth: data/test_sentiment.csv
results: results.csv
accuracy: accuracy.txt
db: runs.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Train != "data/train.csv" || cfg.DB != "runs.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "train: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestValidateMissingPath(t *testing.T) {
	cfg := &Config{
		Train:   "a",
		Test:    "b",
		Truth:   "c",
		Results: "d",
		// Accuracy missing
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("missing accuracy path should fail validation")
	}
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidateDBOptional(t *testing.T) {
	cfg := &Config{Train: "a", Test: "b", Truth: "c", Results: "d", Accuracy: "e"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("db should be optional: %v", err)
	}
}
