package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataFile == "" {
		t.Fatalf("expected a default data file path")
	}
	if cfg.PctPrecision != 2 {
		t.Fatalf("expected default precision 2, got %d", cfg.PctPrecision)
	}
	if !cfg.SaveTranscripts {
		t.Fatalf("expected transcripts enabled by default")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINCHAT_DATA_FILE", "/tmp/other.csv")
	t.Setenv("FINCHAT_PCT_PRECISION", "4")
	t.Setenv("FINCHAT_HTTP_TIMEOUT", "5s")
	t.Setenv("FINCHAT_SAVE_TRANSCRIPTS", "false")
	t.Setenv("FINCHAT_DEBUG", "true")

	cfg := DefaultConfig()

	if cfg.DataFile != "/tmp/other.csv" {
		t.Fatalf("data file override not applied: %s", cfg.DataFile)
	}
	if cfg.PctPrecision != 4 {
		t.Fatalf("precision override not applied: %d", cfg.PctPrecision)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("timeout override not applied: %s", cfg.HTTPTimeout)
	}
	if cfg.SaveTranscripts {
		t.Fatalf("transcript override not applied")
	}
	if !cfg.Debug {
		t.Fatalf("debug override not applied")
	}
}

func TestEnvOverridesIgnoreInvalidValues(t *testing.T) {
	t.Setenv("FINCHAT_PCT_PRECISION", "many")
	t.Setenv("FINCHAT_HTTP_TIMEOUT", "soon")
	t.Setenv("FINCHAT_DEBUG", "perhaps")

	cfg := DefaultConfig()

	if cfg.PctPrecision != 2 {
		t.Fatalf("invalid precision should keep default, got %d", cfg.PctPrecision)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("invalid timeout should keep default, got %s", cfg.HTTPTimeout)
	}
	if cfg.Debug {
		t.Fatalf("invalid debug should keep default")
	}
}
