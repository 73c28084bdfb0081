// Package config holds runtime configuration, built from defaults plus
// environment overrides. A .env file next to the binary is honored.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDataFile is the bundled dataset path relative to the working dir
const DefaultDataFile = "data/financials.csv"

type Config struct {
	// DataFile is the dataset source: a local CSV/XLSX/HTML file or an
	// http(s) URL serving one.
	DataFile string `json:"data_file"`

	ResultsDir      string `json:"results_dir"`
	SaveTranscripts bool   `json:"save_transcripts"`

	// PctPrecision is the number of decimal places for percentage output
	PctPrecision int `json:"pct_precision"`

	HTTPTimeout time.Duration `json:"http_timeout"`

	Debug bool `json:"debug"`
}

// DefaultConfig builds the configuration from defaults, a .env file if one
// exists, and environment variables.
func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		DataFile:        filepath.Join(currentDir, filepath.FromSlash(DefaultDataFile)),
		ResultsDir:      filepath.Join(currentDir, "results"),
		SaveTranscripts: true,
		PctPrecision:    2,
		HTTPTimeout:     30 * time.Second,
		Debug:           false,
	}

	_ = godotenv.Load()
	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("FINCHAT_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("FINCHAT_RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv("FINCHAT_SAVE_TRANSCRIPTS"); v != "" {
		c.SaveTranscripts = parseBool(v, c.SaveTranscripts)
	}
	if v := os.Getenv("FINCHAT_PCT_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 10 {
			c.PctPrecision = n
		}
	}
	if v := os.Getenv("FINCHAT_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.HTTPTimeout = d
		}
	}
	if v := os.Getenv("FINCHAT_DEBUG"); v != "" {
		c.Debug = parseBool(v, c.Debug)
	}
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

// EnsureDirectories creates the directories the app writes into
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.ResultsDir, 0755)
}
