// Package config centralises runtime configuration: environment variables
// first, optionally overridden by a YAML config file.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything a generation run needs.
type Config struct {
	Logger *log.Logger

	// WorkbookPath is the input .xlsx/.xls schedule workbook.
	WorkbookPath string `yaml:"workbook"`

	// Sheets restricts the run to these sheet names; empty means all.
	Sheets []string `yaml:"sheets"`

	OutputDir string `yaml:"output_dir"`

	// ArchivePath, when set, zips the output directory there.
	ArchivePath string `yaml:"archive"`

	StoreDir string `yaml:"store_dir"`
}

// Load builds the Config from the environment, then applies the YAML file at
// path on top when path is non-empty.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Logger:       log.New(os.Stdout, "", log.LstdFlags),
		WorkbookPath: os.Getenv("TIMECARD_WORKBOOK"),
		OutputDir:    getEnvOrDefault("TIMECARD_OUTPUT_DIR", "out"),
		ArchivePath:  os.Getenv("TIMECARD_ARCHIVE"),
		StoreDir:     getEnvOrDefault("TIMECARD_STORE_DIR", "data/batches"),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
