package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// rootsignalYAML mirrors the rootsignal.yaml file structure.
type rootsignalYAML struct {
	System *SystemConfig `yaml:"system"`
}

// regionsYAML mirrors the regions.yaml file structure.
type regionsYAML struct {
	Regions []*Region `yaml:"regions"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load rootsignal.yaml and regions.yaml from configDir
//  2. Expand environment variables in both
//  3. Parse YAML into structs
//  4. Apply default values
//  5. Validate everything
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	sys, err := loadSystem(filepath.Join(configDir, "rootsignal.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load system configuration: %w", err)
	}

	regions, err := loadRegions(filepath.Join(configDir, "regions.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load regions: %w", err)
	}

	cfg := &Config{System: *sys, Regions: regions}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info("Configuration loaded", "regions", len(cfg.Regions))
	return cfg, nil
}

func loadSystem(path string) (*SystemConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("No rootsignal.yaml found, using defaults", "path", path)
			sys := defaultSystem()
			return &sys, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var parsed rootsignalYAML
	if err := yaml.Unmarshal(ExpandEnv(data), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	sys := defaultSystem()
	if parsed.System != nil {
		merged := *parsed.System
		applySystemDefaults(&merged, sys)
		sys = merged
	}
	return &sys, nil
}

func loadRegions(path string) (map[string]*Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var parsed regionsYAML
	if err := yaml.Unmarshal(ExpandEnv(data), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	regions := make(map[string]*Region, len(parsed.Regions))
	for _, r := range parsed.Regions {
		applyRegionDefaults(r)
		if _, exists := regions[r.Slug]; exists {
			return nil, fmt.Errorf("duplicate region slug %q", r.Slug)
		}
		regions[r.Slug] = r
	}
	return regions, nil
}

func defaultSystem() SystemConfig {
	return SystemConfig{
		ExtractionModel: "claude-sonnet-4-5",
		EmbeddingModel:  "text-embedding-3-small",
		EmbeddingDims:   1536,
		ScrapeWorkers:   8,
		HTTPTimeout:     30 * time.Second,
		LLMTimeout:      60 * time.Second,
		EmbedderTimeout: 30 * time.Second,
		FetchRatePerSec: 4,
	}
}

// applySystemDefaults fills zero-valued fields of cfg from defaults.
func applySystemDefaults(cfg *SystemConfig, defaults SystemConfig) {
	if cfg.ExtractionModel == "" {
		cfg.ExtractionModel = defaults.ExtractionModel
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = defaults.EmbeddingModel
	}
	if cfg.EmbeddingDims == 0 {
		cfg.EmbeddingDims = defaults.EmbeddingDims
	}
	if cfg.ScrapeWorkers == 0 {
		cfg.ScrapeWorkers = defaults.ScrapeWorkers
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaults.HTTPTimeout
	}
	if cfg.LLMTimeout == 0 {
		cfg.LLMTimeout = defaults.LLMTimeout
	}
	if cfg.EmbedderTimeout == 0 {
		cfg.EmbedderTimeout = defaults.EmbedderTimeout
	}
	if cfg.FetchRatePerSec == 0 {
		cfg.FetchRatePerSec = defaults.FetchRatePerSec
	}
}

func applyRegionDefaults(r *Region) {
	if r.MaxWebQueriesPerRun == 0 {
		r.MaxWebQueriesPerRun = 10
	}
	if r.Thresholds.CrossSource == 0 {
		r.Thresholds.CrossSource = 0.88
	}
	if r.Thresholds.SameSource == 0 {
		r.Thresholds.SameSource = 0.92
	}
	if r.Thresholds.IntraRun == 0 {
		r.Thresholds.IntraRun = 0.90
	}
	if r.Thresholds.ResponseLink == 0 {
		r.Thresholds.ResponseLink = 0.80
	}
}

func (c *Config) validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("no regions configured")
	}
	for _, r := range c.Regions {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	if c.System.ScrapeWorkers < 1 {
		return fmt.Errorf("scrape_workers must be at least 1")
	}
	if c.System.EmbeddingDims < 1 {
		return fmt.Errorf("embedding_dims must be at least 1")
	}
	return nil
}
