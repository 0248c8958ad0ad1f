// Package config loads and validates the rootsignal configuration: system
// settings from rootsignal.yaml, region definitions from regions.yaml, and
// secrets from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/models"
)

// Config is the fully loaded, validated configuration.
type Config struct {
	System  SystemConfig
	Regions map[string]*Region
}

// SystemConfig groups system-wide settings.
type SystemConfig struct {
	// Anthropic model used for extraction and chat.
	ExtractionModel string `yaml:"extraction_model"`
	// OpenAI model used for embeddings.
	EmbeddingModel string `yaml:"embedding_model"`
	// Embedding vector dimensionality; fixed across a run.
	EmbeddingDims int `yaml:"embedding_dims"`
	// Concurrency for scrape fan-out within a phase.
	ScrapeWorkers int `yaml:"scrape_workers"`
	// Per-call timeouts.
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
	LLMTimeout      time.Duration `yaml:"llm_timeout"`
	EmbedderTimeout time.Duration `yaml:"embedder_timeout"`
	// Search provider endpoint (SearXNG-compatible) and social provider
	// endpoint (Apify-compatible), both optional.
	SearchEndpoint string `yaml:"search_endpoint"`
	SocialEndpoint string `yaml:"social_endpoint"`
	// Outbound request rate limit per second against any single provider.
	FetchRatePerSec float64 `yaml:"fetch_rate_per_sec"`
	// Blocked source URL patterns (substring match).
	BlockedPatterns []string `yaml:"blocked_patterns"`
}

// DedupThresholds carries the cosine similarity cutoffs for the dedup
// engine. Configurable per run but never 1.0.
type DedupThresholds struct {
	CrossSource float64 `yaml:"cross_source"`
	SameSource  float64 `yaml:"same_source"`
	IntraRun    float64 `yaml:"intra_run"`
	// ResponseLink is the cutoff for synthesis RESPONDS_TO mapping.
	ResponseLink float64 `yaml:"response_link"`
}

// SeedSource is a curated starting point for an empty region.
type SeedSource struct {
	Value    string `yaml:"value"`
	Strategy string `yaml:"strategy"`
	Platform string `yaml:"platform"`
}

// Region bounds one pipeline deployment geographically and fiscally.
type Region struct {
	Slug      string  `yaml:"slug"`
	Name      string  `yaml:"name"`
	CenterLat float64 `yaml:"center_lat"`
	CenterLng float64 `yaml:"center_lng"`
	RadiusKm  float64 `yaml:"radius_km"`

	// DailyBudgetCents caps spend per run; 0 disables the cap.
	DailyBudgetCents int64 `yaml:"daily_budget_cents"`
	// MaxWebQueriesPerRun caps paid search queries scheduled per run.
	MaxWebQueriesPerRun int `yaml:"max_web_queries_per_run"`

	Thresholds DedupThresholds `yaml:"thresholds"`
	Seeds      []SeedSource    `yaml:"seeds"`

	// PromptContext is prepended to the extraction system prompt so the LLM
	// knows what counts as local.
	PromptContext string `yaml:"prompt_context"`
}

// BoundingBox derives the region's operating box from center + radius.
func (r *Region) BoundingBox() models.BoundingBox {
	return models.BoxAround(r.CenterLat, r.CenterLng, r.RadiusKm)
}

// Validate checks a region definition is usable.
func (r *Region) Validate() error {
	if r.Slug == "" {
		return fmt.Errorf("region missing slug")
	}
	if r.CenterLat < -90 || r.CenterLat > 90 || r.CenterLng < -180 || r.CenterLng > 180 {
		return fmt.Errorf("region %s has invalid center (%v, %v)", r.Slug, r.CenterLat, r.CenterLng)
	}
	if r.RadiusKm <= 0 {
		return fmt.Errorf("region %s has non-positive radius", r.Slug)
	}
	for _, t := range []float64{r.Thresholds.CrossSource, r.Thresholds.SameSource, r.Thresholds.IntraRun} {
		if t <= 0 || t >= 1 {
			return fmt.Errorf("region %s dedup threshold %v out of (0,1)", r.Slug, t)
		}
	}
	if r.DailyBudgetCents < 0 {
		return fmt.Errorf("region %s has negative budget", r.Slug)
	}
	return nil
}

// Region returns the named region or an error listing what exists.
func (c *Config) Region(slug string) (*Region, error) {
	r, ok := c.Regions[slug]
	if !ok {
		known := make([]string, 0, len(c.Regions))
		for k := range c.Regions {
			known = append(known, k)
		}
		return nil, fmt.Errorf("unknown region %q (configured: %v)", slug, known)
	}
	return r, nil
}
