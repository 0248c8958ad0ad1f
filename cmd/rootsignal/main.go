// RootSignal server - scrapes community signal sources per region and
// serves the operator HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fourthplaces/rootsignal/pkg/api"
	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/database"
	"github.com/fourthplaces/rootsignal/pkg/fetch"
	"github.com/fourthplaces/rootsignal/pkg/llm"
	"github.com/fourthplaces/rootsignal/pkg/metrics"
	"github.com/fourthplaces/rootsignal/pkg/pipeline"
	"github.com/fourthplaces/rootsignal/pkg/version"

	"github.com/gin-gonic/gin"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	gin.SetMode(getEnv("GIN_MODE", "release"))

	slog.Info("Starting RootSignal", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	cfg, err := config.Initialize(*configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, schema ready")

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	llmClient, err := llm.NewAnthropicClient(anthropicKey, cfg.System.ExtractionModel, cfg.System.LLMTimeout)
	if err != nil {
		log.Fatalf("Failed to build LLM client: %v", err)
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	embedder, err := llm.NewOpenAIEmbedder(openaiKey, cfg.System.EmbeddingModel, cfg.System.EmbeddingDims, cfg.System.EmbedderTimeout)
	if err != nil {
		log.Fatalf("Failed to build embedder: %v", err)
	}

	fetcher := fetch.NewHTTPFetcher(fetch.Config{
		Timeout:        cfg.System.HTTPTimeout,
		RatePerSec:     cfg.System.FetchRatePerSec,
		UserAgent:      version.Full(),
		SearchEndpoint: cfg.System.SearchEndpoint,
		SocialEndpoint: cfg.System.SocialEndpoint,
		SearchAPIKey:   os.Getenv("SEARCH_API_KEY"),
		SocialAPIKey:   os.Getenv("SOCIAL_API_KEY"),
	})

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	runner := pipeline.NewRunner(cfg, dbClient, llmClient, embedder, fetcher, m)
	server := api.NewServer(cfg, dbClient, runner, registry)

	if err := server.Run(":" + httpPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
