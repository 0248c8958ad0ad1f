package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Embedder maps text to fixed-length vectors. Dimensionality is fixed for
// the lifetime of a run; the dedup engine never compares across dimensions.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dims() int
}

// OpenAIEmbedder implements Embedder on the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client  openai.Client
	model   string
	dims    int
	timeout time.Duration
}

// NewOpenAIEmbedder builds an embedder for the given model and
// dimensionality.
func NewOpenAIEmbedder(apiKey, model string, dims int, timeout time.Duration) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if dims < 1 {
		return nil, fmt.Errorf("embedding dims must be positive, got %d", dims)
	}
	return &OpenAIEmbedder{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		dims:    dims,
		timeout: timeout,
	}, nil
}

// Dims returns the configured vector dimensionality.
func (e *OpenAIEmbedder) Dims() int { return e.dims }

// Embed embeds a single text.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds texts in one request, preserving order.
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Dimensions: openai.Int(int64(e.dims)),
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings.new: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(resp.Data), len(texts))
	}

	vecs := make([][]float32, len(resp.Data))
	for _, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for i, v := range d.Embedding {
			vec[i] = float32(v)
		}
		if len(vec) != e.dims {
			return nil, fmt.Errorf("embedder returned %d dims, configured %d", len(vec), e.dims)
		}
		vecs[d.Index] = vec
	}
	return vecs, nil
}
