package similarity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"google.golang.org/genai"

	"feedback-analyzer/logger"
)

// ErrEmbedderUnavailable is returned once the embedder has permanently
// given up initializing for this process lifetime; Cluster then runs on
// the Jaccard fallback only.
var ErrEmbedderUnavailable = errors.New("embedder unavailable")

const maxInitAttempts = 3

// Embedder maps a text span to a fixed-length vector. Optional: a nil
// Embedder degrades Cluster to word-overlap similarity.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// GenaiEmbedder embeds text with a Gemini embedding model. Same lazy,
// at-most-once client initialization discipline as the sentiment
// scorer.
type GenaiEmbedder struct {
	model   string
	timeout time.Duration

	mu       sync.Mutex
	client   *genai.Client
	attempts int
}

func NewGenaiEmbedder(model string, timeout time.Duration) *GenaiEmbedder {
	return &GenaiEmbedder{model: model, timeout: timeout}
}

func (e *GenaiEmbedder) getClient(ctx context.Context) (*genai.Client, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client != nil {
		return e.client, nil
	}
	if e.attempts >= maxInitAttempts {
		return nil, ErrEmbedderUnavailable
	}
	e.attempts++

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.ErrorWithFields("failed to initialize embedding model client", logger.Fields{
			"error":   err.Error(),
			"attempt": e.attempts,
			"model":   e.model,
		})
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	e.client = client
	logger.InfoWithFields("embedding model client initialized", logger.Fields{"model": e.model})
	return client, nil
}

// Embed returns the embedding vector for the given text.
func (e *GenaiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	client, err := e.getClient(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("embedding response is empty")
	}

	values := resp.Embeddings[0].Values
	vec := make([]float64, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return vec, nil
}
