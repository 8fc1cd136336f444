package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"google.golang.org/genai"

	"feedback-analyzer/logger"
)

// ErrUnavailable is returned once the scorer has permanently given up
// initializing its model for this process lifetime.
var ErrUnavailable = errors.New("sentiment scorer unavailable")

const maxInitAttempts = 3

const SYSTEM_INSTRUCTION = `
You are a sentiment classifier for survey feedback responses.
Classify the provided text and respond with a valid JSON object with two keys:
1. label: either "positive" or "negative".
2. score: a number between 0 and 1 expressing your confidence in the label.
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
`

// GenaiScorer scores text with a Gemini model. The client is created
// lazily and shared process-wide; concurrent callers block on the same
// initialization instead of creating redundant clients. After
// maxInitAttempts failed initializations the scorer stays unavailable
// for the rest of the process lifetime.
type GenaiScorer struct {
	model   string
	timeout time.Duration

	mu       sync.Mutex
	client   *genai.Client
	attempts int
}

func NewGenaiScorer(model string, timeout time.Duration) *GenaiScorer {
	return &GenaiScorer{model: model, timeout: timeout}
}

func (s *GenaiScorer) getClient(ctx context.Context) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	if s.attempts >= maxInitAttempts {
		return nil, ErrUnavailable
	}
	s.attempts++

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.ErrorWithFields("failed to initialize sentiment model client", logger.Fields{
			"error":   err.Error(),
			"attempt": s.attempts,
			"model":   s.model,
		})
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	s.client = client
	logger.InfoWithFields("sentiment model client initialized", logger.Fields{"model": s.model})
	return client, nil
}

// Classify sends the text to the model and parses the JSON verdict.
func (s *GenaiScorer) Classify(ctx context.Context, text string) (Result, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return Result{}, fmt.Errorf("sentiment classification failed: %w", err)
	}

	var result Result
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		return Result{}, fmt.Errorf("failed to parse sentiment response: %w", err)
	}
	if result.Label != LabelPositive && result.Label != LabelNegative {
		return Result{}, fmt.Errorf("unexpected sentiment label: %q", result.Label)
	}
	if result.Score < 0 || result.Score > 1 {
		return Result{}, fmt.Errorf("sentiment score out of range: %v", result.Score)
	}
	return result, nil
}
