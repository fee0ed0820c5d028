package llm

import (
	"context"
	"errors"
	"time"

	"quiz-mcq/internal/domain"
	"quiz-mcq/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// CompletionClient implements domain.CompletionClient on top of a langchaingo model.
// Every call uses the same sampling temperature and token budget and is made
// exactly once; there is no retry.
type CompletionClient struct {
	model       llms.Model
	modelName   string
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

// NewCompletionClient wraps model. A zero timeout leaves the call bounded only by
// the caller's context.
func NewCompletionClient(model llms.Model, modelName string, temperature float64, maxTokens int, timeout time.Duration) *CompletionClient {
	return &CompletionClient{
		model:       model,
		modelName:   modelName,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}
}

// Complete sends prompt as a single user message and returns the completion text.
func (c *CompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	completion, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.String("model", c.modelName), zap.Error(err))
		} else {
			l.Error("Failed to get response from LLM", zap.String("model", c.modelName), zap.Error(err))
		}
		return "", domain.NewLLMServiceError(err)
	}

	l.Debug("Raw LLM response received",
		zap.String("model", c.modelName),
		zap.Duration("duration", time.Since(start)),
		zap.Int("length", len(completion)),
		zap.String("raw_response", completion),
	)
	return completion, nil
}

var _ domain.CompletionClient = (*CompletionClient)(nil)
