package domain

import "context"

// CompletionClient sends one prompt to a language model and returns its completion.
type CompletionClient interface {
	// Complete performs a single model call. Failures are reported as a
	// *DomainError with code ErrLLMServiceError.
	Complete(ctx context.Context, prompt string) (string, error)
}
