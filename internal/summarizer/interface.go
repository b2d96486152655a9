package summarizer

import "context"

// Summarizer turns cleaned paper text into a podcast script.
type Summarizer interface {
	// Summarize sends the text chunk by chunk and joins the responses in order.
	// customPrompt, when non-empty, replaces the whole request for every chunk.
	Summarize(ctx context.Context, text, customPrompt string) (string, error)
}

// Client is a stateless text-generation service.
type Client interface {
	// Complete returns the generated text for prompt, producing at most
	// maxTokens tokens. Rejected requests return an error wrapping
	// ErrRequestValidation.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
