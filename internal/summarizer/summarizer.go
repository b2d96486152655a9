package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

func (s *implSummarizer) Summarize(ctx context.Context, text, customPrompt string) (string, error) {
	chunks := SplitChunks(text, s.chunkWords)
	if customPrompt != "" {
		s.logger.Info(ctx, "Using custom prompt for %d chunks", len(chunks))
	}

	var script strings.Builder
	for _, chunk := range chunks {
		s.logger.Info(ctx, "[%d/%d] Summarizing chunk (%d words)", chunk.Index+1, len(chunks), len(chunk.Words))

		resp, err := s.client.Complete(ctx, BuildPrompt(customPrompt, chunk), s.maxTokens)
		if err != nil {
			if errors.Is(err, ErrRequestValidation) {
				s.logger.Error(ctx, "Error with summarization request on chunk %d: %v", chunk.Index+1, err)
				s.logger.Warn(ctx, "Skipping remaining %d chunks; keeping partial script", len(chunks)-chunk.Index-1)
				break
			}
			return "", fmt.Errorf("summarize chunk %d: %w", chunk.Index+1, err)
		}

		script.WriteString(strings.TrimSpace(resp))
		script.WriteString("\n")
	}

	return script.String(), nil
}
