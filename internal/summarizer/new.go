package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
)

type implSummarizer struct {
	client     Client
	chunkWords int
	maxTokens  int
	logger     logger.Logger
}

// New creates a Summarizer that sends chunks of cfg.ChunkWords words to client.
func New(cfg config.LLMConfig, client Client, log logger.Logger) Summarizer {
	chunkWords := cfg.ChunkWords
	if chunkWords <= 0 {
		chunkWords = DefaultChunkWords
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &implSummarizer{
		client:     client,
		chunkWords: chunkWords,
		maxTokens:  maxTokens,
		logger:     log,
	}
}

// NewClient builds the provider client named in cfg with its API key.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAIClient(cfg)
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
