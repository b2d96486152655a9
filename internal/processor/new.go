package processor

import (
	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/extractor"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/internal/speech"
	"github.com/nguyentantai21042004/paper2podcast/internal/summarizer"
)

type implProcessor struct {
	cfg         *config.Config
	extractor   extractor.Extractor
	summarizer  summarizer.Summarizer
	synthesizer speech.Synthesizer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, ext extractor.Extractor, sum summarizer.Summarizer, synth speech.Synthesizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		extractor:   ext,
		summarizer:  sum,
		synthesizer: synth,
		logger:      log,
	}
}
