package speech

import (
	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/pkg/executor"
)

type implSynthesizer struct {
	newEngine     EngineFactory
	rate          int
	volume        float64
	voiceHint     string
	stripMarkdown bool
	logger        logger.Logger
}

// New creates a Synthesizer backed by espeak-ng and ffmpeg.
func New(cfg config.SpeechConfig, exec executor.Executor, log logger.Logger) Synthesizer {
	factory := func() Engine {
		return NewEspeakEngine(exec, cfg.BinaryPath, cfg.FFmpegPath, cfg.Language)
	}
	return NewWithEngine(cfg, factory, log)
}

// NewWithEngine creates a Synthesizer that builds engines with factory.
func NewWithEngine(cfg config.SpeechConfig, factory EngineFactory, log logger.Logger) Synthesizer {
	rate := cfg.Rate
	if rate <= 0 {
		rate = 150
	}
	volume := cfg.VolumeLevel()
	if volume < 0 || volume > 1 {
		volume = 1.0
	}
	hint := cfg.VoiceHint
	if hint == "" {
		hint = "female"
	}

	return &implSynthesizer{
		newEngine:     factory,
		rate:          rate,
		volume:        volume,
		voiceHint:     hint,
		stripMarkdown: cfg.StripMarkdownEnabled(),
		logger:        log,
	}
}
