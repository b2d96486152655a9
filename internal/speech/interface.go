package speech

import "context"

// Synthesizer renders a podcast script to an audio file.
type Synthesizer interface {
	// Synthesize blocks until outPath has been written.
	Synthesize(ctx context.Context, script, outPath string) error
}

// Voice is one voice offered by an engine.
type Voice struct {
	ID     string
	Name   string
	Gender string
}

// Params controls a single render.
type Params struct {
	// Rate is the speaking rate in words per minute.
	Rate int
	// Volume is within 0.0-1.0.
	Volume float64
	// VoiceID selects a voice; empty means the engine default.
	VoiceID string
}

// Engine is a text-to-speech backend.
type Engine interface {
	Voices(ctx context.Context) ([]Voice, error)
	Render(ctx context.Context, text string, params Params, outPath string) error
}

// EngineFactory builds a fresh Engine. Synthesizer calls it once per document
// so no engine state is shared between documents.
type EngineFactory func() Engine
