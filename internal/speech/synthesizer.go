package speech

import (
	"context"
	"fmt"
	"strings"
)

func (s *implSynthesizer) Synthesize(ctx context.Context, script, outPath string) error {
	engine := s.newEngine()

	params := Params{Rate: s.rate, Volume: s.volume}

	voices, err := engine.Voices(ctx)
	if err != nil {
		s.logger.Warn(ctx, "Could not list voices, using engine default: %v", err)
	}
	if v, ok := SelectVoice(voices, s.voiceHint); ok {
		params.VoiceID = v.ID
		s.logger.Debug(ctx, "Using voice %s (%s)", v.Name, v.ID)
	}

	text := script
	if s.stripMarkdown {
		text = PlainText(script)
	}

	if err := engine.Render(ctx, text, params, outPath); err != nil {
		return fmt.Errorf("synthesize %s: %w", outPath, err)
	}

	s.logger.Info(ctx, "Audio content written to file %s", outPath)
	return nil
}

// SelectVoice returns the first voice whose name contains hint, ignoring case.
func SelectVoice(voices []Voice, hint string) (Voice, bool) {
	hint = strings.ToLower(hint)
	for _, v := range voices {
		if strings.Contains(strings.ToLower(v.Name), hint) {
			return v, true
		}
	}
	return Voice{}, false
}
