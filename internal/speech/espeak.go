package speech

import (
	"context"
	"fmt"
	"math"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/paper2podcast/pkg/executor"
)

const (
	scriptFile = "script.txt"
	wavFile    = "speech.wav"
	// espeak-ng amplitude range is 0-200
	maxAmplitude = 200
)

type espeakEngine struct {
	exec     executor.Executor
	binary   string
	ffmpeg   string
	language string
}

// NewEspeakEngine returns an Engine that renders with espeak-ng and encodes
// non-WAV targets with ffmpeg.
func NewEspeakEngine(exec executor.Executor, binary, ffmpeg, language string) Engine {
	if binary == "" {
		binary = "espeak-ng"
	}
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if language == "" {
		language = "en"
	}
	return &espeakEngine{exec: exec, binary: binary, ffmpeg: ffmpeg, language: language}
}

// Voices lists espeak-ng voice variants; their names carry the gender
// ("female1", "Andrea"...), which is what voice selection matches on.
func (e *espeakEngine) Voices(ctx context.Context) ([]Voice, error) {
	out, err := e.exec.Execute(ctx, e.binary, "--voices=variant")
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	return parseVoices(out), nil
}

// parseVoices reads the table printed by `espeak-ng --voices=variant`:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  variant          --/F      female1            !v/f1
func parseVoices(out string) []Voice {
	var voices []Voice
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 || fields[0] == "Pty" {
			continue
		}

		fileIdx := -1
		for i := len(fields) - 1; i >= 4; i-- {
			if strings.Contains(fields[i], "/") {
				fileIdx = i
				break
			}
		}
		if fileIdx < 0 {
			continue
		}

		gender := ""
		if _, g, ok := strings.Cut(fields[2], "/"); ok {
			gender = g
		}

		voices = append(voices, Voice{
			ID:     path.Base(fields[fileIdx]),
			Name:   strings.Join(fields[3:fileIdx], " "),
			Gender: gender,
		})
	}
	return voices
}

// Render writes text to outPath. It runs in a private temp dir so that
// concurrent renders never share files.
func (e *espeakEngine) Render(ctx context.Context, text string, params Params, outPath string) error {
	workDir, err := os.MkdirTemp("", "paper2podcast-tts-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	if err := os.WriteFile(filepath.Join(workDir, scriptFile), []byte(text), 0644); err != nil {
		return fmt.Errorf("write script: %w", err)
	}

	voice := e.language
	if params.VoiceID != "" {
		voice = e.language + "+" + params.VoiceID
	}

	args := []string{
		"-v", voice,
		"-s", strconv.Itoa(params.Rate),
		"-a", strconv.Itoa(amplitude(params.Volume)),
		"-f", scriptFile,
		"-w", wavFile,
	}
	if _, err := e.exec.ExecuteInDir(ctx, workDir, e.binary, args...); err != nil {
		return fmt.Errorf("espeak-ng render: %w", err)
	}

	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if strings.EqualFold(filepath.Ext(outPath), ".wav") {
		return copyFile(filepath.Join(workDir, wavFile), absOut)
	}

	// -y: overwrite existing output
	// -q:a 2: VBR ~190 kbps
	encodeArgs := []string{
		"-y",
		"-i", wavFile,
		"-codec:a", "libmp3lame",
		"-q:a", "2",
		absOut,
	}
	if _, err := e.exec.ExecuteInDir(ctx, workDir, e.ffmpeg, encodeArgs...); err != nil {
		return fmt.Errorf("ffmpeg encode: %w", err)
	}
	return nil
}

func amplitude(volume float64) int {
	return int(math.Round(math.Max(0, math.Min(1, volume)) * maxAmplitude))
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
