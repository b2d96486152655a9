package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/extractor"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/internal/source"
	"github.com/nguyentantai21042004/paper2podcast/internal/summarizer"
)

type fakeExtractor struct {
	titles map[string]string
	fail   map[string]bool
	calls  []string
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) (string, string, error) {
	f.calls = append(f.calls, path)
	if f.fail[path] {
		return "", "", &extractor.ExtractionError{Path: path, Err: errors.New("malformed PDF")}
	}
	return "text of " + path, f.titles[path], nil
}

type fakeSummarizer struct {
	script  string
	err     error
	prompts []string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text, customPrompt string) (string, error) {
	f.prompts = append(f.prompts, customPrompt)
	if f.err != nil {
		return "", f.err
	}
	if f.script != "" {
		return f.script, nil
	}
	return "script for " + text + "\n", nil
}

type fakeSynthesizer struct {
	err     error
	scripts map[string]string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, script, outPath string) error {
	if f.err != nil {
		return f.err
	}
	if f.scripts == nil {
		f.scripts = map[string]string{}
	}
	f.scripts[outPath] = script
	return os.WriteFile(outPath, []byte("audio"), 0644)
}

func newTestProcessor(t *testing.T, ext *fakeExtractor, sum *fakeSummarizer, synth *fakeSynthesizer) (Processor, string) {
	t.Helper()
	out := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Output = out
	return New(cfg, ext, sum, synth, logger.Discard()), out
}

func TestProcessWritesArtifacts(t *testing.T) {
	ext := &fakeExtractor{titles: map[string]string{"paper.pdf": "Understanding Distributed Consensus"}}
	synth := &fakeSynthesizer{}
	proc, out := newTestProcessor(t, ext, &fakeSummarizer{}, synth)

	res := proc.Process(context.Background(), source.Local("paper.pdf"))
	if !res.OK() {
		t.Fatalf("Process() = %+v", res)
	}

	wantText := filepath.Join(out, "Understanding Distributed Consensus.txt")
	wantAudio := filepath.Join(out, "Understanding Distributed Consensus.mp3")
	if res.Paths.Text != wantText || res.Paths.Audio != wantAudio {
		t.Errorf("Paths = %+v", res.Paths)
	}

	data, err := os.ReadFile(wantText)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "script for text of paper.pdf\n" {
		t.Errorf("script file = %q", data)
	}
	if synth.scripts[wantAudio] != string(data) {
		t.Errorf("synthesized script = %q, want the persisted script", synth.scripts[wantAudio])
	}
}

func TestProcessTitleFallback(t *testing.T) {
	proc, out := newTestProcessor(t, &fakeExtractor{}, &fakeSummarizer{}, &fakeSynthesizer{})

	res := proc.Process(context.Background(), source.Local("/tmp/paper7.pdf"))
	if !res.OK() {
		t.Fatalf("Process() = %+v", res)
	}
	if res.Title != "podcast_paper7.pdf" {
		t.Errorf("Title = %q", res.Title)
	}
	if _, err := os.Stat(filepath.Join(out, "podcast_paper7.pdf.mp3")); err != nil {
		t.Errorf("audio missing: %v", err)
	}
}

func TestProcessAllRunsInOrderAndIsolatesFailures(t *testing.T) {
	ext := &fakeExtractor{
		titles: map[string]string{"a.pdf": "A", "b.pdf": "B", "c.pdf": "C"},
		fail:   map[string]bool{"b.pdf": true},
	}
	proc, out := newTestProcessor(t, ext, &fakeSummarizer{}, &fakeSynthesizer{})

	docs := []source.Document{source.Local("a.pdf"), source.Local("b.pdf"), source.Local("c.pdf")}
	results := proc.ProcessAll(context.Background(), docs)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if got := ext.calls; len(got) != 3 || got[0] != "a.pdf" || got[1] != "b.pdf" || got[2] != "c.pdf" {
		t.Errorf("extract order = %v", got)
	}
	if !results[0].OK() || !results[2].OK() {
		t.Errorf("a and c should succeed: %+v / %+v", results[0], results[2])
	}
	if results[1].Kind() != KindExtraction || results[1].Stage != StageResolved {
		t.Errorf("b: kind %q stage %s, want extraction after resolved", results[1].Kind(), results[1].Stage)
	}
	if Failed(results) != 1 {
		t.Errorf("Failed() = %d, want 1", Failed(results))
	}
	if _, err := os.Stat(filepath.Join(out, "C.txt")); err != nil {
		t.Errorf("C.txt missing: %v", err)
	}
}

func TestProcessPartialScriptStillPersisted(t *testing.T) {
	// the summarizer stopped after a rejected chunk and kept chunk 1
	sum := &fakeSummarizer{script: "summary 1\n"}
	synth := &fakeSynthesizer{}
	proc, out := newTestProcessor(t, &fakeExtractor{titles: map[string]string{"p.pdf": "Long Paper"}}, sum, synth)

	res := proc.Process(context.Background(), source.Local("p.pdf"))
	if !res.OK() {
		t.Fatalf("Process() = %+v", res)
	}
	data, _ := os.ReadFile(filepath.Join(out, "Long Paper.txt"))
	if string(data) != "summary 1\n" {
		t.Errorf("script = %q", data)
	}
	if synth.scripts[filepath.Join(out, "Long Paper.mp3")] != "summary 1\n" {
		t.Error("audio not synthesized from partial script")
	}
}

func TestProcessFailures(t *testing.T) {
	downloadErr := &source.DownloadError{URL: "https://arxiv.org/pdf/1.pdf", StatusCode: 404}

	tests := []struct {
		name      string
		doc       source.Document
		sum       *fakeSummarizer
		synth     *fakeSynthesizer
		badOutput bool
		wantKind  ErrorKind
		wantStage Stage
	}{
		{
			name: "download",
			doc: source.Remote("https://arxiv.org/abs/1", func(ctx context.Context) (string, error) {
				return "", downloadErr
			}),
			wantKind:  KindDownload,
			wantStage: StagePending,
		},
		{
			name:      "summarizer",
			doc:       source.Local("p.pdf"),
			sum:       &fakeSummarizer{err: errors.New("connection reset")},
			wantKind:  KindOther,
			wantStage: StageExtracted,
		},
		{
			name:      "unwritable output",
			doc:       source.Local("p.pdf"),
			badOutput: true,
			wantKind:  KindFilesystem,
			wantStage: StageSummarized,
		},
		{
			name:      "synthesis",
			doc:       source.Local("p.pdf"),
			synth:     &fakeSynthesizer{err: errors.New("espeak-ng: not found")},
			wantKind:  KindOther,
			wantStage: StagePersisted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, synth := tt.sum, tt.synth
			if sum == nil {
				sum = &fakeSummarizer{}
			}
			if synth == nil {
				synth = &fakeSynthesizer{}
			}
			cfg := config.Default()
			cfg.Paths.Output = t.TempDir()
			if tt.badOutput {
				cfg.Paths.Output = filepath.Join(cfg.Paths.Output, "missing", "dir")
			}
			proc := New(cfg, &fakeExtractor{}, sum, synth, logger.Discard())

			res := proc.Process(context.Background(), tt.doc)
			if res.OK() {
				t.Fatal("Process() should fail")
			}
			if res.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q (err %v)", res.Kind(), tt.wantKind, res.Err)
			}
			if res.Stage != tt.wantStage {
				t.Errorf("Stage = %s, want %s", res.Stage, tt.wantStage)
			}
		})
	}
}

func TestProcessRemovesDownloads(t *testing.T) {
	downloaded := filepath.Join(t.TempDir(), "downloaded_paper.pdf")
	if err := os.WriteFile(downloaded, []byte("%PDF"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Paths.Output = t.TempDir()
	cfg.Remote.RemoveDownloads = true
	proc := New(cfg, &fakeExtractor{}, &fakeSummarizer{}, &fakeSynthesizer{}, logger.Discard())

	doc := source.Remote("https://arxiv.org/abs/1", func(ctx context.Context) (string, error) {
		return downloaded, nil
	})
	if res := proc.Process(context.Background(), doc); !res.OK() {
		t.Fatalf("Process() = %+v", res)
	}
	if _, err := os.Stat(downloaded); !os.IsNotExist(err) {
		t.Errorf("downloaded file should be removed, stat err = %v", err)
	}
}

func TestProcessPassesCustomPrompt(t *testing.T) {
	sum := &fakeSummarizer{}
	cfg := config.Default()
	cfg.Paths.Output = t.TempDir()
	cfg.LLM.CustomPrompt = "Explain it to a child."
	proc := New(cfg, &fakeExtractor{}, sum, &fakeSynthesizer{}, logger.Discard())

	proc.Process(context.Background(), source.Local("p.pdf"))
	if len(sum.prompts) != 1 || sum.prompts[0] != "Explain it to a child." {
		t.Errorf("prompts = %v", sum.prompts)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindNone},
		{&source.InvalidInputError{Input: "x"}, KindInvalidInput},
		{&source.UnsupportedURLError{URL: "https://example.com"}, KindUnsupportedURL},
		{errors.Join(errors.New("ctx"), summarizer.ErrRequestValidation), KindRequestValidation},
		{errors.New("boom"), KindOther},
	}

	for _, tt := range tests {
		if got := Classify(tt.err); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
