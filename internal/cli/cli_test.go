package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/internal/processor"
	"github.com/nguyentantai21042004/paper2podcast/internal/source"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		args    []string
		want    Options
		wantErr bool
	}{
		{
			name: "input only",
			args: []string{"papers/"},
			want: Options{Input: "papers/"},
		},
		{
			name: "flags after input",
			args: []string{"paper.pdf", "--custom-prompt", "Make it funny", "--docx"},
			want: Options{Input: "paper.pdf", CustomPrompt: "Make it funny", Docx: true},
		},
		{
			name: "flags before input",
			args: []string{"--config", "my.yaml", "--watch", "inbox"},
			want: Options{Input: "inbox", ConfigPath: "my.yaml", Watch: true},
		},
		{
			name: "remote url",
			mode: ModeRemote,
			args: []string{"https://arxiv.org/abs/1234.5678", "--custom-prompt=short"},
			want: Options{Input: "https://arxiv.org/abs/1234.5678", CustomPrompt: "short"},
		},
		{
			name:    "watch not available remotely",
			mode:    ModeRemote,
			args:    []string{"https://arxiv.org/abs/1", "--watch"},
			wantErr: true,
		},
		{
			name:    "missing input",
			args:    []string{"--docx"},
			wantErr: true,
		},
		{
			name:    "two inputs",
			args:    []string{"a.pdf", "b.pdf"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.mode, tt.args, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

type fakeProcessor struct {
	fail  map[string]bool
	names []string
}

func (f *fakeProcessor) Process(ctx context.Context, doc source.Document) processor.Result {
	f.names = append(f.names, doc.Name)
	res := processor.Result{Source: doc.Name, Stage: processor.StageDone}
	if f.fail[doc.Name] {
		res.Stage = processor.StageResolved
		res.Err = os.ErrInvalid
	}
	return res
}

func (f *fakeProcessor) ProcessAll(ctx context.Context, docs []source.Document) []processor.Result {
	var results []processor.Result
	for _, d := range docs {
		results = append(results, f.Process(ctx, d))
	}
	return results
}

func newTestApp(proc processor.Processor) *App {
	cfg := config.Default()
	log := logger.Discard()
	return newApp(cfg, log, source.New(cfg, log), proc)
}

func TestRunLocal(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.pdf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	a, b := filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf")

	tests := []struct {
		name      string
		input     string
		fail      map[string]bool
		wantCode  int
		wantNames []string
	}{
		{"directory", dir, nil, 0, []string{a, b}},
		{"single file", a, nil, 0, []string{a}},
		{"one document fails", dir, map[string]bool{a: true}, 1, []string{a, b}},
		{"invalid input", filepath.Join(dir, "notes.txt"), nil, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &fakeProcessor{fail: tt.fail}
			code := newTestApp(proc).RunLocal(context.Background(), Options{Input: tt.input})
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if len(proc.names) != len(tt.wantNames) {
				t.Fatalf("processed %v, want %v", proc.names, tt.wantNames)
			}
			for i := range tt.wantNames {
				if proc.names[i] != tt.wantNames[i] {
					t.Errorf("processed[%d] = %s, want %s", i, proc.names[i], tt.wantNames[i])
				}
			}
		})
	}
}

func TestRunLocalWatchRequiresDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.pdf")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	proc := &fakeProcessor{}
	code := newTestApp(proc).RunLocal(context.Background(), Options{Input: file, Watch: true})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if len(proc.names) != 0 {
		t.Errorf("file should not be processed before --watch is rejected, got %v", proc.names)
	}
}

func TestRunLocalRejectsURL(t *testing.T) {
	proc := &fakeProcessor{}
	code := newTestApp(proc).RunLocal(context.Background(), Options{Input: "https://arxiv.org/abs/1234.5678"})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(proc.names) != 0 {
		t.Errorf("URL should not be processed by the local entry point, got %v", proc.names)
	}
}

func TestRunLocalBuildsPipelineOnlyForWork(t *testing.T) {
	dir := t.TempDir()
	empty := t.TempDir()
	pdf := filepath.Join(dir, "a.pdf")
	if err := os.WriteFile(pdf, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		input     string
		wantCode  int
		wantBuild bool
	}{
		{"missing path", filepath.Join(dir, "missing.pdf"), 0, false},
		{"not a pdf", filepath.Join(dir, "notes.txt"), 0, false},
		{"empty directory", empty, 0, false},
		{"pdf with unusable client", pdf, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built := false
			app := newTestApp(nil)
			app.build = func(ctx context.Context) (processor.Processor, error) {
				built = true
				return nil, errors.New("openai api key missing")
			}

			if code := app.RunLocal(context.Background(), Options{Input: tt.input}); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if built != tt.wantBuild {
				t.Errorf("pipeline built = %v, want %v", built, tt.wantBuild)
			}
		})
	}
}

func TestMainInvalidInputWithoutCredential(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("OPENAI_API_KEY", "")

	if code := Main(ModeLocal, []string{filepath.Join(dir, "does-not-exist")}); code != 0 {
		t.Errorf("Main() = %d, want 0", code)
	}
	if code := Main(ModeRemote, []string{"https://example.com/paper"}); code != 1 {
		t.Errorf("Main() remote = %d, want 1", code)
	}
}

func TestRunRemoteRejectsUnsupportedURL(t *testing.T) {
	proc := &fakeProcessor{}
	code := newTestApp(proc).RunRemote(context.Background(), Options{Input: "https://example.com/paper"})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if len(proc.names) != 0 {
		t.Errorf("nothing should be processed, got %v", proc.names)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Output = filepath.Join(root, "out", "podcasts")
	cfg.Remote.DownloadDir = filepath.Join(root, "downloads")

	if err := ensureDirectories(cfg); err != nil {
		t.Fatalf("ensureDirectories() error = %v", err)
	}
	for _, dir := range []string{cfg.Paths.Output, cfg.Remote.DownloadDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("%s not created: %v", dir, err)
		}
	}
}
