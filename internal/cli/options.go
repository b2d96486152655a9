package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Mode selects which entry point is running.
type Mode int

const (
	// ModeLocal accepts a PDF file or a directory.
	ModeLocal Mode = iota
	// ModeRemote accepts only a supported URL.
	ModeRemote
)

func (m Mode) program() string {
	if m == ModeRemote {
		return "paper2podcast-url"
	}
	return "paper2podcast"
}

// Options are the parsed command-line arguments.
type Options struct {
	Input        string
	CustomPrompt string
	ConfigPath   string
	Watch        bool
	Docx         bool
}

// ParseArgs parses args (without the program name). Flags may appear before
// or after the positional input.
func ParseArgs(mode Mode, args []string, stderr io.Writer) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet(mode.program(), flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.CustomPrompt, "custom-prompt", "", "replace the built-in podcast prompt")
	fs.StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file (default config.yaml if present)")
	fs.BoolVar(&opts.Docx, "docx", false, "also write the script as a .docx document")
	if mode == ModeLocal {
		fs.BoolVar(&opts.Watch, "watch", false, "keep watching the input directory for new PDFs")
	}
	fs.Usage = func() {
		arg, what := "<input_path>", "a PDF file or a directory of PDF files"
		if mode == ModeRemote {
			arg, what = "<url>", "an arXiv, IEEE Xplore or ACM paper URL, or an arXiv feed"
		}
		fmt.Fprintf(stderr, "Usage: %s %s [flags]\n\n%s is %s.\n\n", mode.program(), arg, arg, what)
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return Options{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(positional) != 1 {
		fs.Usage()
		return Options{}, errors.New("exactly one input argument is required")
	}
	opts.Input = positional[0]
	return opts, nil
}
