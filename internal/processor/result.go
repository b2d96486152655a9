package processor

import (
	"errors"

	"github.com/nguyentantai21042004/paper2podcast/internal/artifact"
	"github.com/nguyentantai21042004/paper2podcast/internal/extractor"
	"github.com/nguyentantai21042004/paper2podcast/internal/source"
	"github.com/nguyentantai21042004/paper2podcast/internal/summarizer"
)

// Stage is the last pipeline step a document completed.
type Stage int

const (
	StagePending Stage = iota
	StageResolved
	StageExtracted
	StageSummarized
	StagePersisted
	StageSynthesized
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageResolved:
		return "resolved"
	case StageExtracted:
		return "extracted"
	case StageSummarized:
		return "summarized"
	case StagePersisted:
		return "persisted"
	case StageSynthesized:
		return "synthesized"
	case StageDone:
		return "done"
	default:
		return "pending"
	}
}

// ErrorKind names the class of a document failure.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindInvalidInput      ErrorKind = "invalid input"
	KindUnsupportedURL    ErrorKind = "unsupported url"
	KindDownload          ErrorKind = "download"
	KindExtraction        ErrorKind = "extraction"
	KindRequestValidation ErrorKind = "request validation"
	KindFilesystem        ErrorKind = "filesystem"
	KindOther             ErrorKind = "other"
)

// Result is the outcome of one document.
type Result struct {
	Source string
	Title  string
	Paths  artifact.Paths
	Stage  Stage
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil && r.Stage == StageDone
}

// Kind classifies Err.
func (r Result) Kind() ErrorKind {
	return Classify(r.Err)
}

// Classify maps err to its ErrorKind.
func Classify(err error) ErrorKind {
	var (
		invalid     *source.InvalidInputError
		unsupported *source.UnsupportedURLError
		download    *source.DownloadError
		extraction  *extractor.ExtractionError
		fsErr       *artifact.FilesystemError
	)

	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &invalid):
		return KindInvalidInput
	case errors.As(err, &unsupported):
		return KindUnsupportedURL
	case errors.As(err, &download):
		return KindDownload
	case errors.As(err, &extraction):
		return KindExtraction
	case errors.Is(err, summarizer.ErrRequestValidation):
		return KindRequestValidation
	case errors.As(err, &fsErr):
		return KindFilesystem
	default:
		return KindOther
	}
}

// Failed counts the results that did not reach StageDone.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
