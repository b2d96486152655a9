package extractor

import (
	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/pkg/executor"
)

type implExtractor struct {
	primary  PageReader
	fallback PageReader
	logger   logger.Logger
}

// New creates an Extractor reading pages with the PDF library and, when
// enabled, falling back to pdftotext.
func New(cfg config.ExtractConfig, exec executor.Executor, log logger.Logger) Extractor {
	var fallback PageReader
	if cfg.PdftotextFallback {
		fallback = NewPdftotextReader(exec, cfg.PdftotextPath)
	}
	return NewWithReaders(NewPDFReader(), fallback, log)
}

// NewWithReaders creates an Extractor from explicit page readers. fallback may be nil.
func NewWithReaders(primary, fallback PageReader, log logger.Logger) Extractor {
	return &implExtractor{
		primary:  primary,
		fallback: fallback,
		logger:   log,
	}
}
