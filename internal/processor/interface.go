package processor

import (
	"context"

	"github.com/nguyentantai21042004/paper2podcast/internal/source"
)

// Processor runs the single-document pipeline.
type Processor interface {
	// Process runs one document through every stage. Failures are reported in
	// the Result, never returned.
	Process(ctx context.Context, doc source.Document) Result
	// ProcessAll runs docs one after another; a failed document does not stop
	// the rest.
	ProcessAll(ctx context.Context, docs []source.Document) []Result
}
