package watcher

import "context"

// Watcher reports new PDF files created in a directory.
type Watcher interface {
	// Start blocks, calling the handler for each new PDF, until ctx is done.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error
