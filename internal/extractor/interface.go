package extractor

import "context"

// Extractor turns a PDF into cleaned text plus a title candidate.
type Extractor interface {
	// Extract returns the cleaned text and the title found on the first page,
	// which is empty when no title line exists.
	Extract(ctx context.Context, path string) (text, title string, err error)
}

// PageReader returns the plain text of every page of a document, in page order.
type PageReader interface {
	Pages(ctx context.Context, path string) ([]string, error)
}
