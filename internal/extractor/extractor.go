package extractor

import (
	"context"
	"regexp"
	"strings"
)

var (
	// first run of text starting at an alphanumeric, up to the end of its line
	reTitle     = regexp.MustCompile(`\b[A-Za-z0-9][^\n]+`)
	reCitation  = regexp.MustCompile(`\[\d+\]`)
	reReference = regexp.MustCompile(`(?i)\breferences\b`)
)

func (e *implExtractor) Extract(ctx context.Context, path string) (string, string, error) {
	pages, err := e.primary.Pages(ctx, path)
	if err != nil && e.fallback != nil {
		e.logger.Warn(ctx, "PDF library failed on %s (%v), trying pdftotext", path, err)
		var fbErr error
		pages, fbErr = e.fallback.Pages(ctx, path)
		if fbErr != nil {
			e.logger.Debug(ctx, "pdftotext failed on %s: %v", path, fbErr)
		} else {
			err = nil
		}
	}
	if err != nil {
		return "", "", &ExtractionError{Path: path, Err: err}
	}

	text, title := Clean(pages)
	e.logger.Debug(ctx, "Extracted %d pages (%d chars) from %s", len(pages), len(text), path)
	return text, title, nil
}

// Clean joins pages in order, takes the title from the first page, strips
// bracketed numeric citations and drops everything from the first
// "references" heading onwards.
func Clean(pages []string) (text, title string) {
	var sb strings.Builder
	for i, page := range pages {
		sb.WriteString(page)
		if i == 0 {
			title = FindTitle(page)
		}
	}

	text = StripCitations(sb.String())
	text = TruncateAtReferences(text)
	return strings.TrimSpace(text), title
}

// FindTitle returns the first line of page that begins with an alphanumeric
// character, trimmed. It returns "" when there is none.
func FindTitle(page string) string {
	return strings.TrimSpace(reTitle.FindString(page))
}

// StripCitations removes markers such as "[12]".
func StripCitations(text string) string {
	return reCitation.ReplaceAllString(text, "")
}

// TruncateAtReferences cuts text at the first whole-word, case-insensitive
// "references". Text without one is returned unchanged.
func TruncateAtReferences(text string) string {
	if loc := reReference.FindStringIndex(text); loc != nil {
		return text[:loc[0]]
	}
	return text
}
