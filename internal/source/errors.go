package source

import "fmt"

// InvalidInputError reports an input that is neither a PDF file, a directory, nor a URL.
type InvalidInputError struct {
	Input string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input path: %s. Please provide a folder or a valid PDF file", e.Input)
}

// UnsupportedURLError reports a URL whose host has no fetch strategy.
type UnsupportedURLError struct {
	URL string
}

func (e *UnsupportedURLError) Error() string {
	return fmt.Sprintf("unsupported url %q: must be from arXiv, IEEE Xplore, or ACM", e.URL)
}

// DownloadError reports a failed fetch. StatusCode is the HTTP status of the
// stage that failed (0 when no response was received).
type DownloadError struct {
	URL        string
	StatusCode int
	Reason     string
}

func (e *DownloadError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("download %s failed (HTTP status %d): %s", e.URL, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("download %s failed (HTTP status %d)", e.URL, e.StatusCode)
}
