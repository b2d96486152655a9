package summarizer

import "errors"

// ErrRequestValidation marks a request the summarization service rejected
// as invalid (too long, bad parameters, unknown model).
var ErrRequestValidation = errors.New("request rejected by summarization service")

// IsRequestValidation reports whether status is an HTTP status the providers
// use for invalid requests.
func IsRequestValidation(status int) bool {
	switch status {
	case 400, 404, 413, 422:
		return true
	}
	return false
}
