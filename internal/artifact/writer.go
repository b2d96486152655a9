package artifact

import (
	"fmt"
	"os"
)

// FilesystemError reports an artifact that could not be written.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// WriteText writes text to path as UTF-8, creating or truncating the file.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &FilesystemError{Path: path, Err: err}
	}
	return nil
}
