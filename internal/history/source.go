package history

import (
	"fmt"
	"os"
)

// SourceUnavailableError reports that the history log could not be read.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("history file not found on path '%s': %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ReadFile returns the verbatim content of the history log at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceUnavailableError{Path: path, Err: err}
	}
	return string(data), nil
}

// Load reads and decodes the history log at path.
func Load(path string) ([]Record, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(raw), nil
}
