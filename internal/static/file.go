package static

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Outcome classifies a file read.
type Outcome int

const (
	Found Outcome = iota
	Missing
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Missing:
		return "missing"
	default:
		return "failed"
	}
}

// ReadFile cleans path and reads the whole file into memory.
// The error is nil only when the outcome is Found.
func ReadFile(path string) ([]byte, Outcome, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err == nil {
		return data, Found, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, Missing, err
	}
	return nil, Failed, fmt.Errorf("read %s: %w", path, err)
}
