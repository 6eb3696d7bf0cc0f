// Package input loads analysis input fully into memory.
//
// The engine operates on a completely materialized, immutable buffer; there
// is no streaming path. Loading failures are reported as typed IO errors
// and abort the run before any worker is launched.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/kaslabs/textstat/internal/errors"
)

// StdinPath is the conventional argument for reading from standard input.
const StdinPath = "-"

// Loader reads input files into memory with a size cap.
type Loader struct {
	maxBytes int64
}

// NewLoader creates a loader. maxBytes <= 0 disables the size cap.
func NewLoader(maxBytes int64) *Loader {
	return &Loader{maxBytes: maxBytes}
}

// Load materializes the named file (or stdin for "-") as one byte buffer.
func (l *Loader) Load(path string) ([]byte, error) {
	if path == StdinPath {
		return l.readAll(os.Stdin, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.ErrInputRead(path, err)
	}
	if info.IsDir() {
		return nil, errors.ErrInputRead(path, fmt.Errorf("is a directory"))
	}
	if l.maxBytes > 0 && info.Size() > l.maxBytes {
		return nil, errors.NewIOError(errors.ErrCodeInputTooLarge,
			fmt.Sprintf("input %s is %d bytes, cap is %d", path, info.Size(), l.maxBytes), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrInputRead(path, err)
	}

	return data, nil
}

func (l *Loader) readAll(r io.Reader, name string) ([]byte, error) {
	if l.maxBytes > 0 {
		r = io.LimitReader(r, l.maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.ErrInputRead(name, err)
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return nil, errors.NewIOError(errors.ErrCodeInputTooLarge,
			fmt.Sprintf("input %s exceeds %d byte cap", name, l.maxBytes), nil)
	}

	return data, nil
}
