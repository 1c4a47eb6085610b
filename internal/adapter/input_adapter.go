// Package adapter contains infrastructure adapters for the antinode CLI.
package adapter

import (
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/antinode/internal/model"
)

// InputAdapter abstracts where puzzle input comes from so the domain layer
// can be tested without touching the disk or the terminal.
type InputAdapter interface {
	// Read returns the full contents of path, or of standard input when
	// path is empty or "-".
	Read(path m.Path) ([]byte, error)
}

// LocalInputAdapter reads from the local filesystem and the process stdin.
type LocalInputAdapter struct {
	stdin io.Reader
}

// NewLocalInputAdapter creates an adapter that uses os.Stdin for "-".
func NewLocalInputAdapter() *LocalInputAdapter {
	return &LocalInputAdapter{stdin: os.Stdin}
}

// NewReaderInputAdapter creates an adapter that serves stdin requests from r.
func NewReaderInputAdapter(r io.Reader) *LocalInputAdapter {
	return &LocalInputAdapter{stdin: r}
}

// Read loads the input at path.
func (a *LocalInputAdapter) Read(path m.Path) ([]byte, error) {
	if path.Stdin() {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
