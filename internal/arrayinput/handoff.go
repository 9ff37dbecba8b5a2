package arrayinput

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultVariable is the name the scene scripts import the array under
const DefaultVariable = "my_array"

// Handoff writes the submitted array to the file the renderer reads
type Handoff struct {
	path     string
	variable string
}

// NewHandoff creates a hand-off writer for path. An empty variable falls back
// to DefaultVariable.
func NewHandoff(path, variable string) *Handoff {
	if variable == "" {
		variable = DefaultVariable
	}
	return &Handoff{path: path, variable: variable}
}

// Path returns the hand-off file location
func (h *Handoff) Path() string {
	return h.path
}

// Content returns the exact bytes written for array
func (h *Handoff) Content(array Array) []byte {
	return []byte(fmt.Sprintf("%s = %s\n", h.variable, array.Literal()))
}

// Submit parses raw input and, only if it is valid, overwrites the hand-off
// file with it.
func (h *Handoff) Submit(raw string) (Array, error) {
	array, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := h.Write(array); err != nil {
		return nil, err
	}
	return array, nil
}

// Write replaces the hand-off file atomically with the literal for array
func (h *Handoff) Write(array Array) error {
	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create hand-off directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".handoff-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary hand-off file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(h.Content(array)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write hand-off file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close hand-off file: %w", err)
	}
	// The renderer runs in a container under another uid
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set hand-off file mode: %w", err)
	}
	if err := os.Rename(tmpPath, h.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace hand-off file %s: %w", h.path, err)
	}

	return nil
}

// Read loads the array currently stored in the hand-off file
func (h *Handoff) Read() (Array, error) {
	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hand-off file: %w", err)
	}

	line := string(bytes.TrimSpace(data))
	name, literal, found := strings.Cut(line, "=")
	if !found || strings.TrimSpace(name) != h.variable {
		return nil, fmt.Errorf("hand-off file %s does not assign %s", h.path, h.variable)
	}

	return Parse(literal)
}
