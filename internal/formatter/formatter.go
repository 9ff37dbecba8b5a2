package formatter

import (
	"fmt"

	"github.com/yildizm/sortflow/internal/scene"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(plan *scene.Plan) ([]byte, error)
}

// New returns the formatter for a format name: text, json, markdown or csv
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: text, json, markdown, csv)", format)
	}
}
