package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/yildizm/sortflow/internal/scene"
)

// csvFormatter formats storyboard steps as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(plan *scene.Plan) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Step",
		"Op",
		"Line",
		"Index",
		"Other",
		"Outcome",
		"Description",
		"Snapshot",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, s := range plan.Steps {
		record := []string{
			strconv.Itoa(i),
			string(s.Op),
			formatCSVLine(s.Line),
			strconv.Itoa(s.Index),
			strconv.Itoa(s.Other),
			formatCSVOutcome(s),
			escapeCSVString(s.Describe()),
			s.Snapshot.Literal(),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// formatCSVLine leaves the cell empty when no code line is highlighted
func formatCSVLine(line int) string {
	if line == scene.NoLine {
		return ""
	}
	return strconv.Itoa(line)
}

// formatCSVOutcome only fills the cell for comparisons
func formatCSVOutcome(s scene.Step) string {
	if s.Op != scene.OpCompare {
		return ""
	}
	return strconv.FormatBool(s.Outcome)
}

// escapeCSVString flattens newlines so every step stays on one row
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
