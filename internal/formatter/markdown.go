package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/sortflow/internal/scene"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(plan *scene.Plan) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Storyboard\n\n", plan.Name)

	f.writeTableOfContents(&b)
	f.writeSummaryTable(&b, plan)
	f.writePseudocode(&b, plan)
	f.writeSteps(&b, plan)

	return []byte(b.String()), nil
}

// writeTableOfContents writes the section index
func (f *markdownFormatter) writeTableOfContents(b *strings.Builder) {
	b.WriteString("## Table of Contents\n")
	b.WriteString("- [Summary](#summary)\n")
	b.WriteString("- [Code](#code)\n")
	b.WriteString("- [Steps](#steps)\n\n")
}

// writeSummaryTable writes the summary table
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, plan *scene.Plan) {
	b.WriteString("## Summary\n\n")

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Scene | `%s` |\n", plan.Scene)
	fmt.Fprintf(b, "| Input | `%s` |\n", plan.Input.Literal())
	fmt.Fprintf(b, "| Output | `%s` |\n", plan.Output.Literal())
	fmt.Fprintf(b, "| Steps | %s |\n", formatNumber(len(plan.Steps)))
	fmt.Fprintf(b, "| Comparisons | %s |\n", formatNumber(plan.Comparisons))
	fmt.Fprintf(b, "| Swaps | %s |\n", formatNumber(plan.Swaps))
	fmt.Fprintf(b, "| Shifts | %s |\n", formatNumber(plan.Shifts))
	fmt.Fprintf(b, "| Disorder | %.0f%% |\n\n", disorder(plan)*100)
}

// writePseudocode writes the snippet the scene highlights
func (f *markdownFormatter) writePseudocode(b *strings.Builder, plan *scene.Plan) {
	b.WriteString("## Code\n\n")
	b.WriteString("```python\n")
	b.WriteString(strings.TrimRight(plan.Algorithm.Pseudocode(), "\n"))
	b.WriteString("\n```\n\n")
}

// writeSteps writes the comparisons and moves as a numbered list
func (f *markdownFormatter) writeSteps(b *strings.Builder, plan *scene.Plan) {
	b.WriteString("## Steps\n\n")

	if nothingToSort(plan) {
		b.WriteString("Nothing to sort.\n")
		return
	}

	for i, s := range keySteps(plan) {
		line := ""
		if s.Line != scene.NoLine {
			line = fmt.Sprintf(" (line %d)", s.Line)
		}
		fmt.Fprintf(b, "%d. %s%s → `%s`\n", i+1, s.Describe(), line, s.Snapshot.Literal())
	}
}
