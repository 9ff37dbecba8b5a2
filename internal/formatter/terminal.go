package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/scene"
)

// maxTextSteps caps the step list printed in text mode
const maxTextSteps = 60

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(plan *scene.Plan) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, plan)
	f.writeStatistics(&b, plan)
	f.writeSteps(&b, plan)

	return []byte(b.String()), nil
}

// writeHeader writes the boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder, plan *scene.Plan) {
	header := plan.Name + " Storyboard"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeStatistics writes statistics with tree-style formatting using go-termfmt
func (f *terminalFormatter) writeStatistics(b *strings.Builder, plan *scene.Plan) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Statistics\n")

	moves := fmt.Sprintf("%s swaps", formatNumber(plan.Swaps))
	if plan.Algorithm == algorithm.Insertion {
		moves = fmt.Sprintf("%s shifts", formatNumber(plan.Shifts))
	}

	items := []termfmt.TreeItem{
		{Label: "Scene", Value: plan.Scene},
		{Label: "Input", Value: plan.Input.Literal()},
		{Label: "Output", Value: plan.Output.Literal()},
		{Label: "Steps", Value: formatNumber(len(plan.Steps))},
		{Label: "Comparisons", Value: fmt.Sprintf("%s of %s worst case", formatNumber(plan.Comparisons), formatNumber(worstCase(len(plan.Input))))},
		{Label: "Moves", Value: moves, Children: []termfmt.TreeItem{
			{Label: createDisorderBar(plan), Value: ""},
		}, Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeSteps lists the comparisons and moves in order
func (f *terminalFormatter) writeSteps(b *strings.Builder, plan *scene.Plan) {
	steps := keySteps(plan)
	symbol := termfmt.GetEmoji("recommendations", f.opts)
	b.WriteString(symbol + " Steps\n")

	if nothingToSort(plan) {
		b.WriteString("• nothing to sort\n")
		return
	}

	shown := steps
	if len(shown) > maxTextSteps {
		shown = shown[:maxTextSteps]
	}

	items := make([]termfmt.TreeItem, 0, len(shown))
	for i, s := range shown {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%s %s", getOpEmoji(s.Op, f.opts), s.Describe()),
			Value: s.Snapshot.Literal(),
			Last:  i == len(shown)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")

	if hidden := len(steps) - len(shown); hidden > 0 {
		fmt.Fprintf(b, "… %s more steps (use --output json for the full storyboard)\n", formatNumber(hidden))
	}
}
