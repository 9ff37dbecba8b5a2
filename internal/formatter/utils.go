package formatter

import (
	"fmt"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/scene"
)

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

// addCommas adds commas to number strings
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// worstCase returns the comparisons a full quadratic sort performs on n items
func worstCase(n int) int {
	return n * (n - 1) / 2
}

// disorder is the share of element moves relative to the worst case
func disorder(plan *scene.Plan) float64 {
	limit := worstCase(len(plan.Input))
	if plan.Algorithm == algorithm.Selection {
		// at most one swap per pass
		limit = len(plan.Input) - 1
	}
	if limit <= 0 {
		return 0
	}
	return float64(plan.Swaps+plan.Shifts) / float64(limit)
}

// getOpEmoji returns the marker shown in front of a step using go-termfmt
func getOpEmoji(op scene.Op, opts *termfmt.TerminalOptions) string {
	switch op {
	case scene.OpSwap, scene.OpShift, scene.OpInsert:
		return termfmt.GetEmoji("warning", opts)
	case scene.OpCompare:
		return termfmt.GetEmoji("pattern", opts)
	case scene.OpMarkSorted:
		return termfmt.GetEmoji("insight", opts)
	default:
		return termfmt.GetEmoji("info", opts)
	}
}

// createDisorderBar creates an ASCII bar of how much the input had to move
func createDisorderBar(plan *scene.Plan) string {
	opts := termfmt.DefaultOptions()
	return termfmt.CreateConfidenceBar(disorder(plan), opts)
}

// nothingToSort reports whether the scene never had to compare two elements
func nothingToSort(plan *scene.Plan) bool {
	return plan.Comparisons == 0
}

// keySteps returns the steps that change or inspect the array
func keySteps(plan *scene.Plan) []scene.Step {
	var out []scene.Step
	for _, s := range plan.Steps {
		switch s.Op {
		case scene.OpCompare, scene.OpSwap, scene.OpShift, scene.OpInsert, scene.OpMarkSorted:
			out = append(out, s)
		}
	}
	return out
}
