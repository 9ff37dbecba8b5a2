package scene

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/arrayinput"
)

func parse(t *testing.T, raw string) arrayinput.Array {
	t.Helper()
	array, err := arrayinput.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", raw, err)
	}
	return array
}

func sorted(array arrayinput.Array) arrayinput.Array {
	out := array.Clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func inversions(array arrayinput.Array) int {
	n := 0
	for i := range array {
		for j := i + 1; j < len(array); j++ {
			if array[j].Less(array[i]) {
				n++
			}
		}
	}
	return n
}

func ops(steps []Step) []Op {
	out := make([]Op, len(steps))
	for i, s := range steps {
		out[i] = s.Op
	}
	return out
}

var inputs = []string{
	"2, 3, 1, 4, 7, 6, 5, 9, 8",
	"5, 4, 3, 2, 1",
	"1, 2, 3, 4",
	"3, 1.5, -2, 0x10, 1e1",
	"7, 7, 3, 7",
	"42",
	"",
}

func TestBuildEndsSorted(t *testing.T) {
	for _, a := range algorithm.All() {
		for _, raw := range inputs {
			t.Run(a.Key()+"/"+raw, func(t *testing.T) {
				input := parse(t, raw)
				plan, err := Build(a, input)
				if err != nil {
					t.Fatalf("Build returned error: %v", err)
				}

				want := sorted(input)
				if diff := cmp.Diff(want.Literal(), plan.Output.Literal()); diff != "" {
					t.Errorf("output not sorted (-want +got):\n%s", diff)
				}
				if len(plan.Steps) > 0 {
					last := plan.Steps[len(plan.Steps)-1].Snapshot
					if last.Literal() != want.Literal() {
						t.Errorf("final snapshot = %s, want %s", last.Literal(), want.Literal())
					}
				}
				if plan.Input.Literal() != input.Literal() {
					t.Errorf("input was modified: %s", plan.Input.Literal())
				}
				if plan.Count(OpCompare) != plan.Comparisons {
					t.Errorf("compare steps = %d, comparisons = %d", plan.Count(OpCompare), plan.Comparisons)
				}
			})
		}
	}
}

func TestBuildTextbookCounts(t *testing.T) {
	for _, raw := range inputs {
		input := parse(t, raw)
		n := len(input)
		pairs := n * (n - 1) / 2

		bubble, err := Build(algorithm.Bubble, input)
		if err != nil {
			t.Fatalf("Build returned error: %v", err)
		}
		if bubble.Comparisons != pairs || bubble.Swaps != inversions(input) {
			t.Errorf("bubble %q: comparisons=%d swaps=%d, want %d and %d", raw, bubble.Comparisons, bubble.Swaps, pairs, inversions(input))
		}

		selection, err := Build(algorithm.Selection, input)
		if err != nil {
			t.Fatalf("Build returned error: %v", err)
		}
		if selection.Comparisons != pairs {
			t.Errorf("selection %q: comparisons=%d, want %d", raw, selection.Comparisons, pairs)
		}
		if n > 0 && selection.Swaps > n-1 {
			t.Errorf("selection %q: %d swaps exceed n-1", raw, selection.Swaps)
		}

		insertion, err := Build(algorithm.Insertion, input)
		if err != nil {
			t.Fatalf("Build returned error: %v", err)
		}
		if insertion.Shifts != inversions(input) || insertion.Swaps != 0 {
			t.Errorf("insertion %q: shifts=%d swaps=%d, want %d and 0", raw, insertion.Shifts, insertion.Swaps, inversions(input))
		}
		if n > 1 && (insertion.Comparisons < insertion.Shifts || insertion.Comparisons > insertion.Shifts+n-1) {
			t.Errorf("insertion %q: comparisons=%d out of range for %d shifts", raw, insertion.Comparisons, insertion.Shifts)
		}
	}
}

func TestBuildSmallArraysHaveNoComparisons(t *testing.T) {
	for _, a := range algorithm.All() {
		for _, raw := range []string{"", "5"} {
			plan, err := Build(a, parse(t, raw))
			if err != nil {
				t.Fatalf("Build returned error: %v", err)
			}
			if plan.Count(OpCompare) != 0 || plan.Count(OpSwap) != 0 {
				t.Errorf("%s on %q produced compare or swap steps", a, raw)
			}
		}
	}
}

func TestBubbleStoryboard(t *testing.T) {
	plan, err := Build(algorithm.Bubble, parse(t, "2, 1"))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	want := []Op{
		OpHighlight, OpShowArray, OpHighlight,
		OpHighlight, OpPointer,
		OpHighlight, OpPointer,
		OpHighlight, OpPlaceSlider, OpCompare, OpStrobe, OpHighlight, OpSwap,
		OpHideSlider, OpMarkSorted,
		OpMarkSorted, OpUnhighlight,
	}
	if diff := cmp.Diff(want, ops(plan.Steps)); diff != "" {
		t.Fatalf("storyboard mismatch (-want +got):\n%s", diff)
	}

	swap := plan.Steps[12]
	if swap.Line != 5 || swap.Snapshot.Literal() != "[1, 2]" {
		t.Errorf("swap step = line %d snapshot %s", swap.Line, swap.Snapshot.Literal())
	}
	if strobe := plan.Steps[10]; strobe.Color != ColorGreen {
		t.Errorf("swap should strobe green, got %s", strobe.Color)
	}
	if marks := []int{plan.Steps[14].Index, plan.Steps[15].Index}; marks[0] != 1 || marks[1] != 0 {
		t.Errorf("sorted marks = %v, want [1 0]", marks)
	}
}

func TestBubbleKeepStrobesRed(t *testing.T) {
	plan, err := Build(algorithm.Bubble, parse(t, "1, 2, 3"))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	for _, s := range plan.Steps {
		if s.Op == OpStrobe && s.Color != ColorRed {
			t.Errorf("sorted input should only strobe red, got %s", s.Color)
		}
	}
	if plan.Count(OpPlaceSlider) != 2 || plan.Count(OpHideSlider) != 2 {
		t.Errorf("expected one window per pass, got %d placed and %d hidden", plan.Count(OpPlaceSlider), plan.Count(OpHideSlider))
	}
}

func TestSelectionSwapsOnlyWhenMinimumMoved(t *testing.T) {
	plan, err := Build(algorithm.Selection, parse(t, "1, 3, 2"))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if plan.Swaps != 1 {
		t.Errorf("swaps = %d, want 1", plan.Swaps)
	}
	for _, s := range plan.Steps {
		if s.Op == OpSwap && (s.Index != 1 || s.Other != 2 || s.Line != 7) {
			t.Errorf("unexpected swap %+v", s)
		}
	}
}

func TestInsertionStoryboard(t *testing.T) {
	plan, err := Build(algorithm.Insertion, parse(t, "3, 1"))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	var lines []int
	for _, s := range plan.Steps {
		if s.Op == OpHighlight {
			lines = append(lines, s.Line)
		}
	}
	// def, outer, key, j init, while, shift, decrement, while, insert
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5, 6, 4, 7}, lines); diff != "" {
		t.Errorf("highlighted lines mismatch (-want +got):\n%s", diff)
	}
	if plan.Comparisons != 1 || plan.Shifts != 1 {
		t.Errorf("comparisons=%d shifts=%d, want 1 and 1", plan.Comparisons, plan.Shifts)
	}
}

func TestBuildUnknownAlgorithm(t *testing.T) {
	if _, err := Build(algorithm.Algorithm(7), parse(t, "1")); !errors.Is(err, algorithm.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestContextSlider(t *testing.T) {
	c := NewContext(parse(t, "4, 3, 2, 1"))

	c.SlideTo(2)
	if idx, placed := c.SliderIndex(); !placed || idx != 2 {
		t.Fatalf("SlideTo before placement should place the window, got %d %t", idx, placed)
	}

	before := len(c.Steps())
	c.SlideTo(2)
	if len(c.Steps()) != before {
		t.Error("sliding to the current index should not record a step")
	}

	c.SlideTo(0)
	last := c.Steps()[len(c.Steps())-1]
	if last.Op != OpSlide || last.Index != 0 || last.Other != 2 {
		t.Errorf("unexpected slide step %+v", last)
	}

	c.HideSlider()
	c.HideSlider()
	if c.Steps()[len(c.Steps())-1].Op != OpHideSlider || len(c.Steps()) != before+2 {
		t.Error("hiding twice should record a single step")
	}
}

func TestContextHighlight(t *testing.T) {
	c := NewContext(parse(t, "1"))
	if c.Highlighted() != NoLine {
		t.Fatalf("new context highlights line %d", c.Highlighted())
	}

	c.Highlight(3)
	c.Highlight(3)
	if len(c.Steps()) != 2 {
		t.Errorf("re-highlighting should record again, got %d steps", len(c.Steps()))
	}

	c.Pointer("i", 0)
	if c.Steps()[2].Line != 3 {
		t.Errorf("steps should carry the highlighted line, got %d", c.Steps()[2].Line)
	}

	c.Unhighlight()
	c.Unhighlight()
	if c.Highlighted() != NoLine || len(c.Steps()) != 4 {
		t.Errorf("Unhighlight: line=%d steps=%d", c.Highlighted(), len(c.Steps()))
	}
}

func TestDescribe(t *testing.T) {
	plan, err := Build(algorithm.Bubble, parse(t, "2, 1"))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	tests := map[int]string{
		1:  "show [2, 1]",
		8:  "place window on 0..1",
		9:  "compare a[0]=2 with a[1]=1: true",
		12: "swap -> a[0]=1, a[1]=2",
		14: "sorted a[1]=2",
	}
	for i, want := range tests {
		if got := plan.Steps[i].Describe(); got != want {
			t.Errorf("step %d: Describe() = %q, want %q", i, got, want)
		}
	}
}
