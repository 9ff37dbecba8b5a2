package formatter

import (
	"strings"
	"testing"

	"github.com/yildizm/sortflow/internal/algorithm"
)

func TestTerminalFormatter(t *testing.T) {
	plan := buildPlan(t, algorithm.Bubble, "2, 1")

	out, err := NewTerminal(false).Format(plan)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"Bubble Sort Storyboard",
		"Statistics",
		"BubbleSort",
		"[2, 1]",
		"[1, 2]",
		"1 swaps",
		"compare a[0]=2 with a[1]=1: true",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestTerminalFormatterShiftsForInsertion(t *testing.T) {
	plan := buildPlan(t, algorithm.Insertion, "3, 2, 1")

	out, err := NewTerminal(false).Format(plan)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.Contains(string(out), "3 shifts") {
		t.Errorf("insertion output should count shifts:\n%s", out)
	}
}

func TestTerminalFormatterTruncatesSteps(t *testing.T) {
	plan := buildPlan(t, algorithm.Bubble, "9, 8, 7, 6, 5, 4, 3, 2, 1")

	if len(keySteps(plan)) <= maxTextSteps {
		t.Fatalf("fixture too small: %d key steps", len(keySteps(plan)))
	}

	out, err := NewTerminal(false).Format(plan)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.Contains(string(out), "more steps") {
		t.Errorf("long storyboards should be truncated:\n%s", out)
	}
}

func TestTerminalFormatterEmpty(t *testing.T) {
	plan := buildPlan(t, algorithm.Selection, "")

	out, err := NewTerminal(false).Format(plan)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.Contains(string(out), "nothing to sort") {
		t.Errorf("empty input should say there is nothing to sort:\n%s", out)
	}
}

func TestTerminalFormatterSingleElement(t *testing.T) {
	plan := buildPlan(t, algorithm.Bubble, "7")

	out, err := NewTerminal(false).Format(plan)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.Contains(string(out), "nothing to sort") {
		t.Errorf("a single element should say there is nothing to sort:\n%s", out)
	}
}
