package algorithm

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Algorithm
	}{
		{"bubble", Bubble},
		{"Bubble Sort", Bubble},
		{"BUBBLE", Bubble},
		{"selection", Selection},
		{"Selection Sort", Selection},
		{"selection-sort", Selection},
		{" insertion ", Insertion},
		{"Insertion Sort", Insertion},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("quick")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestCatalogue(t *testing.T) {
	expected := map[Algorithm][3]string{
		Bubble:    {"Bubble Sort", "bubble.py", "BubbleSort"},
		Selection: {"Selection Sort", "selection.py", "SelectionSort"},
		Insertion: {"Insertion Sort", "insertion.py", "InsertionSort"},
	}

	for a, want := range expected {
		if a.String() != want[0] {
			t.Errorf("String() = %s, want %s", a.String(), want[0])
		}
		if a.SceneFile() != want[1] {
			t.Errorf("SceneFile() = %s, want %s", a.SceneFile(), want[1])
		}
		if a.SceneClass() != want[2] {
			t.Errorf("SceneClass() = %s, want %s", a.SceneClass(), want[2])
		}
		if a.Pseudocode() == "" {
			t.Errorf("%s has no pseudocode", a)
		}
	}

	if Algorithm(42).Valid() {
		t.Error("Algorithm(42) should not be valid")
	}
	if len(All()) != 3 {
		t.Errorf("Expected 3 algorithms, got %d", len(All()))
	}
}
