package algorithm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when a name does not match any supported sort
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies one of the supported comparison sorts
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
)

// info holds the fixed metadata attached to each algorithm
type info struct {
	name       string
	key        string
	sceneFile  string
	sceneClass string
	pseudocode string
}

var catalogue = map[Algorithm]info{
	Bubble: {
		name:       "Bubble Sort",
		key:        "bubble",
		sceneFile:  "bubble.py",
		sceneClass: "BubbleSort",
		pseudocode: `def bubble_sort(arr):
    n = len(arr)
    for i in range(n - 1):
        for j in range(n - i - 1):
            if arr[j] > arr[j + 1]:
                arr[j], arr[j + 1] = arr[j + 1], arr[j]`,
	},
	Selection: {
		name:       "Selection Sort",
		key:        "selection",
		sceneFile:  "selection.py",
		sceneClass: "SelectionSort",
		pseudocode: `def selection_sort(arr):
    n = len(arr)
    for i in range(n - 1):
        min_index = i
        for j in range(i + 1, n):
            if arr[j] < arr[min_index]:
                min_index = j
        arr[i], arr[min_index] = arr[min_index], arr[i]`,
	},
	Insertion: {
		name:       "Insertion Sort",
		key:        "insertion",
		sceneFile:  "insertion.py",
		sceneClass: "InsertionSort",
		pseudocode: `def insertion_sort(arr):
    for step in range(1, len(arr)):
        key = arr[step]
        j = step - 1
        while j >= 0 and key < arr[j]:
            arr[j + 1] = arr[j]
            j = j - 1
        arr[j + 1] = key`,
	},
}

// All returns the algorithms in the order they are offered to the user
func All() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion}
}

// String returns the display name, e.g. "Bubble Sort"
func (a Algorithm) String() string {
	if i, ok := catalogue[a]; ok {
		return i.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Key returns the short lowercase identifier used in file names and flags
func (a Algorithm) Key() string {
	return catalogue[a].key
}

// SceneFile returns the scene script the renderer is pointed at
func (a Algorithm) SceneFile() string {
	return catalogue[a].sceneFile
}

// SceneModule returns the scene script name without extension. The renderer
// uses it as the directory name under its media tree.
func (a Algorithm) SceneModule() string {
	return strings.TrimSuffix(catalogue[a].sceneFile, ".py")
}

// SceneClass returns the scene class name, which is also the video file stem
func (a Algorithm) SceneClass() string {
	return catalogue[a].sceneClass
}

// Pseudocode returns the snippet displayed in the video
func (a Algorithm) Pseudocode() string {
	return catalogue[a].pseudocode
}

// Valid reports whether a is one of the supported algorithms
func (a Algorithm) Valid() bool {
	_, ok := catalogue[a]
	return ok
}

// Parse resolves a key ("bubble") or display name ("Bubble Sort"),
// case-insensitively.
func Parse(s string) (Algorithm, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, a := range All() {
		i := catalogue[a]
		if needle == i.key || needle == strings.ToLower(i.name) || needle == i.key+"sort" || needle == i.key+"-sort" {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be one of: bubble, selection, insertion)", ErrUnknownAlgorithm, s)
}

// Keys returns the short identifiers of all algorithms
func Keys() []string {
	keys := make([]string, 0, len(catalogue))
	for _, a := range All() {
		keys = append(keys, a.Key())
	}
	return keys
}
