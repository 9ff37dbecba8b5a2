// Package scene computes the storyboard each sorting scene animates.
package scene

import (
	"github.com/yildizm/sortflow/internal/arrayinput"
)

// Op is the kind of animation a step performs
type Op string

const (
	OpShowArray   Op = "show_array"
	OpHighlight   Op = "highlight"
	OpUnhighlight Op = "unhighlight"
	OpPointer     Op = "pointer"
	OpPlaceSlider Op = "place_slider"
	OpSlide       Op = "slide"
	OpHideSlider  Op = "hide_slider"
	OpCompare     Op = "compare"
	OpStrobe      Op = "strobe"
	OpSwap        Op = "swap"
	OpMarkMin     Op = "mark_min"
	OpLift        Op = "lift"
	OpShift       Op = "shift"
	OpInsert      Op = "insert"
	OpMarkSorted  Op = "mark_sorted"
)

// Strobe colours
const (
	ColorGreen = "green"
	ColorRed   = "red"
)

// NoLine means no code line is highlighted
const NoLine = -1

// Step is one animation in a scene
type Step struct {
	Op       Op               `json:"op"`
	Line     int              `json:"line"` // highlighted code line, NoLine if none
	Pointer  string           `json:"pointer,omitempty"`
	Index    int              `json:"index"`
	Other    int              `json:"other"`
	Outcome  bool             `json:"outcome,omitempty"` // compare result
	Key      string           `json:"key,omitempty"`     // insertion key
	Color    string           `json:"color,omitempty"`
	Snapshot arrayinput.Array `json:"snapshot"` // array after the step
}

// Context carries the per-scene animation state: the highlighted code line,
// the sliding comparison window and the working array.
type Context struct {
	highlighted  int
	sliderPlaced bool
	sliderIndex  int

	array       arrayinput.Array
	steps       []Step
	comparisons int
	swaps       int
	shifts      int
}

// NewContext starts a scene on a copy of array
func NewContext(array arrayinput.Array) *Context {
	return &Context{
		highlighted: NoLine,
		array:       array.Clone(),
	}
}

// Highlighted returns the current code line or NoLine
func (c *Context) Highlighted() int { return c.highlighted }

// SliderIndex returns the window position and whether it is visible
func (c *Context) SliderIndex() (int, bool) { return c.sliderIndex, c.sliderPlaced }

// Steps returns the recorded storyboard
func (c *Context) Steps() []Step { return c.steps }

// Array returns the working array
func (c *Context) Array() arrayinput.Array { return c.array }

func (c *Context) record(step Step) {
	step.Line = c.highlighted
	step.Snapshot = c.array.Clone()
	c.steps = append(c.steps, step)
}

// ShowArray draws the array
func (c *Context) ShowArray() {
	c.record(Step{Op: OpShowArray, Index: -1, Other: -1})
}

// Highlight moves the code highlight to line. It is recorded even when the
// line is already highlighted, as the scene re-flashes it.
func (c *Context) Highlight(line int) {
	c.highlighted = line
	c.record(Step{Op: OpHighlight, Index: -1, Other: -1})
}

// Unhighlight clears the code highlight
func (c *Context) Unhighlight() {
	if c.highlighted == NoLine {
		return
	}
	c.record(Step{Op: OpUnhighlight, Index: -1, Other: -1})
	c.highlighted = NoLine
}

// Pointer moves the named index pointer
func (c *Context) Pointer(name string, index int) {
	c.record(Step{Op: OpPointer, Pointer: name, Index: index, Other: -1})
}

// PlaceSlider shows the comparison window over index and index+1
func (c *Context) PlaceSlider(index int) {
	c.sliderPlaced = true
	c.sliderIndex = index
	c.record(Step{Op: OpPlaceSlider, Index: index, Other: index + 1})
}

// SlideTo moves the window; nothing happens when it is already there
func (c *Context) SlideTo(index int) {
	if !c.sliderPlaced {
		c.PlaceSlider(index)
		return
	}
	if c.sliderIndex == index {
		return
	}
	from := c.sliderIndex
	c.sliderIndex = index
	c.record(Step{Op: OpSlide, Index: index, Other: from})
}

// HideSlider fades the window out
func (c *Context) HideSlider() {
	if !c.sliderPlaced {
		return
	}
	c.sliderPlaced = false
	c.record(Step{Op: OpHideSlider, Index: c.sliderIndex, Other: -1})
}

// Greater records the comparison a[i] > a[j]
func (c *Context) Greater(i, j int) bool {
	outcome := c.array[i].Cmp(c.array[j]) > 0
	c.comparisons++
	c.record(Step{Op: OpCompare, Index: i, Other: j, Outcome: outcome})
	return outcome
}

// Less records the comparison a[i] < a[j]
func (c *Context) Less(i, j int) bool {
	outcome := c.array[i].Less(c.array[j])
	c.comparisons++
	c.record(Step{Op: OpCompare, Index: i, Other: j, Outcome: outcome})
	return outcome
}

// KeyLess records the comparison key < a[j]; from is the key's origin
func (c *Context) KeyLess(key arrayinput.Number, j, from int) bool {
	outcome := key.Less(c.array[j])
	c.comparisons++
	c.record(Step{Op: OpCompare, Index: j, Other: from, Outcome: outcome, Key: key.String()})
	return outcome
}

// Strobe flashes the comparison window
func (c *Context) Strobe(color string) {
	c.record(Step{Op: OpStrobe, Index: c.sliderIndex, Other: -1, Color: color})
}

// Swap exchanges a[i] and a[j]
func (c *Context) Swap(i, j int) {
	c.array[i], c.array[j] = c.array[j], c.array[i]
	c.swaps++
	c.record(Step{Op: OpSwap, Index: i, Other: j})
}

// MarkMin highlights the running minimum
func (c *Context) MarkMin(index int) {
	c.record(Step{Op: OpMarkMin, Index: index, Other: -1})
}

// Lift copies a[index] out of the row as the insertion key
func (c *Context) Lift(index int) arrayinput.Number {
	c.record(Step{Op: OpLift, Index: index, Other: -1})
	return c.array[index]
}

// Shift copies a[j] into a[j+1]
func (c *Context) Shift(j int) {
	c.array[j+1] = c.array[j]
	c.shifts++
	c.record(Step{Op: OpShift, Index: j, Other: j + 1})
}

// Insert drops the key into a[index]; from is where it was lifted
func (c *Context) Insert(index, from int, key arrayinput.Number) {
	c.array[index] = key
	c.record(Step{Op: OpInsert, Index: index, Other: from, Key: key.String()})
}

// MarkSorted colours a[index] as final
func (c *Context) MarkSorted(index int) {
	c.record(Step{Op: OpMarkSorted, Index: index, Other: -1})
}
