package scene

import (
	"fmt"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/arrayinput"
)

// Plan is the storyboard of one scene run on one array
type Plan struct {
	Algorithm   algorithm.Algorithm `json:"-"`
	Name        string              `json:"algorithm"`
	Scene       string              `json:"scene"`
	Input       arrayinput.Array    `json:"input"`
	Output      arrayinput.Array    `json:"output"`
	Steps       []Step              `json:"steps"`
	Comparisons int                 `json:"comparisons"`
	Swaps       int                 `json:"swaps"`
	Shifts      int                 `json:"shifts"`
}

// Build plays the scene for a on array without rendering anything
func Build(a algorithm.Algorithm, array arrayinput.Array) (*Plan, error) {
	c := NewContext(array)

	switch a {
	case algorithm.Bubble:
		bubble(c)
	case algorithm.Selection:
		selection(c)
	case algorithm.Insertion:
		insertion(c)
	default:
		return nil, fmt.Errorf("%w: %d", algorithm.ErrUnknownAlgorithm, int(a))
	}

	return &Plan{
		Algorithm:   a,
		Name:        a.String(),
		Scene:       a.SceneClass(),
		Input:       array.Clone(),
		Output:      c.Array().Clone(),
		Steps:       c.Steps(),
		Comparisons: c.comparisons,
		Swaps:       c.swaps,
		Shifts:      c.shifts,
	}, nil
}

// Count returns how many steps perform op
func (p *Plan) Count(op Op) int {
	n := 0
	for _, s := range p.Steps {
		if s.Op == op {
			n++
		}
	}
	return n
}

// Code lines of the bubble sort snippet
const (
	bubbleDef = iota
	bubbleLen
	bubbleOuter
	bubbleInner
	bubbleCompare
	bubbleSwap
)

func bubble(c *Context) {
	c.Highlight(bubbleDef)
	c.ShowArray()
	c.Highlight(bubbleLen)

	n := len(c.Array())
	for i := 0; i < n-1; i++ {
		c.Highlight(bubbleOuter)
		c.Pointer("i", i)

		for j := 0; j < n-i-1; j++ {
			c.Highlight(bubbleInner)
			c.Pointer("j", j)

			c.Highlight(bubbleCompare)
			if j == 0 {
				c.PlaceSlider(0)
			} else {
				c.SlideTo(j)
			}

			if c.Greater(j, j+1) {
				c.Strobe(ColorGreen)
				c.Highlight(bubbleSwap)
				c.Swap(j, j+1)
			} else {
				c.Strobe(ColorRed)
			}
		}

		c.HideSlider()
		c.MarkSorted(n - i - 1)
	}

	if n > 0 {
		c.MarkSorted(0)
	}
	c.Unhighlight()
}

// Code lines of the selection sort snippet
const (
	selectionDef = iota
	selectionLen
	selectionOuter
	selectionMinInit
	selectionInner
	selectionCompare
	selectionMinUpdate
	selectionSwap
)

func selection(c *Context) {
	c.Highlight(selectionDef)
	c.ShowArray()
	c.Highlight(selectionLen)

	n := len(c.Array())
	for i := 0; i < n-1; i++ {
		c.Highlight(selectionOuter)
		c.Pointer("i", i)

		c.Highlight(selectionMinInit)
		minIndex := i
		c.MarkMin(minIndex)

		for j := i + 1; j < n; j++ {
			c.Highlight(selectionInner)
			c.Pointer("j", j)

			c.Highlight(selectionCompare)
			if c.Less(j, minIndex) {
				c.Highlight(selectionMinUpdate)
				minIndex = j
				c.MarkMin(minIndex)
			}
		}

		if minIndex != i {
			c.Highlight(selectionSwap)
			c.Swap(i, minIndex)
		}
		c.MarkSorted(i)
	}

	if n > 0 {
		c.MarkSorted(n - 1)
	}
	c.Unhighlight()
}

// Code lines of the insertion sort snippet
const (
	insertionDef = iota
	insertionOuter
	insertionKey
	insertionJInit
	insertionWhile
	insertionShift
	insertionDecrement
	insertionInsert
)

func insertion(c *Context) {
	c.Highlight(insertionDef)
	c.ShowArray()

	n := len(c.Array())
	for step := 1; step < n; step++ {
		c.Highlight(insertionOuter)
		c.Pointer("step", step)

		c.Highlight(insertionKey)
		key := c.Lift(step)

		c.Highlight(insertionJInit)
		j := step - 1
		c.Pointer("j", j)

		for {
			c.Highlight(insertionWhile)
			if j < 0 || !c.KeyLess(key, j, step) {
				break
			}
			c.Highlight(insertionShift)
			c.Shift(j)

			c.Highlight(insertionDecrement)
			j--
			c.Pointer("j", j)
		}

		c.Highlight(insertionInsert)
		c.Insert(j+1, step, key)
	}

	for i := 0; i < n; i++ {
		c.MarkSorted(i)
	}
	c.Unhighlight()
}
