package scene

import "fmt"

// Describe renders a step as a short sentence
func (s Step) Describe() string {
	at := func(i int) string {
		if i < 0 || i >= len(s.Snapshot) {
			return fmt.Sprintf("a[%d]", i)
		}
		return fmt.Sprintf("a[%d]=%s", i, s.Snapshot[i])
	}

	switch s.Op {
	case OpShowArray:
		return "show " + s.Snapshot.Literal()
	case OpHighlight:
		return fmt.Sprintf("highlight line %d", s.Line)
	case OpUnhighlight:
		return "clear highlight"
	case OpPointer:
		return fmt.Sprintf("move %s to %d", s.Pointer, s.Index)
	case OpPlaceSlider:
		return fmt.Sprintf("place window on %d..%d", s.Index, s.Other)
	case OpSlide:
		return fmt.Sprintf("slide window %d -> %d", s.Other, s.Index)
	case OpHideSlider:
		return "hide window"
	case OpCompare:
		if s.Key != "" {
			return fmt.Sprintf("compare key=%s with %s: %t", s.Key, at(s.Index), s.Outcome)
		}
		return fmt.Sprintf("compare %s with %s: %t", at(s.Index), at(s.Other), s.Outcome)
	case OpStrobe:
		return "strobe " + s.Color
	case OpSwap:
		return fmt.Sprintf("swap -> %s, %s", at(s.Index), at(s.Other))
	case OpMarkMin:
		return "minimum " + at(s.Index)
	case OpLift:
		return "lift key " + at(s.Index)
	case OpShift:
		return fmt.Sprintf("shift a[%d] into a[%d]", s.Index, s.Other)
	case OpInsert:
		return "insert key at " + at(s.Index)
	case OpMarkSorted:
		return "sorted " + at(s.Index)
	default:
		return string(s.Op)
	}
}
