package formatter

import (
	"encoding/json"

	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/scene"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(plan *scene.Plan) ([]byte, error) {
	output := &PlanOutput{
		Summary: createSummary(plan),
		Steps:   createStepOutputs(plan.Steps),
	}

	return json.MarshalIndent(output, "", "  ")
}

// PlanOutput represents the JSON document
type PlanOutput struct {
	Summary *SummaryOutput `json:"summary"`
	Steps   []*StepOutput  `json:"steps"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Algorithm   string           `json:"algorithm"`
	Scene       string           `json:"scene"`
	Input       arrayinput.Array `json:"input"`
	Output      arrayinput.Array `json:"output"`
	StepCount   int              `json:"step_count"`
	Comparisons int              `json:"comparisons"`
	Swaps       int              `json:"swaps"`
	Shifts      int              `json:"shifts"`
}

// StepOutput represents one storyboard step
type StepOutput struct {
	Index       int              `json:"index"`
	Op          string           `json:"op"`
	Line        int              `json:"line"`
	Pointer     string           `json:"pointer,omitempty"`
	Target      int              `json:"target"`
	Other       int              `json:"other"`
	Outcome     bool             `json:"outcome,omitempty"`
	Key         string           `json:"key,omitempty"`
	Color       string           `json:"color,omitempty"`
	Description string           `json:"description"`
	Snapshot    arrayinput.Array `json:"snapshot"`
}

// nonNil keeps empty arrays encoded as [] rather than null
func nonNil(a arrayinput.Array) arrayinput.Array {
	if a == nil {
		return arrayinput.Array{}
	}
	return a
}

func createSummary(plan *scene.Plan) *SummaryOutput {
	return &SummaryOutput{
		Algorithm:   plan.Name,
		Scene:       plan.Scene,
		Input:       nonNil(plan.Input),
		Output:      nonNil(plan.Output),
		StepCount:   len(plan.Steps),
		Comparisons: plan.Comparisons,
		Swaps:       plan.Swaps,
		Shifts:      plan.Shifts,
	}
}

func createStepOutputs(steps []scene.Step) []*StepOutput {
	outputs := make([]*StepOutput, 0, len(steps))
	for i, s := range steps {
		outputs = append(outputs, &StepOutput{
			Index:       i,
			Op:          string(s.Op),
			Line:        s.Line,
			Pointer:     s.Pointer,
			Target:      s.Index,
			Other:       s.Other,
			Outcome:     s.Outcome,
			Key:         s.Key,
			Color:       s.Color,
			Description: s.Describe(),
			Snapshot:    nonNil(s.Snapshot),
		})
	}
	return outputs
}
