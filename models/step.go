package models

import (
	"fmt"
	"strconv"
)

// StepID orders the seven stages of drawing a line graph. Layers are shown by comparing against these values, so
// the order matters.
type StepID int

const (
	IdentifyRange StepID = iota
	ChooseInterval
	DrawAxes
	LabelAxes
	PlotPoints
	JoinPoints
	AddTitle
)

const (
	FirstStep = IdentifyRange
	LastStep  = AddTitle
	StepCount = int(LastStep) + 1
)

var stepNames = [...]string{
	"identify-range",
	"choose-interval",
	"draw-axes",
	"label-axes",
	"plot-points",
	"join-points",
	"add-title",
}

func (s StepID) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s StepID) String() string {
	if !s.Valid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// ParseStepID accepts either the ordinal or the kebab-case name.
func ParseStepID(s string) (StepID, error) {
	for i, name := range stepNames {
		if name == s {
			return StepID(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && StepID(n).Valid() {
		return StepID(n), nil
	}
	return 0, fmt.Errorf("unknown step %q", s)
}

// Step is the instruction text shown alongside the chart.
type Step struct {
	id          StepID
	title       string
	description string
	tip         string
}

func NewStep(id StepID, title, description, tip string) *Step {
	return &Step{
		id,
		title,
		description,
		tip,
	}
}

func (s *Step) ID() StepID {
	return s.id
}

func (s *Step) Title() string {
	return s.title
}

func (s *Step) Description() string {
	return s.description
}

func (s *Step) Tip() string {
	return s.tip
}
