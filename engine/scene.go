package engine

import (
	"fmt"

	"linegraph/models"
	"linegraph/scale"
	"linegraph/utils"
)

const (
	gridColour   = "#f1f5f9"
	axisColour   = "#475569"
	tickColour   = "#64748b"
	labelColour  = "#1e293b"
	titleColour  = "#0f172a"
	markerColour = "#4f46e5"
	rulerColour  = "#6366f1"
	pulseColour  = "#fbbf24"

	axisWidth   = 2.5
	tickWidth   = 2.0
	tickLength  = 5.0
	markerSize  = 6.0
	lineWidth   = 3.0
	rulerWidth  = 2.0
	rulerDash   = "4"
	rulerAlpha  = 0.4
	pulseRadius = 4.0
	pulseAlpha  = 0.8

	tickFontSize  = 14.0
	labelFontSize = 16.0
	titleFontSize = 20.0
	titleBaseline = 35.0
)

type Axis string

const (
	XAxis Axis = "x"
	YAxis Axis = "y"
)

type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
	Dash           string
	Cap            string
}

type Text struct {
	X, Y    float64
	Content string
	Anchor  string
	Size    float64
	Weight  string
	Fill    string
	// Rotate is applied around (X, Y) when non-zero.
	Rotate float64
}

// Pulse is the one-shot highlight on the most recently revealed tick.
type Pulse struct {
	CX, CY  float64
	R       float64
	Fill    string
	Opacity float64
}

// Tick is one graduation on an axis. Index follows the reveal order: every y tick, then every x tick.
type Tick struct {
	Index   int
	Axis    Axis
	Value   float64
	Mark    Line
	Label   Text
	Visible bool
	Pulse   *Pulse
}

// Opacity is 1 for revealed ticks and 0 for hidden ones, hidden ticks are still laid out.
func (t Tick) Opacity() float64 {
	return utils.BoolToFloat(t.Visible)
}

// Marker is a plotted point drawn as a cross.
type Marker struct {
	Index int
	Value models.DataPoint
	X, Y  float64
	// Current is the point being plotted right now. It carries the ruler lines.
	Current bool
	Strokes [2]Line
	Ruler   []Line
	// RulerOpacity applies to the whole ruler group.
	RulerOpacity float64
}

// Scene is a complete declarative drawing of the chart for one step and animation frame.
type Scene struct {
	Width, Height float64
	Step          models.StepID
	Layers        LayerSet

	Grid       []Line
	Axes       []Line
	Ticks      []Tick
	AxisLabels []Text
	Markers    []Marker
	Segments   []Line
	Title      *Text
	// Reminder is the "numbers go on the lines" note shown while axes are being numbered.
	Reminder bool

	Table []Row
}

// Frame is the animation state a scene is composed for. Use Inactive for a reveal that isn't running.
type Frame struct {
	Step         models.StepID
	TickCounter  int
	PointCounter int
}

// Compose lays out the chart for dataset at frame. It is pure: the same inputs always give the same scene.
func Compose(dataset *models.Dataset, frame Frame) (*Scene, error) {
	if !frame.Step.Valid() {
		return nil, fmt.Errorf("compose: invalid step %d", frame.Step)
	}
	mapper, err := scale.New(dataset.Config())
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", dataset.ID(), err)
	}
	xTicks, err := mapper.XTicks()
	if err != nil {
		return nil, fmt.Errorf("compose %s: x axis: %w", dataset.ID(), err)
	}
	yTicks, err := mapper.YTicks()
	if err != nil {
		return nil, fmt.Errorf("compose %s: y axis: %w", dataset.ID(), err)
	}

	cfg := dataset.Config()
	step := frame.Step
	layers := VisibleLayers(step)
	points := dataset.Points()

	scene := &Scene{
		Width:    cfg.Width(),
		Height:   cfg.Height(),
		Step:     step,
		Layers:   layers,
		Reminder: step == models.DrawAxes,
		Table:    Highlights(points, step),
	}

	if layers.Has(GridLayer) {
		scene.Grid = gridLines(mapper, xTicks, yTicks)
	}
	if layers.Has(AxesLayer) {
		scene.Axes = axisLines(mapper)
		scene.Ticks = ticks(mapper, xTicks, yTicks, step, frame.TickCounter)
	}
	if layers.Has(AxisLabelsLayer) {
		scene.AxisLabels = axisLabels(mapper)
	}
	if layers.Has(PointsLayer) {
		scene.Markers = markers(mapper, points, step, frame.PointCounter)
	}
	if layers.Has(LinesLayer) {
		scene.Segments = segments(mapper, points)
	}
	if layers.Has(TitleLayer) {
		scene.Title = &Text{
			X:       cfg.Width() / 2,
			Y:       titleBaseline,
			Content: cfg.MainTitle(),
			Anchor:  "middle",
			Size:    titleFontSize,
			Weight:  "bold",
			Fill:    titleColour,
		}
	}

	return scene, nil
}

// TotalTicks is the number of ticks the axis reveal walks through.
func TotalTicks(dataset *models.Dataset) (int, error) {
	cfg := dataset.Config()
	xTicks, err := scale.Ticks(cfg.XMax(), cfg.XInterval())
	if err != nil {
		return 0, err
	}
	yTicks, err := scale.Ticks(cfg.YMax(), cfg.YInterval())
	if err != nil {
		return 0, err
	}
	return len(xTicks) + len(yTicks), nil
}

// gridLines are drawn first so everything else sits on top of them.
func gridLines(m *scale.Mapper, xTicks, yTicks []float64) []Line {
	lines := make([]Line, 0, len(xTicks)+len(yTicks))
	for _, tick := range yTicks {
		y := m.Y(tick)
		lines = append(lines, Line{X1: m.Left(), Y1: y, X2: m.Right(), Y2: y, Stroke: gridColour, Width: 1})
	}
	for _, tick := range xTicks {
		x := m.X(tick)
		lines = append(lines, Line{X1: x, Y1: m.Top(), X2: x, Y2: m.Bottom(), Stroke: gridColour, Width: 1})
	}
	return lines
}

func axisLines(m *scale.Mapper) []Line {
	return []Line{
		{X1: m.Left(), Y1: m.Top(), X2: m.Left(), Y2: m.Bottom(), Stroke: axisColour, Width: axisWidth},
		{X1: m.Left(), Y1: m.Bottom(), X2: m.Right(), Y2: m.Bottom(), Stroke: axisColour, Width: axisWidth},
	}
}

func ticks(m *scale.Mapper, xTicks, yTicks []float64, step models.StepID, counter int) []Tick {
	out := make([]Tick, 0, len(xTicks)+len(yTicks))
	revealed := func(index int) bool {
		return step > models.DrawAxes || (step == models.DrawAxes && index < counter)
	}
	pulse := func(index int, cx, cy float64) *Pulse {
		if step != models.DrawAxes || index != counter-1 {
			return nil
		}
		return &Pulse{CX: cx, CY: cy, R: pulseRadius, Fill: pulseColour, Opacity: pulseAlpha}
	}

	for i, tick := range yTicks {
		y := m.Y(tick)
		out = append(out, Tick{
			Index: i,
			Axis:  YAxis,
			Value: tick,
			Mark:  Line{X1: m.Left() - tickLength, Y1: y, X2: m.Left(), Y2: y, Stroke: axisColour, Width: tickWidth},
			Label: Text{
				X: m.Left() - 12, Y: y + 5,
				Content: utils.FormatNumber(tick),
				Anchor:  "end", Size: tickFontSize, Weight: "600", Fill: tickColour,
			},
			Visible: revealed(i),
			Pulse:   pulse(i, m.Left(), y),
		})
	}
	for i, tick := range xTicks {
		index := i + len(yTicks)
		x := m.X(tick)
		out = append(out, Tick{
			Index: index,
			Axis:  XAxis,
			Value: tick,
			Mark:  Line{X1: x, Y1: m.Bottom(), X2: x, Y2: m.Bottom() + tickLength, Stroke: axisColour, Width: tickWidth},
			Label: Text{
				X: x, Y: m.Bottom() + 24,
				Content: utils.FormatNumber(tick),
				Anchor:  "middle", Size: tickFontSize, Weight: "600", Fill: tickColour,
			},
			Visible: revealed(index),
			Pulse:   pulse(index, x, m.Bottom()),
		})
	}
	return out
}

func axisLabels(m *scale.Mapper) []Text {
	cfg := m.Config()
	return []Text{
		{
			X: cfg.Margin().Left / 3, Y: cfg.Height() / 2,
			Content: cfg.YLabel(),
			Anchor:  "middle", Size: labelFontSize, Weight: "bold", Fill: labelColour,
			Rotate: -90,
		},
		{
			X: m.Left() + m.PlotWidth()/2, Y: cfg.Height() - 20,
			Content: cfg.XLabel(),
			Anchor:  "middle", Size: labelFontSize, Weight: "bold", Fill: labelColour,
		},
	}
}

func markers(m *scale.Mapper, points []models.DataPoint, step models.StepID, counter int) []Marker {
	var out []Marker
	for i, p := range points {
		current := step > models.PlotPoints || (step == models.PlotPoints && i == counter)
		permanent := step > models.PlotPoints || (step == models.PlotPoints && i < counter)
		if !current && !permanent {
			continue
		}

		x, y := m.X(p.X()), m.Y(p.Y())
		marker := Marker{
			Index:   i,
			Value:   p,
			X:       x,
			Y:       y,
			Current: step == models.PlotPoints && i == counter,
			Strokes: [2]Line{
				{X1: x - markerSize, Y1: y - markerSize, X2: x + markerSize, Y2: y + markerSize, Stroke: markerColour, Width: axisWidth},
				{X1: x - markerSize, Y1: y + markerSize, X2: x + markerSize, Y2: y - markerSize, Stroke: markerColour, Width: axisWidth},
			},
		}
		if marker.Current {
			// read up from the x axis, then across from the y axis
			marker.Ruler = []Line{
				{X1: x, Y1: m.Bottom(), X2: x, Y2: y, Stroke: rulerColour, Width: rulerWidth, Dash: rulerDash},
				{X1: m.Left(), Y1: y, X2: x, Y2: y, Stroke: rulerColour, Width: rulerWidth, Dash: rulerDash},
			}
			marker.RulerOpacity = rulerAlpha
		}
		out = append(out, marker)
	}
	return out
}

// segments joins consecutive points in dataset order.
func segments(m *scale.Mapper, points []models.DataPoint) []Line {
	if len(points) < 2 {
		return nil
	}
	out := make([]Line, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		out = append(out, Line{
			X1: m.X(a.X()), Y1: m.Y(a.Y()),
			X2: m.X(b.X()), Y2: m.Y(b.Y()),
			Stroke: markerColour, Width: lineWidth, Cap: "round",
		})
	}
	return out
}
