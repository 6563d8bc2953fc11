package engine

import "linegraph/models"

// LayerKind is one visual layer of the chart.
type LayerKind uint8

const (
	GridLayer LayerKind = iota
	AxesLayer
	AxisLabelsLayer
	PointsLayer
	LinesLayer
	TitleLayer
	RangeHighlightLayer
)

var layerNames = [...]string{
	"grid",
	"axes",
	"axis-labels",
	"points",
	"lines",
	"title",
	"range-highlight",
}

func (k LayerKind) String() string {
	if int(k) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[k]
}

// layerThresholds is the first step at which each accumulating layer appears.
var layerThresholds = map[LayerKind]models.StepID{
	GridLayer:       models.ChooseInterval,
	AxesLayer:       models.DrawAxes,
	AxisLabelsLayer: models.LabelAxes,
	PointsLayer:     models.PlotPoints,
	LinesLayer:      models.JoinPoints,
	TitleLayer:      models.AddTitle,
}

// LayerSet is a bitset of LayerKind.
type LayerSet uint16

func (s LayerSet) Has(k LayerKind) bool {
	return s&(1<<k) != 0
}

func (s LayerSet) With(k LayerKind) LayerSet {
	return s | 1<<k
}

func (s LayerSet) Kinds() []LayerKind {
	var kinds []LayerKind
	for k := GridLayer; k <= RangeHighlightLayer; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// VisibleLayers returns the layers drawn at step. Layers accumulate as the step increases, except the range
// highlight which only belongs to the first step.
func VisibleLayers(step models.StepID) LayerSet {
	var set LayerSet
	for kind, threshold := range layerThresholds {
		if step >= threshold {
			set = set.With(kind)
		}
	}
	if step == models.IdentifyRange {
		set = set.With(RangeHighlightLayer)
	}
	return set
}
