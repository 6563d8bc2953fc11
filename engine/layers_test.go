package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linegraph/models"
)

func TestVisibleLayersAccumulate(t *testing.T) {
	for step := models.FirstStep; step <= models.LastStep; step++ {
		set := VisibleLayers(step)
		for kind, threshold := range layerThresholds {
			assert.Equal(t, step >= threshold, set.Has(kind), "step %s layer %s", step, kind)
		}
	}
}

func TestVisibleLayersAtDrawAxes(t *testing.T) {
	set := VisibleLayers(models.DrawAxes)
	assert.Equal(t, []LayerKind{GridLayer, AxesLayer}, set.Kinds())
}

func TestRangeHighlightIsExclusive(t *testing.T) {
	assert.True(t, VisibleLayers(models.IdentifyRange).Has(RangeHighlightLayer))
	for step := models.ChooseInterval; step <= models.LastStep; step++ {
		assert.False(t, VisibleLayers(step).Has(RangeHighlightLayer), step.String())
	}
	assert.Equal(t, []LayerKind{RangeHighlightLayer}, VisibleLayers(models.IdentifyRange).Kinds())
}

func TestVisibleLayersAtTitle(t *testing.T) {
	set := VisibleLayers(models.AddTitle)
	assert.Equal(t, []LayerKind{GridLayer, AxesLayer, AxisLabelsLayer, PointsLayer, LinesLayer, TitleLayer}, set.Kinds())
}
