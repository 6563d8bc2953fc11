package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linegraph/models"
)

func render(t *testing.T, scene *Scene) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, RenderSVG(&buf, scene))
	return buf.String()
}

func TestRenderBlankChart(t *testing.T) {
	out := render(t, compose(t, beanGrowth(), models.IdentifyRange, Inactive, Inactive))

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 500"`))
	assert.Contains(t, out, `data-step="identify-range"`)
	assert.NotContains(t, out, "<line")
	assert.NotContains(t, out, "<text")
}

func TestRenderDrawAxesFrame(t *testing.T) {
	out := render(t, compose(t, beanGrowth(), models.DrawAxes, 2, Inactive))

	assert.Contains(t, out, `class="grid-lines"`)
	assert.Contains(t, out, `<line x1="80" y1="60" x2="80" y2="420" stroke="#475569" stroke-width="2.5"/>`)
	assert.Equal(t, 2, strings.Count(out, `opacity="1"`))
	assert.Equal(t, 11, strings.Count(out, `opacity="0"`))
	assert.Equal(t, 1, strings.Count(out, `<animate attributeName="r" values="4;8;4" dur="0.6s" repeatCount="1"/>`))
	assert.NotContains(t, out, `class="labels"`)
}

func TestRenderPlottingFrame(t *testing.T) {
	out := render(t, compose(t, springExtension(), models.PlotPoints, Inactive, 2))

	assert.Equal(t, 3, strings.Count(out, `class="marker"`))
	assert.Equal(t, 1, strings.Count(out, `class="ruler" opacity="0.4"`))
	assert.Contains(t, out, `stroke-dasharray="4"`)
	assert.Contains(t, out, `transform="rotate(-90, 26.67, 250)"`)
	assert.NotContains(t, out, `class="lines"`)
}

func TestRenderFinishedChart(t *testing.T) {
	out := render(t, compose(t, springExtension(), models.AddTitle, Inactive, Inactive))

	assert.Equal(t, 5, strings.Count(out, `stroke-linecap="round"`))
	assert.Contains(t, out, ">Graph showing spring extension against force</text>")
	assert.NotContains(t, out, `class="ruler"`)
	assert.NotContains(t, out, "<animate")
}
