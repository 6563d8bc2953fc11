package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linegraph/models"
	"linegraph/scale"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	var ids []string
	for _, d := range c.Datasets() {
		ids = append(ids, d.ID())
	}
	assert.Equal(t, []string{"bean-growth", "light-bulb", "spring-extension", "cooling-water"}, ids)
	assert.Equal(t, "bean-growth", c.First().ID())

	steps := c.Steps()
	require.Len(t, steps, models.StepCount)
	for i, s := range steps {
		assert.Equal(t, models.StepID(i), s.ID())
		assert.NotEmpty(t, s.Title())
		assert.NotEmpty(t, s.Tip())
	}
	assert.Equal(t, "3. Draw & Number Axes", c.Step(models.DrawAxes).Title())
	assert.Nil(t, c.Step(models.StepID(7)))
}

func TestDefaultCatalogBeanGrowth(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	bean, ok := c.Dataset("bean-growth")
	require.True(t, ok)
	assert.Equal(t, 11, bean.Len())

	cfg := bean.Config()
	assert.Equal(t, 600.0, cfg.Width())
	assert.Equal(t, models.Margin{Top: 60, Right: 40, Bottom: 80, Left: 80}, cfg.Margin())
	assert.Equal(t, "Height (cm)", cfg.YLabel())

	m, err := scale.New(cfg)
	require.NoError(t, err)
	xTicks, err := m.XTicks()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, xTicks)
	yTicks, err := m.YTicks()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5, 10, 15, 20, 25, 30}, yTicks)
}

func TestDefaultCatalogSpring(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	spring, ok := c.Dataset("spring-extension")
	require.True(t, ok)
	assert.Equal(t, 6, spring.Len())
	assert.Equal(t, 2.5, spring.Config().YInterval())
	assert.Equal(t, 12.5, spring.Points()[5].Y())

	_, ok = c.Dataset("missing")
	assert.False(t, ok)
}

const validSteps = `
steps:
  - {id: identify-range, title: a}
  - {id: choose-interval, title: b}
  - {id: draw-axes, title: c}
  - {id: label-axes, title: d}
  - {id: plot-points, title: e}
  - {id: join-points, title: f}
  - {id: add-title, title: g}
`

func TestParseRejectsBadCatalogs(t *testing.T) {
	tests := map[string]string{
		"zero interval": `
defaults: {width: 600, height: 500, margin: {top: 60, right: 40, bottom: 80, left: 80}}
datasets:
  - id: a
    points: [[0, 0]]
    chart: {x_interval: 0, y_interval: 1, x_max: 1, y_max: 1}
` + validSteps,
		"zero max": `
defaults: {width: 600, height: 500}
datasets:
  - id: a
    points: [[0, 0]]
    chart: {x_interval: 1, y_interval: 1, x_max: 0, y_max: 1}
` + validSteps,
		"no points": `
defaults: {width: 600, height: 500}
datasets:
  - id: a
    chart: {x_interval: 1, y_interval: 1, x_max: 1, y_max: 1}
` + validSteps,
		"duplicate": `
defaults: {width: 600, height: 500}
datasets:
  - {id: a, points: [[0, 0]], chart: {x_interval: 1, y_interval: 1, x_max: 1, y_max: 1}}
  - {id: a, points: [[0, 0]], chart: {x_interval: 1, y_interval: 1, x_max: 1, y_max: 1}}
` + validSteps,
		"missing steps": `
defaults: {width: 600, height: 500}
datasets:
  - {id: a, points: [[0, 0]], chart: {x_interval: 1, y_interval: 1, x_max: 1, y_max: 1}}
steps:
  - {id: identify-range}
`,
		"steps out of order": `
defaults: {width: 600, height: 500}
datasets:
  - {id: a, points: [[0, 0]], chart: {x_interval: 1, y_interval: 1, x_max: 1, y_max: 1}}
steps:
  - {id: choose-interval}
  - {id: identify-range}
  - {id: draw-axes}
  - {id: label-axes}
  - {id: plot-points}
  - {id: join-points}
  - {id: add-title}
`,
		"not yaml": `datasets: [`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseMarginOverride(t *testing.T) {
	doc := `
defaults: {width: 600, height: 500, margin: {top: 60, right: 40, bottom: 80, left: 80}}
datasets:
  - id: a
    points: [[0, 0], [1, 1]]
    chart: {width: 400, margin: {top: 10, right: 10, bottom: 10, left: 10}, x_interval: 1, y_interval: 1, x_max: 1, y_max: 1}
` + validSteps
	c, err := Parse([]byte(doc))
	require.NoError(t, err)

	cfg := c.First().Config()
	assert.Equal(t, 400.0, cfg.Width())
	assert.Equal(t, 500.0, cfg.Height())
	assert.Equal(t, 10.0, cfg.Margin().Left)
}
