package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepOrdering(t *testing.T) {
	assert.Equal(t, 7, StepCount)
	assert.True(t, IdentifyRange < ChooseInterval)
	assert.True(t, PlotPoints < JoinPoints)
	assert.Equal(t, StepID(6), AddTitle)
	assert.False(t, StepID(7).Valid())
	assert.False(t, StepID(-1).Valid())
}

func TestParseStepID(t *testing.T) {
	tests := []struct {
		in   string
		want StepID
	}{
		{"draw-axes", DrawAxes},
		{"0", IdentifyRange},
		{"6", AddTitle},
		{"plot-points", PlotPoints},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStepID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"7", "-1", "plot", ""} {
		_, err := ParseStepID(bad)
		assert.Error(t, err, bad)
	}
}

func TestDatasetPointsAreCopied(t *testing.T) {
	points := []DataPoint{NewDataPoint(0, 0), NewDataPoint(1, 2)}
	ds := NewDataset("id", "name", "desc", "icon", "colour", points, ChartConfig{})

	points[0] = NewDataPoint(9, 9)
	assert.Equal(t, 0.0, ds.Points()[0].X())

	got := ds.Points()
	got[1] = NewDataPoint(5, 5)
	assert.Equal(t, 2.0, ds.Points()[1].Y())
	assert.Equal(t, 2, ds.Len())
}
