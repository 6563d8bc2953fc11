package engine

import (
	"linegraph/models"
	"linegraph/utils"
)

// Range holds the extremes of a dataset, the numbers learners look for in the first step.
type Range struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Extrema scans points for their range. ok is false when there are no points.
func Extrema(points []models.DataPoint) (r Range, ok bool) {
	for i, p := range points {
		if i == 0 {
			r = Range{p.X(), p.X(), p.Y(), p.Y()}
			continue
		}
		r.MinX = min(r.MinX, p.X())
		r.MaxX = max(r.MaxX, p.X())
		r.MinY = min(r.MinY, p.Y())
		r.MaxY = max(r.MaxY, p.Y())
	}
	return r, len(points) > 0
}

// Row is one line of the data table with its range flags.
type Row struct {
	X            string
	Y            string
	XHighlighted bool
	YHighlighted bool
}

// Highlights builds the data table. Values equal to an extreme are flagged, every tie included, but only while
// step is IdentifyRange.
func Highlights(points []models.DataPoint, step models.StepID) []Row {
	rows := make([]Row, len(points))
	r, ok := Extrema(points)
	active := ok && step == models.IdentifyRange
	for i, p := range points {
		rows[i] = Row{
			X: utils.FormatNumber(p.X()),
			Y: utils.FormatNumber(p.Y()),
		}
		if active {
			rows[i].XHighlighted = p.X() == r.MinX || p.X() == r.MaxX
			rows[i].YHighlighted = p.Y() == r.MinY || p.Y() == r.MaxY
		}
	}
	return rows
}
