// Package engine turns a dataset and the current step into a chart drawing and runs the two reveal animations:
// axis numbering while drawing axes, and point plotting while plotting points.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"linegraph/clock"
	"linegraph/models"
)

var ErrNotShowing = errors.New("engine has no dataset")

// Engine owns the animation state for one displayed chart. Show drives step and dataset transitions; Close
// tears everything down. onFrame is called after every animation tick, from the clock's goroutine.
type Engine struct {
	clock   clock.Clock
	onFrame func()
	logger  *slog.Logger

	mu      sync.Mutex
	dataset *models.Dataset
	step    models.StepID
	ticks   *Reveal
	points  *Reveal
}

func New(c clock.Clock, logger *slog.Logger, onFrame func()) *Engine {
	if onFrame == nil {
		onFrame = func() {}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		clock:   c,
		onFrame: onFrame,
		logger:  logger,
	}
}

// Show displays dataset at step. Entering DrawAxes or PlotPoints restarts that step's reveal from the beginning,
// leaving it stops the reveal. A new dataset restarts whatever is running with the new dataset's counts.
func (e *Engine) Show(dataset *models.Dataset, step models.StepID) error {
	if dataset == nil {
		return errors.New("show: nil dataset")
	}
	if !step.Valid() {
		return fmt.Errorf("show: invalid step %d", step)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	changed := e.dataset != dataset
	if changed {
		totalTicks, err := TotalTicks(dataset)
		if err != nil {
			return fmt.Errorf("show %s: %w", dataset.ID(), err)
		}
		e.stopLocked()
		e.dataset = dataset
		e.ticks = NewTickReveal(e.clock, totalTicks, e.onFrame)
		e.points = NewPointReveal(e.clock, dataset.Len(), e.onFrame)
		e.logger.Debug("engine.dataset", "dataset", dataset.ID(), "ticks", totalTicks, "points", dataset.Len())
	}

	prev := e.step
	e.step = step
	e.transition(e.ticks, models.DrawAxes, prev, changed)
	e.transition(e.points, models.PlotPoints, prev, changed)
	return nil
}

func (e *Engine) transition(reveal *Reveal, animated, prev models.StepID, changed bool) {
	switch {
	case e.step != animated:
		if reveal.Active() {
			reveal.Stop()
			e.logger.Debug("engine.reveal.stop", "step", animated.String())
		}
	case changed || prev != animated || !reveal.Active():
		reveal.Start()
		e.logger.Debug("engine.reveal.start", "step", animated.String())
	}
}

// Close stops both reveals and forgets the dataset. It's safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.dataset = nil
	e.step = models.FirstStep
}

func (e *Engine) stopLocked() {
	if e.ticks != nil {
		e.ticks.Stop()
	}
	if e.points != nil {
		e.points.Stop()
	}
}

// Frame reports the current step and both reveal counters.
func (e *Engine) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameLocked()
}

func (e *Engine) frameLocked() Frame {
	frame := Frame{Step: e.step, TickCounter: Inactive, PointCounter: Inactive}
	if e.ticks != nil {
		frame.TickCounter = e.ticks.Counter()
	}
	if e.points != nil {
		frame.PointCounter = e.points.Counter()
	}
	return frame
}

// Scene composes the drawing for the current frame.
func (e *Engine) Scene() (*Scene, error) {
	e.mu.Lock()
	dataset := e.dataset
	frame := e.frameLocked()
	e.mu.Unlock()

	if dataset == nil {
		return nil, ErrNotShowing
	}
	return Compose(dataset, frame)
}
