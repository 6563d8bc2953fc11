// Package lesson is the navigation side of the tool: which dataset a learner picked and which step they are on.
// Each Session owns the chart engine for its view and tells subscribers when to redraw.
package lesson

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"linegraph/clock"
	"linegraph/engine"
	"linegraph/events"
	"linegraph/models"
	"linegraph/store"
)

var ErrUnknownDataset = errors.New("unknown dataset")

type View string

const (
	MenuView     View = "menu"
	GraphingView View = "graphing"
)

type Session struct {
	id      string
	catalog *store.Catalog
	hub     *events.EventHub
	logger  *slog.Logger
	engine  *engine.Engine

	mu      sync.Mutex
	view    View
	dataset *models.Dataset
	step    models.StepID
	// suspended sessions keep their place but run no animation until Resume.
	suspended bool
}

func NewSession(id string, catalog *store.Catalog, c clock.Clock, hub *events.EventHub, logger *slog.Logger) *Session {
	logger = logger.With("session", id)
	s := &Session{
		id:      id,
		catalog: catalog,
		hub:     hub,
		logger:  logger,
		view:    MenuView,
		dataset: catalog.First(),
		step:    models.FirstStep,
	}
	s.engine = engine.New(c, logger, func() { s.broadcast(events.Frame) })
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Select starts graphing dataset id from the first step.
func (s *Session) Select(id string) error {
	dataset, ok := s.catalog.Dataset(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDataset, id)
	}

	s.mu.Lock()
	s.dataset = dataset
	s.step = models.FirstStep
	s.view = GraphingView
	err := s.showLocked()
	s.mu.Unlock()

	s.logger.Info("lesson.select", "dataset", id)
	return s.notify(err)
}

func (s *Session) Next() error {
	return s.move(func(step models.StepID) models.StepID {
		return min(step+1, models.LastStep)
	})
}

func (s *Session) Back() error {
	return s.move(func(step models.StepID) models.StepID {
		return max(step-1, models.FirstStep)
	})
}

// Reset goes back to the first step of the same dataset.
func (s *Session) Reset() error {
	return s.move(func(models.StepID) models.StepID {
		return models.FirstStep
	})
}

// GoTo jumps straight to step.
func (s *Session) GoTo(step models.StepID) error {
	if !step.Valid() {
		return fmt.Errorf("go to: invalid step %d", step)
	}
	return s.move(func(models.StepID) models.StepID {
		return step
	})
}

func (s *Session) move(next func(models.StepID) models.StepID) error {
	s.mu.Lock()
	if s.view != GraphingView {
		s.mu.Unlock()
		return nil
	}
	prev := s.step
	s.step = next(s.step)
	var err error
	if s.step != prev {
		err = s.showLocked()
	}
	step := s.step
	s.mu.Unlock()

	if step == prev {
		return err
	}
	s.logger.Debug("lesson.step", "from", prev.String(), "to", step.String())
	return s.notify(err)
}

// Menu leaves the chart, which stops any running animation.
func (s *Session) Menu() error {
	s.mu.Lock()
	s.view = MenuView
	s.engine.Close()
	s.mu.Unlock()

	s.logger.Debug("lesson.menu")
	return s.notify(nil)
}

func (s *Session) showLocked() error {
	if s.suspended {
		return nil
	}
	return s.engine.Show(s.dataset, s.step)
}

// Suspend stops the session's animation when nothing is showing it any more. Navigation still updates the
// session but starts no timers until Resume.
func (s *Session) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suspended {
		return
	}
	s.suspended = true
	s.engine.Close()
	s.logger.Debug("lesson.suspend")
}

// Resume redraws the chart, restarting the current step's animation, once a view is showing the session again.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.suspended {
		return nil
	}
	s.suspended = false
	s.logger.Debug("lesson.resume")
	if s.view != GraphingView {
		return nil
	}
	return s.showLocked()
}

func (s *Session) Suspended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suspended
}

func (s *Session) notify(err error) error {
	if err != nil {
		s.logger.Error("lesson.show", "err", err)
		return err
	}
	s.broadcast(events.Navigated)
	return nil
}

func (s *Session) broadcast(kind events.Kind) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(&events.Event{SessionID: s.id, Kind: kind, Timestamp: int(time.Now().UnixMilli())})
}

// State is a consistent snapshot of what the session is showing.
type State struct {
	View     View
	Dataset  *models.Dataset
	Step     *models.Step
	Datasets []*models.Dataset
	Steps    []*models.Step
}

func (st State) StepNumber() int {
	return int(st.Step.ID()) + 1
}

func (st State) StepCount() int {
	return len(st.Steps)
}

// Progress is the percentage of steps reached, counting the current one.
func (st State) Progress() float64 {
	return float64(st.StepNumber()) / float64(st.StepCount()) * 100
}

func (st State) CanGoBack() bool {
	return st.Step.ID() > models.FirstStep
}

func (st State) CanGoNext() bool {
	return st.Step.ID() < models.LastStep
}

// MenuState is what a client with no session yet sees.
func MenuState(catalog *store.Catalog) State {
	return State{
		View:     MenuView,
		Dataset:  catalog.First(),
		Step:     catalog.Step(models.FirstStep),
		Datasets: catalog.Datasets(),
		Steps:    catalog.Steps(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		View:     s.view,
		Dataset:  s.dataset,
		Step:     s.catalog.Step(s.step),
		Datasets: s.catalog.Datasets(),
		Steps:    s.catalog.Steps(),
	}
}

// Scene is the chart for the current frame. It fails with engine.ErrNotShowing on the menu. A suspended
// session draws its step without animation.
func (s *Session) Scene() (*engine.Scene, error) {
	scene, err := s.engine.Scene()
	if !errors.Is(err, engine.ErrNotShowing) {
		return scene, err
	}

	s.mu.Lock()
	view, dataset, step := s.view, s.dataset, s.step
	s.mu.Unlock()
	if view != GraphingView {
		return nil, err
	}
	return engine.Compose(dataset, engine.Frame{Step: step, TickCounter: engine.Inactive, PointCounter: engine.Inactive})
}

// Frame exposes the engine's animation counters.
func (s *Session) Frame() engine.Frame {
	return s.engine.Frame()
}

func (s *Session) Close() {
	s.engine.Close()
}
