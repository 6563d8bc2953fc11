package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	ds "github.com/starfederation/datastar-go/datastar"

	"linegraph/engine"
	"linegraph/events"
	"linegraph/lesson"
	"linegraph/web"
)

// Lesson renders the dataset menu and the step-by-step graphing view.
type Lesson struct {
	templates *template.Template
	registry  *lesson.Registry
	logger    *slog.Logger
}

type datasetSig struct {
	Dataset string `json:"dataset"`
}

// page is everything the lesson templates read.
type page struct {
	State        lesson.State
	SessionQuery string
	Chart        template.HTML
	Table        []engine.Row
	Reminder     bool
}

func NewLesson(registry *lesson.Registry, logger *slog.Logger) (*Lesson, error) {
	templates, err := template.New("").ParseFS(web.Templates, "templates/lesson/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Lesson{
		templates: templates,
		registry:  registry,
		logger:    logger,
	}, nil
}

func (l *Lesson) Templates() *template.Template {
	return l.templates
}

func (l *Lesson) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"POST /select": l.SelectHandler,
		"POST /next":   l.stepHandler("next", (*lesson.Session).Next),
		"POST /back":   l.stepHandler("back", (*lesson.Session).Back),
		"POST /reset":  l.stepHandler("reset", (*lesson.Session).Reset),
		"POST /menu":   l.stepHandler("menu", (*lesson.Session).Menu),
	}
}

func (l *Lesson) Page(c Client) (any, error) {
	return l.page(c)
}

func (l *Lesson) Attach(c Client) func() {
	_, detach := l.registry.Attach(c.ID)
	return detach
}

func (l *Lesson) page(c Client) (*page, error) {
	session, ok := l.registry.Lookup(c.ID)
	if !ok {
		// Don't register a session for every page load; the stream does that.
		return &page{State: lesson.MenuState(l.registry.Catalog()), SessionQuery: c.Query}, nil
	}
	p := &page{State: session.State(), SessionQuery: c.Query}
	if p.State.View != lesson.GraphingView {
		return p, nil
	}

	scene, err := session.Scene()
	if errors.Is(err, engine.ErrNotShowing) {
		// Went back to the menu mid-render; the navigation event that follows repaints.
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	chart, err := engine.SVG(scene)
	if err != nil {
		return nil, err
	}
	p.Chart = chart
	p.Table = scene.Table
	p.Reminder = scene.Reminder
	return p, nil
}

// OnConnect paints the whole app for a freshly opened stream.
func (l *Lesson) OnConnect(sse *ds.ServerSentEventGenerator, c Client) error {
	return l.patch(sse, c, "app")
}

// OnEvent repaints the app after navigation, and only the chart on animation frames.
func (l *Lesson) OnEvent(sse *ds.ServerSentEventGenerator, c Client, event *events.Event) error {
	switch event.Kind {
	case events.Navigated:
		return l.patch(sse, c, "app")
	case events.Frame:
		return l.patch(sse, c, "chart")
	}
	return nil
}

func (l *Lesson) patch(sse *ds.ServerSentEventGenerator, c Client, name string) error {
	p, err := l.page(c)
	if err != nil {
		return err
	}
	if name != "app" && p.State.View != lesson.GraphingView {
		return nil
	}

	var buf strings.Builder
	if err := l.templates.ExecuteTemplate(&buf, name, p); err != nil {
		return err
	}
	return sse.PatchElements(buf.String())
}

// SelectHandler starts graphing the dataset named by the $dataset signal.
func (l *Lesson) SelectHandler(w http.ResponseWriter, r *http.Request) {
	var sig datasetSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		l.logger.Warn("web.signals", "err", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	l.respond(w, r, "select", func(s *lesson.Session) error {
		return s.Select(sig.Dataset)
	})
}

func (l *Lesson) stepHandler(action string, apply func(*lesson.Session) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l.respond(w, r, action, apply)
	}
}

func (l *Lesson) respond(w http.ResponseWriter, r *http.Request, action string, apply func(*lesson.Session) error) {
	c := clientFor(w, r)
	if err := apply(l.registry.Get(c.ID)); err != nil {
		l.logger.Warn("web.action", "action", action, "session", c.ID, "err", err)
		if errors.Is(err, lesson.ErrUnknownDataset) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sse := ds.NewSSE(w, r)
	if err := l.patch(sse, c, "app"); err != nil {
		l.logger.Error("web.patch", "action", action, "session", c.ID, "err", err)
	}
}
