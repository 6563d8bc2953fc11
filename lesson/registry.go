package lesson

import (
	"log/slog"
	"sync"

	"linegraph/clock"
	"linegraph/events"
	"linegraph/store"
)

type entry struct {
	session *Session
	viewers int
	// pinned sessions are held by a driver and outlive their views.
	pinned bool
}

// Registry hands out one Session per client id, creating them on first use. A session only animates while a
// view is attached; when the last view detaches its animation stops and, unless pinned, it is forgotten.
type Registry struct {
	catalog *store.Catalog
	clock   clock.Clock
	hub     *events.EventHub
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewRegistry(catalog *store.Catalog, c clock.Clock, hub *events.EventHub, logger *slog.Logger) *Registry {
	return &Registry{
		catalog:  catalog,
		clock:    c,
		hub:      hub,
		logger:   logger,
		sessions: make(map[string]*entry),
	}
}

func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(id).session
}

// Lookup returns the session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return e.session, true
}

// Pin returns the session for id and keeps it registered while no view is attached.
func (r *Registry) Pin(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.getLocked(id)
	e.pinned = true
	return e.session
}

// Attach records a view of session id and resumes its animation. Call detach when the view goes away; it is
// safe to call more than once.
func (r *Registry) Attach(id string) (session *Session, detach func()) {
	r.mu.Lock()
	e := r.getLocked(id)
	e.viewers++
	if e.viewers == 1 {
		if err := e.session.Resume(); err != nil {
			r.logger.Error("lesson.resume", "session", id, "err", err)
		}
	}
	r.mu.Unlock()

	var once sync.Once
	return e.session, func() {
		once.Do(func() { r.detach(id, e) })
	}
}

func (r *Registry) detach(id string, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.viewers--
	if e.viewers > 0 {
		return
	}
	e.session.Suspend()
	if !e.pinned && r.sessions[id] == e {
		delete(r.sessions, id)
		r.logger.Debug("lesson.session.drop", "session", id)
	}
}

func (r *Registry) getLocked(id string) *entry {
	if e, ok := r.sessions[id]; ok {
		return e
	}
	e := &entry{session: NewSession(id, r.catalog, r.clock, r.hub, r.logger)}
	// Nothing shows it yet.
	e.session.suspended = true
	r.sessions[id] = e
	r.logger.Debug("lesson.session.new", "session", id)
	return e
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) Catalog() *store.Catalog {
	return r.catalog
}

func (r *Registry) Hub() *events.EventHub {
	return r.hub
}

// Close stops every session's animations.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.sessions {
		e.session.Close()
	}
}
