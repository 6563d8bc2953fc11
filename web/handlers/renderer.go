package handlers

import (
	"html/template"
	"net/http"

	ds "github.com/starfederation/datastar-go/datastar"

	"linegraph/events"
)

// Renderer is a UI the Server hosts: it owns its templates and action handlers, and knows how to patch the
// page when something happens to a client's session.
type Renderer interface {
	Templates() *template.Template
	Handlers() map[string]http.HandlerFunc
	Page(c Client) (any, error)
	// Attach marks c's session as on screen until detach is called.
	Attach(c Client) (detach func())
	OnConnect(sse *ds.ServerSentEventGenerator, c Client) error
	OnEvent(sse *ds.ServerSentEventGenerator, c Client, event *events.Event) error
}
