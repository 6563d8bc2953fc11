package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"regexp"
)

const (
	clientIDCookieName = "client-id"
	sessionQueryParam  = "session"
)

var sessionNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Client identifies whose lesson a request acts on. Query is set when the session was named in the URL, so
// links rendered back to the client keep it.
type Client struct {
	ID    string
	Query string
}

// clientFor prefers an explicit ?session= name, letting several devices share one lesson, and falls back to
// the per-browser cookie.
func clientFor(w http.ResponseWriter, r *http.Request) Client {
	if name := r.URL.Query().Get(sessionQueryParam); sessionNamePattern.MatchString(name) {
		return Client{ID: name, Query: name}
	}
	return Client{ID: getClientID(w, r)}
}

// getClientID returns a stable identifier for the client using a cookie.
// If the cookie is missing, it generates a new random identifier and sets it.
func getClientID(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(clientIDCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	identifier := r.RemoteAddr
	var randomBytes [16]byte
	if _, err := rand.Read(randomBytes[:]); err == nil {
		identifier = hex.EncodeToString(randomBytes[:])
	}
	http.SetCookie(w, &http.Cookie{
		Name:     clientIDCookieName,
		Value:    identifier,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return identifier
}
