package drivers

import (
	"errors"
	"log/slog"
	"sync"

	"linegraph/lesson"
)

var discard = slog.New(slog.DiscardHandler)

// recorder is a Navigator that remembers what it was told and refuses unknown datasets.
type recorder struct {
	mu   sync.Mutex
	cmds []lesson.Command
}

func (r *recorder) Apply(cmd lesson.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cmd.Action == lesson.ActionSelect && cmd.Dataset == "missing" {
		return errors.New("unknown dataset")
	}
	r.cmds = append(r.cmds, cmd)
	return nil
}

func (r *recorder) actions() []lesson.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]lesson.Action, len(r.cmds))
	for i, cmd := range r.cmds {
		actions[i] = cmd.Action
	}
	return actions
}
