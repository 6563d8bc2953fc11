package drivers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"linegraph/config"
	"linegraph/lesson"
)

var ErrInvalidScript = errors.New("invalid replay script")

// minLoopPass is the shortest time one pass of a looping replay may take, so a script with no delays (or
// speed 0) still yields between passes.
const minLoopPass = time.Second

// Cue is one scripted command, applied After the previous one.
type Cue struct {
	After          time.Duration `yaml:"after"`
	lesson.Command `yaml:",inline"`
}

// ParseScript reads a YAML list of cues:
//
//	- {after: 1s, action: select, dataset: bean-growth}
//	- {after: 4s, action: next}
func ParseScript(data []byte) ([]Cue, error) {
	var cues []Cue
	if err := yaml.Unmarshal(data, &cues); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if len(cues) == 0 {
		return nil, fmt.Errorf("%w: no cues", ErrInvalidScript)
	}
	for i, cue := range cues {
		if cue.After < 0 {
			return nil, fmt.Errorf("%w: cue %d: negative delay %s", ErrInvalidScript, i, cue.After)
		}
		if err := cue.Validate(); err != nil {
			return nil, fmt.Errorf("%w: cue %d: %w", ErrInvalidScript, i, err)
		}
	}
	return cues, nil
}

// Replayer plays a cue script against a session, optionally looping, for kiosk demos and rehearsals.
type Replayer struct {
	*config.ReplayFlags
	navigator Navigator
	logger    *slog.Logger
	cues      []Cue
	after     func(time.Duration) <-chan time.Time
}

func NewReplayer(replayFlags *config.ReplayFlags, navigator Navigator, logger *slog.Logger) *Replayer {
	return &Replayer{
		ReplayFlags: replayFlags,
		navigator:   navigator,
		logger:      logger.With("driver", "replay"),
		after:       time.After,
	}
}

func (r *Replayer) Init() error {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return err
	}
	cues, err := ParseScript(data)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Path, err)
	}
	r.cues = cues
	return nil
}

func (r *Replayer) Run(ctx context.Context) error {
	if r.cues == nil {
		return errors.New("replay: Run before Init")
	}
	if !r.wait(ctx, r.StartDelay) {
		return nil
	}
	for {
		waited, ok := r.playOnce(ctx)
		if !ok {
			return nil
		}
		r.logger.Info("replay.end", "loop", r.Loop)
		if !r.Loop {
			return nil
		}
		if waited < minLoopPass && !r.wait(ctx, minLoopPass-waited) {
			return nil
		}
	}
}

// playOnce returns how long the pass waited in total, and false when ctx ended the run.
func (r *Replayer) playOnce(ctx context.Context) (time.Duration, bool) {
	var waited time.Duration
	for i, cue := range r.cues {
		if r.Speed > 0 {
			delay := time.Duration(float64(cue.After) / r.Speed)
			if !r.wait(ctx, delay) {
				return waited, false
			}
			waited += delay
		}
		if ctx.Err() != nil {
			return waited, false
		}
		if err := r.navigator.Apply(cue.Command); err != nil {
			r.logger.Warn("replay.apply", "cue", i, "action", string(cue.Action), "err", err)
			continue
		}
		r.logger.Debug("replay.apply", "cue", i, "action", string(cue.Action))
	}
	return waited, true
}

func (r *Replayer) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-r.after(d):
		return true
	}
}
