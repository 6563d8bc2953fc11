package lesson

import (
	"fmt"
	"strings"

	"linegraph/models"
)

type Action string

const (
	ActionNext   Action = "next"
	ActionBack   Action = "back"
	ActionReset  Action = "reset"
	ActionMenu   Action = "menu"
	ActionSelect Action = "select"
	ActionGoTo   Action = "goto"
)

// Command is one navigation request from a driver or a script.
type Command struct {
	Action  Action `yaml:"action"`
	Dataset string `yaml:"dataset,omitempty"`
	Step    string `yaml:"step,omitempty"`
}

// ParseCommand reads commands like "NEXT", "select bean-growth" or "goto plot-points".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	cmd := Command{Action: Action(strings.ToLower(fields[0]))}
	switch cmd.Action {
	case ActionNext, ActionBack, ActionReset, ActionMenu:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%s takes no arguments", cmd.Action)
		}
	case ActionSelect:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("select needs a dataset id")
		}
		cmd.Dataset = fields[1]
	case ActionGoTo:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("goto needs a step")
		}
		cmd.Step = fields[1]
	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
	return cmd, nil
}

// Validate checks a command built some other way than ParseCommand, such as a decoded script.
func (c Command) Validate() error {
	switch c.Action {
	case ActionNext, ActionBack, ActionReset, ActionMenu:
		return nil
	case ActionSelect:
		if c.Dataset == "" {
			return fmt.Errorf("select needs a dataset id")
		}
		return nil
	case ActionGoTo:
		_, err := models.ParseStepID(c.Step)
		return err
	default:
		return fmt.Errorf("unknown action %q", c.Action)
	}
}

// Apply runs cmd against the session.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Action {
	case ActionNext:
		return s.Next()
	case ActionBack:
		return s.Back()
	case ActionReset:
		return s.Reset()
	case ActionMenu:
		return s.Menu()
	case ActionSelect:
		return s.Select(cmd.Dataset)
	case ActionGoTo:
		step, err := models.ParseStepID(cmd.Step)
		if err != nil {
			return err
		}
		return s.GoTo(step)
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
}
