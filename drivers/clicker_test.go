package drivers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linegraph/config"
	"linegraph/lesson"
)

func TestClickerProcessesLines(t *testing.T) {
	nav := &recorder{}
	_, serialFlags, _ := config.DefaultFlags()
	c := NewClicker(serialFlags, nav, discard)

	input := strings.Join([]string{
		"# button box v2",
		"SELECT bean-growth",
		"",
		"NEXT\r",
		"wiggle",
		"SELECT missing",
		"back",
		"GOTO plot-points",
	}, "\n")

	require.NoError(t, c.process(strings.NewReader(input)))

	assert.Equal(t, []lesson.Action{lesson.ActionSelect, lesson.ActionNext, lesson.ActionBack, lesson.ActionGoTo}, nav.actions())
	assert.Equal(t, "bean-growth", nav.cmds[0].Dataset)
	assert.Equal(t, "plot-points", nav.cmds[3].Step)
}

func TestClickerRunNeedsInit(t *testing.T) {
	_, serialFlags, _ := config.DefaultFlags()
	c := NewClicker(serialFlags, &recorder{}, discard)

	assert.Error(t, c.Run(context.Background()))
}

func TestClickerDrivesSession(t *testing.T) {
	session := newSession(t)
	_, serialFlags, _ := config.DefaultFlags()
	c := NewClicker(serialFlags, session, discard)

	require.NoError(t, c.process(strings.NewReader("SELECT cooling-water\nNEXT\nNEXT\n")))

	state := session.State()
	assert.Equal(t, lesson.GraphingView, state.View)
	assert.Equal(t, "cooling-water", state.Dataset.ID())
	assert.Equal(t, 3, state.StepNumber())
}
