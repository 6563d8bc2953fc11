// Package drivers feeds lesson navigation from outside the browser: a serial presenter clicker and a scripted
// replay for unattended demos.
package drivers

import (
	"context"

	"linegraph/lesson"
)

type Driver interface {
	Init() error
	Run(ctx context.Context) error
}

// Navigator is whatever the driver steers, normally a *lesson.Session.
type Navigator interface {
	Apply(cmd lesson.Command) error
}
