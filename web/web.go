// Package web holds the page templates and static assets, embedded into the binary.
package web

import "embed"

//go:embed static
var Static embed.FS

//go:embed templates
var Templates embed.FS
