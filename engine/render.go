package engine

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"linegraph/utils"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"coord": utils.FormatCoord,
	"num":   utils.FormatNumber,
}).ParseFS(templateFS, "templates/*.gohtml"))

// RenderSVG writes scene as a standalone SVG element.
func RenderSVG(w io.Writer, scene *Scene) error {
	return templates.ExecuteTemplate(w, "chart.svg", scene)
}

// SVG renders scene to a string, for embedding in a page.
func SVG(scene *Scene) (template.HTML, error) {
	var buf strings.Builder
	if err := RenderSVG(&buf, scene); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
