// Package templates holds the HTML pages, compiled into the binary.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses every page template
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.tmpl")
}
