package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/randalmurphal/sitekit/filters"
)

// Engine renders page templates with the sitekit filter set installed.
type Engine struct {
	funcs template.FuncMap
}

// New creates an engine pre-loaded with the filter functions
// (date_to_string, xml_escape, group_by, ...).
func New() *Engine {
	return &Engine{
		funcs: filters.FuncMap(),
	}
}

// Render executes the template with the given variables.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	tmpl, parseErr := template.New("page").Funcs(e.funcs).Parse(templateStr)
	if parseErr != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, parseErr)
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, variables); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}

// AddFunc adds a custom template function. The function will be available in
// templates using the given name; an existing filter of the same name is
// replaced.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}
