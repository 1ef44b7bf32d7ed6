// Package render provides a text/template engine pre-loaded with the sitekit
// filter set.
//
// The engine is the thin binding between a host template and the filters
// package; all transformation logic lives in the filters themselves.
//
//	engine := render.New()
//	out, err := engine.Render(
//		`{{.title | xml_escape}}, {{date_to_string .date}}`,
//		map[string]any{"title": "<Home>", "date": "2011-01-27"},
//	)
//	// out: "&lt;Home&gt;, 27 Jan 2011"
//
// Custom functions can be added alongside the filters:
//
//	engine.AddFunc("shout", strings.ToUpper)
//
// # Location
//
// This package is part of the sitekit library:
//
//	import "github.com/randalmurphal/sitekit/render"
package render
