// Package sitekit provides utilities for static-site page rendering.
//
// sitekit is a standalone toolkit extracted from a static-site generator,
// designed to be imported à la carte. Each subpackage can be used
// independently:
//
//   - filters: Template filter functions (dates, escaping, grouping)
//   - frontmatter: YAML/TOML front-matter extraction from page sources
//   - data: Site data-file decoding (YAML, TOML, JSON)
//   - render: text/template engine pre-loaded with the filter set
//
// # Quick Start
//
// Filters:
//
//	import "github.com/randalmurphal/sitekit/filters"
//	s, _ := filters.DateToString("2011-01-27")
//	// s: "27 Jan 2011"
//
// Front matter:
//
//	import "github.com/randalmurphal/sitekit/frontmatter"
//	page, _ := frontmatter.Parse(src)
//	// page.Data holds the fence values, page.Content the body
//
// Rendering:
//
//	import "github.com/randalmurphal/sitekit/render"
//	engine := render.New()
//	out, _ := engine.Render("{{.title | xml_escape}}", map[string]any{"title": "<Home>"})
//
// # Design Philosophy
//
// sitekit follows these principles:
//
//   - Each package usable independently
//   - Stable, semver-friendly API
//   - Pure, stateless functions safe for concurrent rendering
//   - Interfaces for extensibility, concrete types for simplicity
package sitekit
