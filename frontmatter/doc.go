// Package frontmatter extracts front matter from page sources.
//
// A page source may open with a fenced metadata block: YAML between "---"
// lines, or TOML between "+++" lines. Parse splits the source into the
// decoded metadata and the remaining body:
//
//	page, err := frontmatter.Parse([]byte("---\ntitle: Home\n---\nHello"))
//	// page.Data["title"] == "Home", page.Content == "Hello"
//
// Sources without an opening fence are passed through with empty Data, so
// plain pages and metadata-bearing pages go down the same path. The package
// works on bytes only; reading files is the caller's concern.
//
// # Location
//
// This package is part of the sitekit library:
//
//	import "github.com/randalmurphal/sitekit/frontmatter"
package frontmatter
