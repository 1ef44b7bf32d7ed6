// Package data decodes site data files into the dynamic values templates
// consume.
//
// Static sites keep auxiliary data (navigation menus, author lists, ...) in
// YAML, TOML, or JSON files; their decoded form is handed to templates and
// flows straight into collection filters like group_by and where. Decode
// takes bytes and a Format; reading files is the caller's concern:
//
//	members, err := data.Decode(data.YAML, raw)
//
// FormatForExtension maps file extensions to formats:
//
//	f, ok := data.FormatForExtension(".yml")
//	// f == data.YAML
package data
