package filters

import "text/template"

// FuncMap returns the filter set under its template-facing names, ready to
// install into a host text/template engine. A fresh map is returned on every
// call so callers can add their own entries without affecting others.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"date_to_string":           DateToString,
		"date_to_long_string":      DateToLongString,
		"date_to_xmlschema":        DateToXMLSchema,
		"date_to_rfc822":           DateToRFC822,
		"xml_escape":               XMLEscape,
		"cgi_escape":               CGIEscape,
		"uri_escape":               URIEscape,
		"number_of_words":          NumberOfWords,
		"array_to_sentence_string": ArrayToSentenceString,
		"jsonify":                  Jsonify,
		"group_by":                 GroupBy,
		"where":                    Where,
	}
}
