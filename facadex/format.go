package facadex

import (
	"path/filepath"
	"strings"
)

// SourceFormat identifies the declared input format. Formats are never
// sniffed from content.
type SourceFormat string

const (
	SourceXML     SourceFormat = "xml"
	SourceJSON    SourceFormat = "json"
	SourceTabular SourceFormat = "csv"
)

// ParseSourceFormat normalizes a source format string.
func ParseSourceFormat(value string) (SourceFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "xml":
		return SourceXML, true
	case "json":
		return SourceJSON, true
	case "csv", "tabular":
		return SourceTabular, true
	default:
		return "", false
	}
}

// SourceFormatFromPath maps a file extension to a source format. This is a
// convenience for callers that name inputs by file; the conversion entry
// points themselves always take an explicit format tag.
func SourceFormatFromPath(path string) (SourceFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return SourceXML, true
	case ".json":
		return SourceJSON, true
	case ".csv":
		return SourceTabular, true
	default:
		return "", false
	}
}

// OutputFormat identifies the RDF serialization of the result.
type OutputFormat string

const (
	OutputTurtle   OutputFormat = "turtle"
	OutputNTriples OutputFormat = "ntriples"
	OutputJSONLD   OutputFormat = "jsonld"
)

// ParseOutputFormat normalizes an output format string.
func ParseOutputFormat(value string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return OutputTurtle, true
	case "ntriples", "nt":
		return OutputNTriples, true
	case "jsonld", "json-ld":
		return OutputJSONLD, true
	default:
		return "", false
	}
}
