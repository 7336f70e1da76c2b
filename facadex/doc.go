// Package facadex converts schema-less tree or table data into RDF.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// It maps arbitrary XML, JSON, or tabular (CSV) input onto a normalized,
// schema-less RDF graph without requiring an upfront ontology, following the
// Facade-X meta-model (fx:/xyz: namespaces). One call transforms one whole
// document into one serialized string:
//   - Convert: declared source format + raw bytes -> Turtle text.
//   - ConvertTo: same emission stream re-serialized as Turtle, N-Triples,
//     or JSON-LD.
//
// Each input container (XML element, JSON object/array, CSV row) becomes a
// node identified by a URI under http://example.org/, where the local token
// is derived deterministically from the node's hierarchical path. Scalars
// inline as literals; containers link to their children by reference. Output
// is fully deterministic: identical input bytes with the same format tag
// always produce byte-identical output.
//
// Example:
//
//	ttl, err := facadex.Convert(facadex.SourceJSON, []byte(`{"name":"Ann"}`))
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(ttl)
//
// The transform is pure and synchronous: it touches no filesystem, network,
// or session state, and independent conversions may run concurrently without
// coordination. Errors are classified as parse failures (malformed input,
// underlying parser diagnostic preserved) or encoding failures (invalid
// byte-to-text decoding); no partial output is ever returned.
//
// Options can be provided via OptMaxDepth and OptMaxInputBytes to bound
// nesting depth and input size for untrusted input.
package facadex
