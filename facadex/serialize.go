package facadex

import (
	"encoding/json"
	"fmt"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

const (
	xsdInteger = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdDouble  = "http://www.w3.org/2001/XMLSchema#double"
	xsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
)

type ntTriple struct {
	subject   string
	predicate string
	object    string
}

// tripleSet is the non-Turtle consumer of the emission stream. It collects
// fully expanded triples in emission order and serializes them as N-Triples
// or, through json-gold's FromRDF algorithm, as JSON-LD. Unlike the Turtle
// emitter, N-Triples carries the explicit datatype IRIs its grammar
// requires for non-string literals.
type tripleSet struct {
	triples []ntTriple
	subject string
}

func newTripleSet() *tripleSet {
	return &tripleSet{}
}

func (ts *tripleSet) Begin(token string, typ NodeType, label string) {
	_ = label // carried for diagnostics, not serialized
	ts.subject = "<" + NamespaceNode + token + ">"
	ts.triples = append(ts.triples, ntTriple{
		subject:   ts.subject,
		predicate: "<" + NamespaceRDF + "type>",
		object:    "<" + NamespaceFX + typ.String() + ">",
	})
}

func (ts *tripleSet) Property(predicate string, value Value) {
	ts.triples = append(ts.triples, ntTriple{
		subject:   ts.subject,
		predicate: expandPredicate(predicate),
		object:    renderNTObject(value),
	})
}

func (ts *tripleSet) End() {}

// NTriples returns the collected triples in N-Triples syntax, one statement
// per line, in emission order.
func (ts *tripleSet) NTriples() string {
	var b strings.Builder
	for _, t := range ts.triples {
		b.WriteString(t.subject)
		b.WriteByte(' ')
		b.WriteString(t.predicate)
		b.WriteByte(' ')
		b.WriteString(t.object)
		b.WriteString(" .\n")
	}
	return b.String()
}

// JSONLD converts the collected triples to a JSON-LD document. The triples
// are handed to json-gold as N-Quads in the default graph.
func (ts *tripleSet) JSONLD() (string, error) {
	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions("")
	goldOpts.Format = "application/n-quads"
	goldOpts.UseNativeTypes = true

	doc, err := proc.FromRDF(ts.NTriples(), goldOpts)
	if err != nil {
		return "", fmt.Errorf("jsonld: %w", err)
	}
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("jsonld: %w", err)
	}
	return string(encoded) + "\n", nil
}

// expandPredicate rewrites the xyz:-prefixed predicates used by the mappers
// into absolute IRIs.
func expandPredicate(predicate string) string {
	if local, ok := strings.CutPrefix(predicate, "xyz:"); ok {
		return "<" + NamespaceXYZ + local + ">"
	}
	return "<" + predicate + ">"
}

func renderNTObject(value Value) string {
	switch v := value.(type) {
	case NodeRef:
		return "<" + v.URI() + ">"
	case RawToken:
		return quoteLiteral(v.Token) + "^^<" + rawTokenDatatype(v.Token) + ">"
	case StringLiteral:
		return quoteLiteral(v.Text)
	default:
		return quoteLiteral(fmt.Sprint(value))
	}
}

// rawTokenDatatype maps an unquoted token to the XSD datatype its lexical
// form denotes in Turtle.
func rawTokenDatatype(token string) string {
	if token == "true" || token == "false" {
		return xsdBoolean
	}
	if strings.ContainsAny(token, "eE") {
		return xsdDouble
	}
	if strings.Contains(token, ".") {
		return xsdDecimal
	}
	return xsdInteger
}
