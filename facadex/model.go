package facadex

import "strings"

// Namespace IRIs used by every serialization of the emission stream.
const (
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceFX   = "http://sparql.xyz/facade-x/ns/"
	NamespaceXYZ  = "http://sparql.xyz/facade-x/data/"
	NamespaceNode = "http://example.org/"
)

// NodeType classifies the nodes materialized during traversal.
type NodeType uint8

const (
	// NodeRoot represents the root of a tabular dataset.
	NodeRoot NodeType = iota
	// NodeObject represents a JSON object.
	NodeObject
	// NodeArray represents a JSON array.
	NodeArray
	// NodeRow represents one tabular row.
	NodeRow
	// NodeValue represents a standalone scalar materialized as a node.
	NodeValue
	// NodeElement represents an XML element.
	NodeElement
)

// String returns the local name of the fx: class for the node type.
func (t NodeType) String() string {
	switch t {
	case NodeRoot:
		return "Root"
	case NodeObject:
		return "Object"
	case NodeArray:
		return "Array"
	case NodeRow:
		return "Row"
	case NodeValue:
		return "Value"
	case NodeElement:
		return "Element"
	default:
		return "Value"
	}
}

// ValueKind identifies property value variants.
type ValueKind uint8

const (
	// ValueString represents an escaped, double-quoted string literal.
	ValueString ValueKind = iota
	// ValueRaw represents an unquoted numeric or boolean token.
	ValueRaw
	// ValueNodeRef represents a reference to another node's URI.
	ValueNodeRef
)

// Value is a property value in the emission stream.
type Value interface {
	Kind() ValueKind
	// Turtle returns the value rendered as a Turtle object term.
	Turtle() string
}

// StringLiteral is a text value rendered as a quoted Turtle string.
type StringLiteral struct {
	// Text is the unescaped text value.
	Text string
}

// Kind returns ValueString.
func (s StringLiteral) Kind() ValueKind { return ValueString }

// Turtle returns the double-quoted, escaped literal.
func (s StringLiteral) Turtle() string { return quoteLiteral(s.Text) }

// RawToken is a numeric or boolean value emitted verbatim, unquoted.
type RawToken struct {
	// Token is the lexical form, e.g. "5", "3.14", "true".
	Token string
}

// Kind returns ValueRaw.
func (r RawToken) Kind() ValueKind { return ValueRaw }

// Turtle returns the token unchanged.
func (r RawToken) Turtle() string { return r.Token }

// NodeRef is a reference to another node by its URI token.
type NodeRef struct {
	// Token is the path-derived local token of the target node.
	Token string
}

// Kind returns ValueNodeRef.
func (n NodeRef) Kind() ValueKind { return ValueNodeRef }

// Turtle returns the absolute node URI in angle brackets.
func (n NodeRef) Turtle() string { return "<" + NamespaceNode + n.Token + ">" }

// URI returns the absolute URI of the referenced node.
func (n NodeRef) URI() string { return NamespaceNode + n.Token }

// sink consumes the node-emission stream produced by a mapper. One node is
// emitted as Begin, zero or more Property calls, then End; a node is fully
// written before the mapper moves on.
type sink interface {
	// Begin opens the statement block for a node. The label names the node
	// for diagnostics (tag name, "array", "Row <i>"); serializations do not
	// render it.
	Begin(token string, typ NodeType, label string)
	Property(predicate string, value Value)
	End()
}

// quoteLiteral renders text as a double-quoted Turtle string, escaping the
// characters that would break the surrounding quotes.
func quoteLiteral(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte('"')
	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
