package facadex

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// xmlElement is one element of the parsed tree: tag name, attributes and
// children in document order, and the element's immediate character data.
type xmlElement struct {
	name     string
	attrs    []xml.Attr
	text     string
	children []*xmlElement
}

// parseXML reads the single document element into a tree. The decoder's
// CharsetReader honors encodings declared in the XML prolog, so inputs in
// legacy charsets decode before tokenization. Content outside the root
// element other than whitespace, comments, and processing instructions is
// rejected.
func parseXML(data []byte, opts Options) (*xmlElement, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var root *xmlElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xmlParseError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, wrapParseError(SourceXML, errors.New("multiple document elements"))
			}
			root, err = parseXMLElement(dec, t, 1, opts)
			if err != nil {
				return nil, xmlParseError(err)
			}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, wrapParseError(SourceXML, errors.New("text outside document element"))
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			// ignored
		}
	}
	if root == nil {
		return nil, wrapParseError(SourceXML, ErrEmptyInput)
	}
	return root, nil
}

func parseXMLElement(dec *xml.Decoder, start xml.StartElement, depth int, opts Options) (*xmlElement, error) {
	if opts.depthExceeded(depth) {
		return nil, ErrDepthExceeded
	}
	elem := &xmlElement{name: start.Name.Local, attrs: start.Attr}
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseXMLElement(dec, t, depth+1, opts)
			if err != nil {
				return nil, err
			}
			elem.children = append(elem.children, child)
		case xml.EndElement:
			elem.text = strings.TrimSpace(text.String())
			return elem, nil
		case xml.CharData:
			text.Write(t)
		}
	}
}

func xmlParseError(err error) error {
	var synErr *xml.SyntaxError
	if errors.As(err, &synErr) {
		return wrapParseErrorWithPosition(SourceXML, synErr.Line, 0, -1, err)
	}
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		return wrapParseError(SourceXML, errors.New("unexpected end of document"))
	}
	return wrapParseError(SourceXML, err)
}

// xmlMapper walks the element tree depth-first in document order. A parent's
// statement block is fully closed before any child block opens, so child
// references are forward references.
type xmlMapper struct {
	root *xmlElement
	ids  *identifiers
}

func (m *xmlMapper) mapInto(s sink) {
	m.mapElement(s, m.root, m.root.name)
}

func (m *xmlMapper) mapElement(s sink, elem *xmlElement, path string) {
	s.Begin(m.ids.tokenFor(path), NodeElement, elem.name)
	for _, attr := range elem.attrs {
		s.Property("xyz:"+Token(attr.Name.Local), StringLiteral{Text: attr.Value})
	}
	if elem.text != "" {
		s.Property("xyz:hasContent", StringLiteral{Text: elem.text})
	}
	childPaths := make([]string, len(elem.children))
	for i, child := range elem.children {
		// The ordinal disambiguates same-tag siblings.
		childPaths[i] = path + "/" + child.name + "_" + strconv.Itoa(i)
		s.Property("xyz:hasChild", NodeRef{Token: m.ids.tokenFor(childPaths[i])})
	}
	s.End()
	for i, child := range elem.children {
		m.mapElement(s, child, childPaths[i])
	}
}
