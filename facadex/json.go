package facadex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// jsonMember is one object member in document order. Go maps iterate in
// random order, so objects are parsed into ordered slices instead: member
// order drives both predicate order and node URIs, and must match the input.
type jsonMember struct {
	key   string
	value any
}

type jsonObject []jsonMember

type jsonArray []any

// parseJSON reads one whole JSON document off the token stream, preserving
// object member order. Scalars surface as string, json.Number, bool, or nil.
// Trailing non-whitespace after the document value is rejected.
func parseJSON(data []byte, opts Options) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := parseJSONValue(dec, 1, opts)
	if err != nil {
		return nil, jsonParseError(data, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected trailing content after document value")
		}
		return nil, jsonParseError(data, err)
	}
	return value, nil
}

func parseJSONValue(dec *json.Decoder, depth int, opts Options) (any, error) {
	if opts.depthExceeded(depth) {
		return nil, ErrDepthExceeded
	}
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseJSONObject(dec, depth, opts)
		case '[':
			return parseJSONArray(dec, depth, opts)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	default:
		// string, json.Number, bool, or nil
		return tok, nil
	}
}

func parseJSONObject(dec *json.Decoder, depth int, opts Options) (jsonObject, error) {
	obj := jsonObject{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", keyTok)
		}
		value, err := parseJSONValue(dec, depth+1, opts)
		if err != nil {
			return nil, err
		}
		obj = append(obj, jsonMember{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}

func parseJSONArray(dec *json.Decoder, depth int, opts Options) (jsonArray, error) {
	arr := jsonArray{}
	for dec.More() {
		value, err := parseJSONValue(dec, depth+1, opts)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return arr, nil
}

func jsonParseError(data []byte, err error) error {
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		line, column := positionAt(data, synErr.Offset)
		return wrapParseErrorWithPosition(SourceJSON, line, column, synErr.Offset, err)
	}
	return wrapParseError(SourceJSON, err)
}

// jsonMapper walks a parsed JSON document and emits one node per container.
// Containers link to their children by reference; the child's block is
// written only after the parent's block is closed, a legal Turtle forward
// reference.
type jsonMapper struct {
	root any
	ids  *identifiers
}

func (m *jsonMapper) mapInto(s sink) {
	m.mapValue(s, m.root, "root", true)
}

// mapValue emits the node(s) for value at the given traversal path.
// materialize forces a bare scalar into a Value node of its own; it is set
// for array items and for the document root, so a bare top-level scalar
// still produces output.
func (m *jsonMapper) mapValue(s sink, value any, path string, materialize bool) {
	switch v := value.(type) {
	case jsonObject:
		s.Begin(m.ids.tokenFor(path), NodeObject, "")
		type pendingChild struct {
			value any
			path  string
		}
		var children []pendingChild
		seen := make(map[string]int, len(v))
		for _, member := range v {
			childPath := path + "/" + pathSegment(member.key)
			// Duplicate keys are emitted as duplicate predicates, but a
			// repeated container member still needs a URI of its own. The
			// occurrence marker cannot collide with a literal key because
			// pathSegment escapes '@' out of key-derived text.
			if n := seen[member.key]; n > 0 {
				childPath += "@" + strconv.Itoa(n+1)
			}
			seen[member.key]++
			switch member.value.(type) {
			case jsonObject, jsonArray:
				s.Property("xyz:"+Token(member.key), NodeRef{Token: m.ids.tokenFor(childPath)})
				children = append(children, pendingChild{value: member.value, path: childPath})
			default:
				s.Property("xyz:"+Token(member.key), scalarValue(member.value))
			}
		}
		s.End()
		for _, child := range children {
			m.mapValue(s, child.value, child.path, false)
		}
	case jsonArray:
		s.Begin(m.ids.tokenFor(path), NodeArray, "array")
		for i := range v {
			item := "item_" + strconv.Itoa(i)
			s.Property("xyz:"+item, NodeRef{Token: m.ids.tokenFor(path + "/" + item)})
		}
		s.End()
		for i, itemValue := range v {
			m.mapValue(s, itemValue, path+"/item_"+strconv.Itoa(i), true)
		}
	default:
		if !materialize {
			return
		}
		s.Begin(m.ids.tokenFor(path), NodeValue, "")
		s.Property("xyz:hasValue", scalarValue(value))
		s.End()
	}
}

// pathSegmentEscaper escapes object keys before they join a traversal path,
// in the style of JSON Pointer: '~' becomes "~0", '/' becomes "~1", and '@'
// becomes "~2". The path separator and the duplicate-key occurrence marker
// therefore never occur in key-derived text, so no literal key can occupy
// the raw path of another node.
var pathSegmentEscaper = strings.NewReplacer("~", "~0", "/", "~1", "@", "~2")

func pathSegment(key string) string {
	return pathSegmentEscaper.Replace(key)
}

// scalarValue renders a JSON scalar as a property value. JSON null becomes
// the quoted string "null", never an unquoted token.
func scalarValue(value any) Value {
	switch v := value.(type) {
	case nil:
		return StringLiteral{Text: "null"}
	case bool:
		if v {
			return RawToken{Token: "true"}
		}
		return RawToken{Token: "false"}
	case json.Number:
		return RawToken{Token: v.String()}
	case string:
		return StringLiteral{Text: v}
	default:
		return StringLiteral{Text: fmt.Sprint(v)}
	}
}
