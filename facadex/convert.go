package facadex

// mapper walks one parsed document and drives node emissions into a sink.
// Each source format implements it once; PathIdentifier tokens and the sink
// are the shared collaborators.
type mapper interface {
	mapInto(s sink)
}

// Convert transforms one input document into Turtle text. The format is the
// caller's declaration and is never sniffed from content. On error no
// partial output is returned.
func Convert(format SourceFormat, data []byte, opts ...Option) (string, error) {
	return ConvertTo(format, data, OutputTurtle, opts...)
}

// ConvertTo transforms one input document into the chosen RDF serialization.
// The Turtle path is the native one; N-Triples and JSON-LD re-serialize the
// identical node-emission stream.
func ConvertTo(format SourceFormat, data []byte, out OutputFormat, opts ...Option) (string, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options = normalizeOptions(options)

	if options.MaxInputBytes >= 0 && int64(len(data)) > options.MaxInputBytes {
		return "", wrapParseError(format, ErrInputTooLarge)
	}

	m, err := parseDocument(format, data, options)
	if err != nil {
		return "", err
	}

	switch out {
	case OutputTurtle:
		w := newTurtleWriter()
		m.mapInto(w)
		return w.String(), nil
	case OutputNTriples:
		ts := newTripleSet()
		m.mapInto(ts)
		return ts.NTriples(), nil
	case OutputJSONLD:
		ts := newTripleSet()
		m.mapInto(ts)
		return ts.JSONLD()
	default:
		return "", ErrUnsupportedFormat
	}
}

func parseDocument(format SourceFormat, data []byte, options Options) (mapper, error) {
	switch format {
	case SourceXML, SourceJSON, SourceTabular:
	default:
		return nil, ErrUnsupportedFormat
	}

	decoded, err := decodeInput(format, data)
	if err != nil {
		return nil, err
	}

	switch format {
	case SourceXML:
		root, err := parseXML(decoded, options)
		if err != nil {
			return nil, err
		}
		return &xmlMapper{root: root, ids: newIdentifiers()}, nil
	case SourceJSON:
		root, err := parseJSON(decoded, options)
		if err != nil {
			return nil, err
		}
		return &jsonMapper{root: root, ids: newIdentifiers()}, nil
	case SourceTabular:
		doc, err := parseTabular(decoded, options)
		if err != nil {
			return nil, err
		}
		return &tabularMapper{doc: doc, ids: newIdentifiers()}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
