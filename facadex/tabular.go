package facadex

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
)

// tabularCellAbsent marks a missing cell, distinct from an empty string cell.
// Rows shorter than the header leave their trailing cells absent; a cell
// holding the text "NaN" is treated as absent as well.
const tabularCellAbsent = "\x00absent"

type tabularDocument struct {
	header []string
	rows   [][]string
}

// parseTabular reads a CSV document with a required header row. Ragged rows
// are tolerated: short rows are padded with the absent marker, cells beyond
// the header are dropped. Row and column order are the source order.
func parseTabular(data []byte, opts Options) (*tabularDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, wrapParseError(SourceTabular, ErrEmptyInput)
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, wrapParseError(SourceTabular, ErrEmptyInput)
	}
	if err != nil {
		return nil, tabularParseError(err)
	}
	for i, name := range header {
		if name == "" {
			header[i] = "col_" + strconv.Itoa(i)
		}
	}

	doc := &tabularDocument{header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, tabularParseError(err)
		}
		row := make([]string, len(header))
		for i := range header {
			switch {
			case i >= len(record):
				row[i] = tabularCellAbsent
			case record[i] == "NaN":
				row[i] = tabularCellAbsent
			default:
				row[i] = record[i]
			}
		}
		doc.rows = append(doc.rows, row)
	}
}

func tabularParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return wrapParseErrorWithPosition(SourceTabular, csvErr.Line, csvErr.Column, -1, err)
	}
	return wrapParseError(SourceTabular, err)
}

// tabularMapper emits one Dataset node referencing one Row node per source
// row. The dataset block closes before any row block opens.
type tabularMapper struct {
	doc *tabularDocument
	ids *identifiers
}

func (m *tabularMapper) mapInto(s sink) {
	s.Begin(m.ids.tokenFor("dataset"), NodeRoot, "Dataset")
	rowTokens := make([]string, len(m.doc.rows))
	for i := range m.doc.rows {
		rowTokens[i] = m.ids.tokenFor("row_" + strconv.Itoa(i))
		s.Property("xyz:row_"+strconv.Itoa(i), NodeRef{Token: rowTokens[i]})
	}
	s.End()

	for i, row := range m.doc.rows {
		s.Begin(rowTokens[i], NodeRow, "Row "+strconv.Itoa(i))
		for c, name := range m.doc.header {
			s.Property("xyz:"+Token(name), cellValue(row[c]))
		}
		s.End()
	}
}

// cellValue renders one cell: absent cells become the empty string literal,
// numeric and boolean cell text stays an unquoted token, everything else is
// a quoted string.
func cellValue(cell string) Value {
	if cell == tabularCellAbsent {
		return StringLiteral{Text: ""}
	}
	if isTurtleToken(cell) {
		return RawToken{Token: cell}
	}
	return StringLiteral{Text: cell}
}

// isTurtleToken reports whether text is a boolean or numeric literal that is
// valid unquoted under the Turtle grammar (INTEGER, DECIMAL, or DOUBLE).
// strconv alone is too permissive here: it accepts forms like hex floats
// that Turtle does not.
func isTurtleToken(text string) bool {
	if text == "true" || text == "false" {
		return true
	}
	s := text
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	intDigits, fracDigits, expDigits := 0, 0, 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		intDigits++
		i++
	}
	hasDot := false
	if i < len(s) && s[i] == '.' {
		hasDot = true
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			fracDigits++
			i++
		}
	}
	hasExp := false
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		hasExp = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			expDigits++
			i++
		}
	}
	if i != len(s) {
		return false
	}
	switch {
	case hasExp:
		return expDigits > 0 && (intDigits > 0 || fracDigits > 0)
	case hasDot:
		return fracDigits > 0
	default:
		return intDigits > 0
	}
}
