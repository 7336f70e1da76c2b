package facadex

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// decodeInput normalizes raw input bytes to UTF-8. UTF-16 inputs are
// recognized by BOM and transcoded; a UTF-8 BOM is stripped. XML input is
// exempt from the final UTF-8 validation because the XML decoder handles
// charsets declared in the prolog itself.
func decodeInput(format SourceFormat, data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(format, data, unicode.BigEndian)
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(format, data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF8):
		data = data[len(bomUTF8):]
	}
	if format != SourceXML && !utf8.Valid(data) {
		return nil, &EncodingError{Format: format, Err: errors.New("input is not valid UTF-8")}
	}
	return data, nil
}

func decodeUTF16(format SourceFormat, data []byte, endianness unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	decoded, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, &EncodingError{Format: format, Err: err}
	}
	return decoded, nil
}
