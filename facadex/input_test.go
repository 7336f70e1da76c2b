package facadex

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func encodeUTF16(t *testing.T, text string, endianness unicode.Endianness) []byte {
	t.Helper()
	enc := unicode.UTF16(endianness, unicode.UseBOM).NewEncoder()
	out, _, err := transform.Bytes(enc, []byte(text))
	if err != nil {
		t.Fatalf("failed to encode test input: %v", err)
	}
	return out
}

func TestConvertUTF16Input(t *testing.T) {
	want := convertOK(t, SourceJSON, `{"name":"Ann"}`)

	for _, endianness := range []unicode.Endianness{unicode.LittleEndian, unicode.BigEndian} {
		data := encodeUTF16(t, `{"name":"Ann"}`, endianness)
		got, err := Convert(SourceJSON, data)
		if err != nil {
			t.Fatalf("UTF-16 input should decode: %v", err)
		}
		if got != want {
			t.Errorf("UTF-16 input diverged from UTF-8 input:\n%s", got)
		}
	}
}

func TestConvertUTF8BOMStripped(t *testing.T) {
	want := convertOK(t, SourceJSON, `{"a":1}`)
	got := convertOK(t, SourceJSON, "\xEF\xBB\xBF"+`{"a":1}`)
	if got != want {
		t.Errorf("BOM-prefixed input diverged:\n%s", got)
	}
}

func TestConvertXMLDeclaredCharset(t *testing.T) {
	// 0xE9 is 'é' in ISO-8859-1; the decl makes it decodable.
	input := `<?xml version="1.0" encoding="ISO-8859-1"?><a>caf` + "\xe9" + `</a>`
	out, err := Convert(SourceXML, []byte(input))
	if err != nil {
		t.Fatalf("declared charset should decode: %v", err)
	}
	if !strings.Contains(out, `xyz:hasContent "café"`) {
		t.Errorf("charset not honored:\n%s", out)
	}
}

func TestConvertNonUTF8CSVRejected(t *testing.T) {
	_, err := Convert(SourceTabular, []byte("a\n\xff\xfd\n"))
	if err == nil {
		t.Fatal("expected encoding failure")
	}
	if Category(err) != CategoryEncoding {
		t.Errorf("Category = %q, want %q", Category(err), CategoryEncoding)
	}
}
