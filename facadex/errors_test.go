package facadex

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFailurePreservesDiagnostic(t *testing.T) {
	tests := []struct {
		format SourceFormat
		input  string
	}{
		{SourceJSON, `{"a": }`},
		{SourceJSON, `{"a": 1`},
		{SourceXML, `<a><b></a>`},
		{SourceXML, `<a attr=oops/>`},
		{SourceTabular, "a,b\n\"unterminated\n"},
	}
	for _, tc := range tests {
		_, err := Convert(tc.format, []byte(tc.input))
		if err == nil {
			t.Errorf("%s input %q: expected parse failure", tc.format, tc.input)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("%s input %q: expected ParseError, got %T: %v", tc.format, tc.input, err, err)
			continue
		}
		if parseErr.Format != tc.format {
			t.Errorf("ParseError.Format = %q, want %q", parseErr.Format, tc.format)
		}
		if parseErr.Err == nil {
			t.Error("ParseError should preserve the underlying diagnostic")
		}
		if Code(err) != ErrCodeParseFailure {
			t.Errorf("Code = %q, want %q", Code(err), ErrCodeParseFailure)
		}
		if Category(err) != CategoryParse {
			t.Errorf("Category = %q, want %q", Category(err), CategoryParse)
		}
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, err := Convert(SourceJSON, []byte("{\n  \"a\": oops\n}"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if parseErr.Line != 2 {
		t.Errorf("Line = %d, want 2", parseErr.Line)
	}
	if parseErr.Offset <= 0 {
		t.Errorf("Offset = %d, want > 0", parseErr.Offset)
	}
	if !strings.HasPrefix(parseErr.Error(), "json:2:") {
		t.Errorf("message should lead with format and position, got %q", parseErr.Error())
	}
}

func TestEncodingFailure(t *testing.T) {
	_, err := Convert(SourceJSON, []byte{'"', 0xff, 0xfd, '"'})
	if err == nil {
		t.Fatal("expected encoding failure for invalid UTF-8")
	}
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %T: %v", err, err)
	}
	if Code(err) != ErrCodeEncodingFailure {
		t.Errorf("Code = %q, want %q", Code(err), ErrCodeEncodingFailure)
	}
	if Category(err) != CategoryEncoding {
		t.Errorf("Category = %q, want %q", Category(err), CategoryEncoding)
	}
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{ErrUnsupportedFormat, ErrCodeUnsupportedFormat},
		{&ParseError{Format: SourceJSON, Offset: -1, Err: ErrDepthExceeded}, ErrCodeDepthExceeded},
		{&ParseError{Format: SourceJSON, Offset: -1, Err: ErrInputTooLarge}, ErrCodeInputTooLarge},
		{&ParseError{Format: SourceXML, Offset: -1, Err: errors.New("boom")}, ErrCodeParseFailure},
		{&EncodingError{Format: SourceJSON, Err: errors.New("bad bytes")}, ErrCodeEncodingFailure},
		{errors.New("anything else"), ErrCodeParseFailure},
	}
	for _, tc := range tests {
		if got := Code(tc.err); got != tc.want {
			t.Errorf("Code(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestCategoryClassification(t *testing.T) {
	if got := Category(nil); got != "" {
		t.Errorf("Category(nil) = %q, want empty", got)
	}
	if got := Category(ErrDepthExceeded); got != CategoryParse {
		t.Errorf("Category(ErrDepthExceeded) = %q, want %q", got, CategoryParse)
	}
}

func TestNoPartialOutputOnError(t *testing.T) {
	out, err := Convert(SourceJSON, []byte(`{"a": 1, "b": `))
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if out != "" {
		t.Errorf("failed conversion must return no partial output, got %q", out)
	}
}
