package facadex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeParseFailure indicates malformed XML/JSON/CSV input.
	ErrCodeParseFailure ErrorCode = "PARSE_FAILURE"
	// ErrCodeEncodingFailure indicates invalid byte-to-text decoding.
	ErrCodeEncodingFailure ErrorCode = "ENCODING_FAILURE"
	// ErrCodeUnsupportedFormat indicates an unsupported source or output format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeDepthExceeded indicates that nesting depth exceeded the configured limit.
	ErrCodeDepthExceeded ErrorCode = "DEPTH_EXCEEDED"
	// ErrCodeInputTooLarge indicates that the input exceeded the configured size limit.
	ErrCodeInputTooLarge ErrorCode = "INPUT_TOO_LARGE"
)

// ErrorCategory groups error codes into the two fatal failure classes.
type ErrorCategory string

const (
	// CategoryParse covers malformed input, including limit violations.
	CategoryParse ErrorCategory = "parse"
	// CategoryEncoding covers byte-to-text decoding failures.
	CategoryEncoding ErrorCategory = "encoding"
)

var (
	// ErrUnsupportedFormat indicates an unsupported source or output format.
	ErrUnsupportedFormat = errors.New("facadex: unsupported format")
	// ErrDepthExceeded indicates that nesting depth exceeded the configured limit.
	ErrDepthExceeded = errors.New("facadex: nesting depth exceeded configured limit")
	// ErrInputTooLarge indicates that the input exceeded the configured size limit.
	ErrInputTooLarge = errors.New("facadex: input exceeds configured size limit")
	// ErrEmptyInput indicates that the input held no document at all.
	ErrEmptyInput = errors.New("facadex: empty input")
)

// Code returns the error code for an error, or empty string for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrDepthExceeded):
		return ErrCodeDepthExceeded
	case errors.Is(err, ErrInputTooLarge):
		return ErrCodeInputTooLarge
	}

	var encErr *EncodingError
	if errors.As(err, &encErr) {
		return ErrCodeEncodingFailure
	}

	// Malformed input of any other kind is a parse failure.
	return ErrCodeParseFailure
}

// Category returns the fatal category for an error, or empty string for nil.
func Category(err error) ErrorCategory {
	if err == nil {
		return ""
	}
	if Code(err) == ErrCodeEncodingFailure {
		return CategoryEncoding
	}
	return CategoryParse
}

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format SourceFormat // Source format being parsed
	Line   int          // 1-based line number (0 if unknown)
	Column int          // 1-based column number (0 if unknown)
	Offset int64        // Byte offset in input (-1 if unknown)
	Err    error        // Underlying parser diagnostic
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(string(e.Format))

	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	} else if e.Offset >= 0 {
		fmt.Fprintf(&msg, " (offset %d)", e.Offset)
	}

	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodingError reports a byte-to-text decoding failure.
type EncodingError struct {
	Format SourceFormat // Source format being decoded
	Err    error        // Underlying decoding diagnostic
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: encoding: %v", e.Format, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// wrapParseError adds format context to a parse error.
func wrapParseError(format SourceFormat, err error) error {
	return wrapParseErrorWithPosition(format, 0, 0, -1, err)
}

// wrapParseErrorWithPosition adds format/position context to a parse error.
func wrapParseErrorWithPosition(format SourceFormat, line, column int, offset int64, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		// Preserve existing position info if better than what we have.
		if parseErr.Line > 0 && line == 0 {
			line = parseErr.Line
			column = parseErr.Column
		}
		if parseErr.Offset >= 0 && offset < 0 {
			offset = parseErr.Offset
		}
	}
	return &ParseError{Format: format, Line: line, Column: column, Offset: offset, Err: err}
}

// positionAt converts a byte offset into 1-based line/column numbers.
func positionAt(data []byte, offset int64) (line, column int) {
	if offset < 0 || offset > int64(len(data)) {
		return 0, 0
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
