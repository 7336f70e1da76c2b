package facadex

import (
	"regexp"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

var propertyInputs = []struct {
	name   string
	format SourceFormat
	input  string
}{
	{"xml tree", SourceXML, `<a x="1">hi<b/><b><c>deep</c></b></a>`},
	{"json object", SourceJSON, `{"name":"Ann","age":5,"tags":["x","y"],"who":{"id":null}}`},
	{"json array", SourceJSON, `[1,2,{"k":true},[3]]`},
	{"json scalar", SourceJSON, `"alone"`},
	{"csv table", SourceTabular, "a,b,c\n1,x,true\nNaN,,2.5\n"},
}

var (
	nodeRefPattern = regexp.MustCompile(`<(http://example\.org/[A-Za-z0-9_]+)>`)
	quotedPattern  = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
)

// stripQuoted blanks out string literals so that URI-like or
// terminator-like text inside them cannot confuse the structural checks.
func stripQuoted(line string) string {
	return quotedPattern.ReplaceAllString(line, `""`)
}

// checkWellFormed verifies the structural invariants on a Turtle result:
// every statement block has exactly one terminating period on its last line
// with semicolons before it, no URI is the subject of two blocks, and every
// reference resolves to some block's subject.
func checkWellFormed(t *testing.T, ttl string) {
	t.Helper()

	subjects := make(map[string]bool)
	refs := make(map[string]bool)

	for _, block := range statementBlocks(t, ttl) {
		lines := strings.Split(block, "\n")
		for i, line := range lines {
			stripped := stripQuoted(line)
			if i == len(lines)-1 {
				if !strings.HasSuffix(line, " .") {
					t.Errorf("last line of block does not end in period: %q", line)
				}
			} else if !strings.HasSuffix(line, " ;") {
				t.Errorf("non-final line does not end in semicolon: %q", line)
			}
			if strings.Count(stripped, " .") > 1 {
				t.Errorf("multiple terminators on one line: %q", line)
			}
		}

		m := nodeRefPattern.FindStringSubmatch(lines[0])
		if m == nil {
			t.Fatalf("block does not open with a subject URI: %q", lines[0])
		}
		subject := m[1]
		if subjects[subject] {
			t.Errorf("URI %s is the subject of more than one block", subject)
		}
		subjects[subject] = true

		for i, line := range lines {
			matches := nodeRefPattern.FindAllStringSubmatch(stripQuoted(line), -1)
			start := 0
			if i == 0 {
				start = 1 // skip the subject itself
			}
			for _, m := range matches[start:] {
				refs[m[1]] = true
			}
		}
	}

	for ref := range refs {
		if !subjects[ref] {
			t.Errorf("reference to %s has no statement block", ref)
		}
	}
}

func TestOutputWellFormed(t *testing.T) {
	for _, tc := range propertyInputs {
		t.Run(tc.name, func(t *testing.T) {
			checkWellFormed(t, convertOK(t, tc.format, tc.input))
		})
	}
}

func TestConvertDeterministic(t *testing.T) {
	for _, tc := range propertyInputs {
		t.Run(tc.name, func(t *testing.T) {
			first := convertOK(t, tc.format, tc.input)
			for i := 0; i < 20; i++ {
				if next := convertOK(t, tc.format, tc.input); next != first {
					t.Fatalf("run %d produced different output:\nfirst:\n%s\nnext:\n%s", i, first, next)
				}
			}
		})
	}
}

func TestTokenCollisionsKeepSubjectsUnique(t *testing.T) {
	// "a.b" and "a_b" sanitize to the same token; the registry must keep
	// their subjects apart, deterministically.
	input := `{"a.b":{"v":1},"a_b":{"v":2}}`
	out := convertOK(t, SourceJSON, input)
	checkWellFormed(t, out)

	if out != convertOK(t, SourceJSON, input) {
		t.Error("collision suffixing is not deterministic")
	}
	if !strings.Contains(out, "<http://example.org/root_a_b> a fx:Object") ||
		!strings.Contains(out, "<http://example.org/root_a_b_2> a fx:Object") {
		t.Errorf("expected suffixed sibling subjects:\n%s", out)
	}
}

func TestConcurrentConversionsIndependent(t *testing.T) {
	want := make([]string, len(propertyInputs))
	for i, tc := range propertyInputs {
		want[i] = convertOK(t, tc.format, tc.input)
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j, tc := range propertyInputs {
				got, err := Convert(tc.format, []byte(tc.input))
				if err != nil {
					return err
				}
				if got != want[j] {
					t.Errorf("concurrent conversion of %s diverged", tc.name)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
