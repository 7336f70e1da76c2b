package facadex

import "testing"

func TestParseSourceFormat(t *testing.T) {
	tests := []struct {
		in   string
		want SourceFormat
		ok   bool
	}{
		{"xml", SourceXML, true},
		{"XML", SourceXML, true},
		{"json", SourceJSON, true},
		{" json ", SourceJSON, true},
		{"csv", SourceTabular, true},
		{"tabular", SourceTabular, true},
		{"yaml", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseSourceFormat(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseSourceFormat(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSourceFormatFromPath(t *testing.T) {
	tests := []struct {
		in   string
		want SourceFormat
		ok   bool
	}{
		{"data.xml", SourceXML, true},
		{"/tmp/upload.JSON", SourceJSON, true},
		{"table.csv", SourceTabular, true},
		{"table.tsv", "", false},
		{"notes.txt", "", false},
		{"noextension", "", false},
	}
	for _, tc := range tests {
		got, ok := SourceFormatFromPath(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("SourceFormatFromPath(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
		ok   bool
	}{
		{"ttl", OutputTurtle, true},
		{"turtle", OutputTurtle, true},
		{"nt", OutputNTriples, true},
		{"ntriples", OutputNTriples, true},
		{"jsonld", OutputJSONLD, true},
		{"json-ld", OutputJSONLD, true},
		{"rdfxml", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseOutputFormat(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseOutputFormat(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
