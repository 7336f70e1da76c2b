package facadex

import (
	"strings"
	"testing"
)

const (
	fuzzMaxDepth      = 64
	fuzzMaxInputBytes = 64 << 10
)

// fuzzCheck converts data and, when conversion succeeds, verifies the output
// still satisfies the structural guarantees.
func fuzzCheck(t *testing.T, format SourceFormat, data []byte) {
	out, err := Convert(format, data, OptMaxDepth(fuzzMaxDepth), OptMaxInputBytes(fuzzMaxInputBytes))
	if err != nil {
		if out != "" {
			t.Fatalf("error with partial output: %v", err)
		}
		return
	}
	if !strings.HasPrefix(out, "@prefix rdf:") {
		t.Fatalf("output missing prefix block:\n%s", out)
	}
	if out != mustConvertAgain(t, format, data) {
		t.Fatal("conversion is not deterministic")
	}
	checkWellFormed(t, out)
}

func mustConvertAgain(t *testing.T, format SourceFormat, data []byte) string {
	out, err := Convert(format, data, OptMaxDepth(fuzzMaxDepth), OptMaxInputBytes(fuzzMaxInputBytes))
	if err != nil {
		t.Fatalf("second conversion of accepted input failed: %v", err)
	}
	return out
}

func FuzzConvertJSON(f *testing.F) {
	f.Add([]byte(`{"name":"Ann","age":5}`))
	f.Add([]byte(`[1,2]`))
	f.Add([]byte(`{"k":null,"nested":{"a":[true,"x"]}}`))
	f.Add([]byte(`"bare"`))
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzCheck(t, SourceJSON, data)
	})
}

func FuzzConvertXML(f *testing.F) {
	f.Add([]byte(`<a x="1">hi<b/></a>`))
	f.Add([]byte(`<r><x>1</x><x>2</x></r>`))
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzCheck(t, SourceXML, data)
	})
}

func FuzzConvertCSV(f *testing.F) {
	f.Add([]byte("a,b\n1,x\n"))
	f.Add([]byte("col\nNaN\n"))
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzCheck(t, SourceTabular, data)
	})
}
