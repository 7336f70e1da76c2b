package facadex

import "strings"

// turtlePrologue is the fixed prefix block opening every Turtle result.
const turtlePrologue = "@prefix rdf: <" + NamespaceRDF + "> .\n" +
	"@prefix fx: <" + NamespaceFX + "> .\n" +
	"@prefix xyz: <" + NamespaceXYZ + "> .\n" +
	"@prefix rdfs: <" + NamespaceRDFS + "> .\n"

// turtleWriter accumulates one statement block at a time and renders it with
// well-formed termination: the last predicate-object line of a block ends in
// '.', all earlier ones in ';'. The terminator decision is made structurally
// at End, once the block's line count is known. One writer serves one whole
// conversion; it owns no other state.
type turtleWriter struct {
	out     strings.Builder
	started bool
	pending []string // predicate-object lines of the open block
	subject string
}

func newTurtleWriter() *turtleWriter {
	return &turtleWriter{}
}

func (w *turtleWriter) Begin(token string, typ NodeType, label string) {
	if !w.started {
		w.out.WriteString(turtlePrologue)
		w.started = true
	}
	_ = label // carried for diagnostics, not serialized
	w.subject = "<" + NamespaceNode + token + "> a fx:" + typ.String()
	w.pending = w.pending[:0]
}

func (w *turtleWriter) Property(predicate string, value Value) {
	w.pending = append(w.pending, predicate+" "+value.Turtle())
}

func (w *turtleWriter) End() {
	w.out.WriteByte('\n')
	w.out.WriteString(w.subject)
	if len(w.pending) == 0 {
		// Only the type triple: it carries the period itself.
		w.out.WriteString(" .\n")
		return
	}
	w.out.WriteString(" ;\n")
	for i, line := range w.pending {
		w.out.WriteString("    ")
		w.out.WriteString(line)
		if i == len(w.pending)-1 {
			w.out.WriteString(" .\n")
		} else {
			w.out.WriteString(" ;\n")
		}
	}
}

// String returns the accumulated Turtle text.
func (w *turtleWriter) String() string {
	if !w.started {
		return turtlePrologue
	}
	return w.out.String()
}
