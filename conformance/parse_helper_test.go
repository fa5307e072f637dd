// Package conformance replays the scenarios spec.md §8 enumerates,
// plus html5lib-style fixture cases adapted from the teacher's
// html5lib_test.go, against the htmltok+builder+domsink pipeline, and
// cross-checks the result against golang.org/x/net/html as an oracle
// (grounded in the teacher's benchmark_comparison_test.go).
package conformance

import (
	"fmt"
	"strings"

	"github.com/kasuga-html/htmltree/builder"
	"github.com/kasuga-html/htmltree/domsink"
	"github.com/kasuga-html/htmltree/htmltok"
	"github.com/kasuga-html/htmltree/perr"
)

// parseResult bundles the parsed document with every parse error seen,
// in order, for assertions on both tree shape and diagnostics.
type parseResult struct {
	Doc    *domsink.Document
	Errors []perr.Entry
}

func parseHTML(input string) parseResult {
	sink := domsink.New()
	collector := &perr.Collector{}
	tok := htmltok.New(input, htmltok.Options{Reporter: collector})
	b := builder.New(sink, builder.Options{Reporter: collector})
	if err := b.Run(tok); err != nil {
		panic(fmt.Sprintf("unexpected builder error: %v", err))
	}
	return parseResult{Doc: sink.Doc(), Errors: collector.Errors}
}

// treeShape renders a domsink tree into the spec's own
// "tag[ child, child ]" / "text(...)" / "doctype(...)" notation, so
// scenario expectations can be written exactly as spec.md states them.
func treeShape(n domsink.Node) string {
	var sb strings.Builder
	writeShape(&sb, n)
	return sb.String()
}

func writeShape(sb *strings.Builder, n domsink.Node) {
	switch v := n.(type) {
	case *domsink.Document:
		sb.WriteString("#document[ ")
		first := true
		if v.Doctype != nil {
			writeShape(sb, v.Doctype)
			first = false
		}
		for _, c := range v.Children() {
			if !first {
				sb.WriteString(", ")
			}
			writeShape(sb, c)
			first = false
		}
		sb.WriteString(" ]")
	case *domsink.DocumentType:
		fmt.Fprintf(sb, "doctype(%s,%q,%q)", v.Name, v.PublicID, v.SystemID)
	case *domsink.Element:
		sb.WriteString(v.TagName)
		if v.Attributes.Len() > 0 {
			sb.WriteByte('(')
			for i, a := range v.Attributes.All() {
				if i > 0 {
					sb.WriteByte(',')
				}
				fmt.Fprintf(sb, "%s=%q", a.Name, a.Value)
			}
			sb.WriteByte(')')
		}
		children := v.Children()
		if len(children) == 0 {
			return
		}
		sb.WriteString("[ ")
		for i, c := range children {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeShape(sb, c)
		}
		sb.WriteString(" ]")
	case *domsink.Text:
		fmt.Fprintf(sb, "text(%q)", v.Data)
	case *domsink.Comment:
		fmt.Fprintf(sb, "comment(%q)", v.Data)
	}
}

