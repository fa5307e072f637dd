package conformance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarioBasicDocument covers spec.md §8 scenario 1: a bare
// doctype produces an empty html/head/body skeleton with no errors.
func TestScenarioBasicDocument(t *testing.T) {
	res := parseHTML("<!doctype html>")
	require.Empty(t, res.Errors)
	require.NotNil(t, res.Doc.Doctype)
	require.Equal(t, "html", res.Doc.Doctype.Name)
	require.Equal(t, "", res.Doc.Doctype.PublicID)
	require.Equal(t, "", res.Doc.Doctype.SystemID)

	html := res.Doc.DocumentElement()
	require.NotNil(t, html)
	require.NotNil(t, res.Doc.Head())
	require.NotNil(t, res.Doc.Body())
}

// TestScenarioNoscriptInHead covers scenario 2: stray text inside
// in-head-noscript is relocated out to the body, with one parse error.
func TestScenarioNoscriptInHead(t *testing.T) {
	res := parseHTML(`<!doctype html><html><head><noscript> x</noscript></head></html>`)
	require.Len(t, res.Errors, 1)

	head := res.Doc.Head()
	require.NotNil(t, head)
	noscript := firstElementChild(t, head, "noscript")
	require.Equal(t, " ", noscript.Text())

	body := res.Doc.Body()
	require.NotNil(t, body)
	require.Equal(t, "x", body.Text())
}

// TestScenarioAdoptionAgency covers scenario 3: misnested <i>/<b>
// tags are repaired by the adoption agency algorithm.
func TestScenarioAdoptionAgency(t *testing.T) {
	res := parseHTML(`<!doctype html><html><body>1<i>2<b>3</i>4</b>5</body></html>`)
	require.Len(t, res.Errors, 1)

	body := res.Doc.Body()
	require.NotNil(t, body)

	children := body.Children()
	require.Len(t, children, 4)

	i := requireElement(t, children[1], "i")
	require.Equal(t, "2", i.Text())
	bInsideI := firstElementChild(t, i, "b")
	require.Equal(t, "3", bInsideI.Text())

	bAfterI := requireElement(t, children[2], "b")
	require.Equal(t, "4", bAfterI.Text())
}

// TestScenarioForeignSVG covers scenario 4: foreign SVG content is
// tracked in its own namespace while nesting is preserved verbatim.
func TestScenarioForeignSVG(t *testing.T) {
	res := parseHTML(`<!doctype html><html><body><svg><g><path/></g></svg></body></html>`)
	require.Empty(t, res.Errors)

	body := res.Doc.Body()
	svg := firstElementChild(t, body, "svg")
	require.Equal(t, "http://www.w3.org/2000/svg", svg.Namespace.URI())

	g := firstElementChild(t, svg, "g")
	path := firstElementChild(t, g, "path")
	require.Equal(t, svg.Namespace, g.Namespace)
	require.Equal(t, svg.Namespace, path.Namespace)
	require.Empty(t, path.Children())
}

// TestScenarioSpuriousEndBr covers scenario 5: a stray </br> is
// rewritten into a <br> start tag.
func TestScenarioSpuriousEndBr(t *testing.T) {
	res := parseHTML(`<!doctype html><html><body>1</br>2</body></html>`)
	require.Len(t, res.Errors, 1)

	body := res.Doc.Body()
	children := body.Children()
	require.Len(t, children, 3)
	require.Equal(t, "1", textOf(t, children[0]))
	br := requireElement(t, children[1], "br")
	require.Empty(t, br.Children())
	require.Equal(t, "2", textOf(t, children[2]))
}

// TestScenarioDoctypeMissingWhitespace covers scenario 6: a DOCTYPE
// missing whitespace between public/system identifiers still yields
// both identifiers, plus the associated parse error.
func TestScenarioDoctypeMissingWhitespace(t *testing.T) {
	res := parseHTML(`<!DOCTYPE html PUBLIC 'foo''bar'>`)
	require.Len(t, res.Errors, 1)
	require.NotNil(t, res.Doc.Doctype)
	require.Equal(t, "foo", res.Doc.Doctype.PublicID)
	require.Equal(t, "bar", res.Doc.Doctype.SystemID)
}

// TestPropertyNoLeaks covers the §8 "no leaks" property: end of input
// always yields a fully closed tree (every element has a parent chain
// up to the document, nothing left dangling).
func TestPropertyNoLeaks(t *testing.T) {
	res := parseHTML(`<!doctype html><html><body><div><p>unterminated`)
	require.Empty(t, res.Errors)
	body := res.Doc.Body()
	div := firstElementChild(t, body, "div")
	p := firstElementChild(t, div, "p")
	require.Equal(t, "unterminated", p.Text())
}
