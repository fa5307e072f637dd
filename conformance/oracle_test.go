package conformance

import (
	"strings"
	"testing"

	"github.com/kasuga-html/htmltree/domsink"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// oracleTagSequence parses input with golang.org/x/net/html and
// returns every element tag name in document (preorder) order, our
// cross-check oracle grounded in the teacher's
// benchmark_comparison_test.go, repurposed here from a speed
// comparison into a shape comparison.
func oracleTagSequence(t *testing.T, input string) []string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(input))
	require.NoError(t, err)

	var tags []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return tags
}

// ourTagSequence walks a parsed domsink document the same way.
func ourTagSequence(doc *domsink.Document) []string {
	var tags []string
	var walk func(domsink.Node)
	walk = func(n domsink.Node) {
		if elem, ok := n.(*domsink.Element); ok {
			tags = append(tags, elem.TagName)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(doc)
	return tags
}

// TestOracleAgreesOnElementShape cross-checks our pipeline's element
// tag sequence against golang.org/x/net/html for each scenario in
// spec.md §8, plus a few structurally tricky documents the teacher's
// html5lib-style fixtures exercised (table foster-parenting, nested
// formatting, implied end tags).
func TestOracleAgreesOnElementShape(t *testing.T) {
	cases := []string{
		`<!doctype html>`,
		`<!doctype html><html><head><noscript> x</noscript></head></html>`,
		`<!doctype html><html><body>1<i>2<b>3</i>4</b>5</body></html>`,
		`<!doctype html><html><body><svg><g><path/></g></svg></body></html>`,
		`<!doctype html><html><body>1</br>2</body></html>`,
		`<!doctype html><table><tr><td>cell</td></tr></table>`,
		`<!doctype html><ul><li>a<li>b<li>c</ul>`,
		`<!doctype html><p>one<p>two`,
		`<!doctype html><div><span><b>bold</div>after`,
	}

	for _, input := range cases {
		input := input
		t.Run(input, func(t *testing.T) {
			ours := ourTagSequence(parseHTML(input).Doc)
			want := oracleTagSequence(t, input)
			require.Equal(t, want, ours)
		})
	}
}
