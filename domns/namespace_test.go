package domns_test

import (
	"testing"

	"github.com/kasuga-html/htmltree/domns"
	"github.com/stretchr/testify/require"
)

func TestNamespaceURI(t *testing.T) {
	cases := map[domns.Namespace]string{
		domns.HTML:   "http://www.w3.org/1999/xhtml",
		domns.MathML: "http://www.w3.org/1998/Math/MathML",
		domns.SVG:    "http://www.w3.org/2000/svg",
		domns.XLink:  "http://www.w3.org/1999/xlink",
		domns.XML:    "http://www.w3.org/XML/1998/namespace",
		domns.XMLNS:  "http://www.w3.org/2000/xmlns/",
	}
	for ns, want := range cases {
		require.Equal(t, want, ns.URI())
	}
}

func TestNamespaceString(t *testing.T) {
	cases := map[domns.Namespace]string{
		domns.HTML:   "html",
		domns.MathML: "mathml",
		domns.SVG:    "svg",
		domns.XLink:  "xlink",
		domns.XML:    "xml",
		domns.XMLNS:  "xmlns",
	}
	for ns, want := range cases {
		require.Equal(t, want, ns.String())
	}
}

func TestUnknownNamespaceValue(t *testing.T) {
	var unknown domns.Namespace = 255
	require.Equal(t, "", unknown.URI())
	require.Equal(t, "unknown", unknown.String())
}
