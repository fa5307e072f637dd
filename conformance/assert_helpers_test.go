package conformance

import (
	"testing"

	"github.com/kasuga-html/htmltree/domsink"
	"github.com/stretchr/testify/require"
)

// requireElement asserts n is an *domsink.Element with the given tag
// name and returns it.
func requireElement(t *testing.T, n domsink.Node, tagName string) *domsink.Element {
	t.Helper()
	elem, ok := n.(*domsink.Element)
	require.True(t, ok, "expected an element, got %T", n)
	require.Equal(t, tagName, elem.TagName)
	return elem
}

// firstElementChild returns parent's first child element named
// tagName, failing the test if none is found.
func firstElementChild(t *testing.T, parent *domsink.Element, tagName string) *domsink.Element {
	t.Helper()
	require.NotNil(t, parent)
	for _, child := range parent.Children() {
		if elem, ok := child.(*domsink.Element); ok && elem.TagName == tagName {
			return elem
		}
	}
	t.Fatalf("no <%s> child found under <%s>", tagName, parent.TagName)
	return nil
}

// textOf asserts n is a *domsink.Text and returns its data.
func textOf(t *testing.T, n domsink.Node) string {
	t.Helper()
	text, ok := n.(*domsink.Text)
	require.True(t, ok, "expected a text node, got %T", n)
	return text.Data
}
