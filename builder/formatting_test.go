package builder

import (
	"testing"

	"github.com/kasuga-html/htmltree/domns"
	"github.com/stretchr/testify/require"
)

// TestFormattingListNoahsArkRemovesEarliestDuplicate checks spec.md
// §4.4's Noah's-ark clause directly against formattingList.push,
// bypassing the tokenizer/sink entirely: arena.create accepts any
// Node value (Node is declared as `any`), so a nil placeholder is
// enough to build three identical-identity formatting entries and
// observe the fourth push evict the earliest one.
func TestFormattingListNoahsArkRemovesEarliestDuplicate(t *testing.T) {
	a := newArena()
	attrs := []Attribute{{Local: "color", Value: "red"}}

	r1 := a.create(domns.HTML, "", "font", attrs, nil)
	r2 := a.create(domns.HTML, "", "font", attrs, nil)
	r3 := a.create(domns.HTML, "", "font", attrs, nil)
	r4 := a.create(domns.HTML, "", "font", attrs, nil)

	f := newFormattingList(a)
	f.push(r1)
	f.push(r2)
	f.push(r3)
	require.Equal(t, 3, len(f.entries))

	f.push(r4)
	require.Equal(t, 3, len(f.entries), "Noah's ark should cap same-identity entries at 3")
	require.Equal(t, -1, f.indexOf(r1), "earliest duplicate must be evicted")
	require.False(t, a.get(r1).isActiveFormatting, "evicted entry's flag must be cleared")

	require.NotEqual(t, -1, f.indexOf(r2))
	require.NotEqual(t, -1, f.indexOf(r3))
	require.NotEqual(t, -1, f.indexOf(r4))
	require.True(t, a.get(r4).isActiveFormatting)
}

// TestFormattingListNoahsArkIgnoresPastMarker checks that a scope
// marker (pushed on entering an object/template/caption/cell boundary)
// stops the Noah's-ark scan: four same-identity entries split across
// a marker never trigger eviction.
func TestFormattingListNoahsArkIgnoresPastMarker(t *testing.T) {
	a := newArena()
	attrs := []Attribute{{Local: "color", Value: "red"}}

	r1 := a.create(domns.HTML, "", "font", attrs, nil)
	r2 := a.create(domns.HTML, "", "font", attrs, nil)
	r3 := a.create(domns.HTML, "", "font", attrs, nil)
	r4 := a.create(domns.HTML, "", "font", attrs, nil)

	f := newFormattingList(a)
	f.push(r1)
	f.push(r2)
	f.push(r3)
	f.pushMarker()
	f.push(r4)

	require.Equal(t, 5, len(f.entries))
	require.NotEqual(t, -1, f.indexOf(r1))
	require.NotEqual(t, -1, f.indexOf(r2))
	require.NotEqual(t, -1, f.indexOf(r3))
	require.NotEqual(t, -1, f.indexOf(r4))
}

// TestFormattingListNoahsArkDistinguishesAttributes checks that
// attribute values are part of the identity test: three <font
// color=red> followed by a <font color=blue> must not evict anything,
// since the fourth element does not share the others' identity.
func TestFormattingListNoahsArkDistinguishesAttributes(t *testing.T) {
	a := newArena()
	red := []Attribute{{Local: "color", Value: "red"}}
	blue := []Attribute{{Local: "color", Value: "blue"}}

	r1 := a.create(domns.HTML, "", "font", red, nil)
	r2 := a.create(domns.HTML, "", "font", red, nil)
	r3 := a.create(domns.HTML, "", "font", red, nil)
	r4 := a.create(domns.HTML, "", "font", blue, nil)

	f := newFormattingList(a)
	f.push(r1)
	f.push(r2)
	f.push(r3)
	f.push(r4)

	require.Equal(t, 4, len(f.entries))
	require.NotEqual(t, -1, f.indexOf(r1))
}
