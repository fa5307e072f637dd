package builder

import "github.com/kasuga-html/htmltree/token"

// formattingEntry is the active-formatting-elements list's element
// type: either a live formatting element or a scope marker left by
// applet/marquee/object, template, caption, and table-cell boundaries.
// spec.md's Design Notes calls out the teacher's "escape-hatch class
// used as marker" for replacement by a real sum type; isMarker
// distinguishes the two cases instead of smuggling a sentinel Ref
// through the same field.
type formattingEntry struct {
	isMarker bool
	ref      Ref
}

// formattingList implements the active formatting elements list
// (spec.md §4.4), including the Noah's-ark clause and marker-bounded
// reconstruction, ported from the teacher's treebuilder/formatting.go.
type formattingList struct {
	arena   *arena
	entries []formattingEntry
}

func newFormattingList(a *arena) *formattingList {
	return &formattingList{arena: a}
}

// pushMarker records a scope boundary, used when entering an
// applet/marquee/object, template, caption, or table-cell context.
func (f *formattingList) pushMarker() {
	f.entries = append(f.entries, formattingEntry{isMarker: true})
}

// push appends a formatting element, first applying the Noah's-ark
// clause: if three elements with the same tag name, namespace, and
// attribute set already appear after the last marker, the earliest of
// them is removed.
func (f *formattingList) push(r Ref) {
	e := f.arena.get(r)
	matches := 0
	removeAt := -1
	for i := len(f.entries) - 1; i >= 0; i-- {
		entry := f.entries[i]
		if entry.isMarker {
			break
		}
		if sameFormattingIdentity(f.arena.get(entry.ref), e) {
			matches++
			removeAt = i
			if matches == 3 {
				f.arena.get(f.entries[removeAt].ref).isActiveFormatting = false
				f.entries = append(f.entries[:removeAt], f.entries[removeAt+1:]...)
				break
			}
		}
	}
	f.arena.get(r).isActiveFormatting = true
	f.entries = append(f.entries, formattingEntry{ref: r})
}

func sameFormattingIdentity(a, b *elem) bool {
	if a.ns != b.ns || a.local != b.local || len(a.attrs) != len(b.attrs) {
		return false
	}
	for _, at := range a.attrs {
		v, ok := b.attrByNSValue(at.Namespace, at.Local)
		if !ok || v != at.Value {
			return false
		}
	}
	return true
}

// removeElement deletes r's entry, wherever it sits (not necessarily
// at the end), used when an element is removed by the adoption
// agency algorithm or ends up popped without a matching end tag.
func (f *formattingList) removeElement(r Ref) {
	for i, entry := range f.entries {
		if !entry.isMarker && entry.ref == r {
			f.arena.get(r).isActiveFormatting = false
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}

// replace substitutes newRef for oldRef at the same list position,
// used by the adoption agency algorithm's bookmark step.
func (f *formattingList) replace(oldRef, newRef Ref) {
	for i, entry := range f.entries {
		if !entry.isMarker && entry.ref == oldRef {
			f.arena.get(oldRef).isActiveFormatting = false
			f.arena.get(newRef).isActiveFormatting = true
			f.entries[i] = formattingEntry{ref: newRef}
			return
		}
	}
}

// insertAt inserts newRef at list position idx, used to place the
// adoption agency's new formatting element at the bookmark position.
func (f *formattingList) insertAt(idx int, r Ref) {
	f.arena.get(r).isActiveFormatting = true
	f.entries = append(f.entries, formattingEntry{})
	copy(f.entries[idx+1:], f.entries[idx:])
	f.entries[idx] = formattingEntry{ref: r}
}

// indexOf returns the list slot of r, or -1.
func (f *formattingList) indexOf(r Ref) int {
	for i, entry := range f.entries {
		if !entry.isMarker && entry.ref == r {
			return i
		}
	}
	return -1
}

// last returns the final entry's ref, or false when the list is empty
// or ends with a marker.
func (f *formattingList) last() (Ref, bool) {
	if len(f.entries) == 0 || f.entries[len(f.entries)-1].isMarker {
		return noRef, false
	}
	return f.entries[len(f.entries)-1].ref, true
}

// clearToLastMarker pops entries until (and including) the most
// recent marker, or the list is empty. Used when a template, caption,
// table cell, or applet/marquee/object element is closed.
func (f *formattingList) clearToLastMarker() {
	for len(f.entries) > 0 {
		entry := f.entries[len(f.entries)-1]
		f.entries = f.entries[:len(f.entries)-1]
		if !entry.isMarker {
			f.arena.get(entry.ref).isActiveFormatting = false
		} else {
			return
		}
	}
}

// findByName returns the nearest formatting entry (scanning from the
// end toward the front, stopping at a marker) whose element has the
// given local name, mirroring "the list of active formatting
// elements, from the end, find the last element with that tag name"
// (the adoption agency algorithm's step 2).
func (f *formattingList) findByName(name string) (Ref, int, bool) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		entry := f.entries[i]
		if entry.isMarker {
			return noRef, -1, false
		}
		if f.arena.get(entry.ref).local == name {
			return entry.ref, i, true
		}
	}
	return noRef, -1, false
}

// reconstructActiveFormattingElements implements spec.md §4.4's
// "reconstruct the active formatting elements", ported from the
// teacher's reconstructActiveFormattingElements: formatting elements
// popped off the open stack by intervening content (e.g. a <p> that
// closed over a dangling <b>) are recreated, in list order, so later
// text keeps inheriting their effect.
func (b *Builder) reconstructActiveFormattingElements() {
	n := len(b.fmtList.entries)
	if n == 0 {
		return
	}
	last := b.fmtList.entries[n-1]
	if last.isMarker || b.stack.contains(last.ref) {
		return
	}

	index := n - 1
	for {
		index--
		if index < 0 {
			index = 0
			break
		}
		entry := b.fmtList.entries[index]
		if entry.isMarker || b.stack.contains(entry.ref) {
			index++
			break
		}
	}

	for index < len(b.fmtList.entries) {
		old := b.fmtList.entries[index].ref
		e := b.arena.get(old)
		attrs := make([]token.Attr, len(e.attrs))
		for i, a := range e.attrs {
			attrs[i] = token.Attr{Namespace: a.Namespace, Prefix: a.Prefix, Name: a.Local, Value: a.Value}
		}
		newRef := b.insertForeignElement(e.ns, e.local, attrs)
		b.arena.get(newRef).isActiveFormatting = true
		b.fmtList.entries[index] = formattingEntry{ref: newRef}
		index++
	}
}
