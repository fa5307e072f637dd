package builder

import "github.com/kasuga-html/htmltree/domns"

// Ref is a small index into a session's element arena. The open
// stack and the active formatting list carry Refs, never owning
// pointers, per the arena pattern spec.md's Design Notes calls for in
// place of the teacher's cyclic parent/child *dom.Element graph.
type Ref int32

// noRef marks an unset Ref (0 is a valid arena index).
const noRef Ref = -1

// elem is the internal record for an open or formerly-open element
// (spec.md §3 "Parser element"). Exactly one arena entry exists per
// element the builder has ever created.
type elem struct {
	ns       domns.Namespace
	prefix   string
	local    string // current local name, possibly SVG-case-adjusted
	original string // pre-adjustment name, used to match end tags in foreign content

	attrs    []Attribute
	attrByNS map[[2]string]int // (namespace, local) -> index into attrs

	isOpen             bool
	isActiveFormatting bool

	node Node
}

// arena owns every elem created during a parse session, indexed by
// Ref. It never shrinks: elements are marked closed/dropped via the
// isOpen/isActiveFormatting flags, not removed from the arena.
type arena struct {
	elems []elem
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) create(ns domns.Namespace, prefix, local string, attrs []Attribute, node Node) Ref {
	e := elem{
		ns:       ns,
		prefix:   prefix,
		local:    local,
		original: local,
		node:     node,
	}
	if len(attrs) > 0 {
		e.attrs = append([]Attribute(nil), attrs...)
		e.attrByNS = make(map[[2]string]int, len(attrs))
		for i, at := range attrs {
			key := [2]string{at.Namespace, at.Local}
			if _, dup := e.attrByNS[key]; !dup {
				e.attrByNS[key] = i
			}
		}
	}
	a.elems = append(a.elems, e)
	return Ref(len(a.elems) - 1)
}

func (a *arena) get(r Ref) *elem {
	return &a.elems[r]
}

func (a *arena) typeName(r Ref) string {
	return a.get(r).local
}

func (a *arena) namespace(r Ref) domns.Namespace {
	return a.get(r).ns
}

// hasAttr reports whether r carries an attribute with the given
// namespace and local name.
func (a *arena) hasAttr(r Ref, ns, local string) (string, bool) {
	e := a.get(r)
	if e.attrByNS == nil {
		return "", false
	}
	idx, ok := e.attrByNS[[2]string{ns, local}]
	if !ok {
		return "", false
	}
	return e.attrs[idx].Value, true
}
