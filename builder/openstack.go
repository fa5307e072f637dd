package builder

import "github.com/kasuga-html/htmltree/domns"

// openStack models the stack of open elements (spec.md §4.4). It
// holds Refs in bottom-to-top order; index 0 is always the <html>
// element once one has been inserted.
type openStack struct {
	arena *arena
	items []Ref
}

func newOpenStack(a *arena) *openStack {
	return &openStack{arena: a}
}

func (s *openStack) push(r Ref) {
	s.arena.get(r).isOpen = true
	s.items = append(s.items, r)
}

func (s *openStack) pop() Ref {
	n := len(s.items)
	r := s.items[n-1]
	s.items = s.items[:n-1]
	s.arena.get(r).isOpen = false
	return r
}

func (s *openStack) popUntilPopped(target Ref) {
	for {
		r := s.pop()
		if r == target {
			return
		}
	}
}

func (s *openStack) current() Ref {
	if len(s.items) == 0 {
		return noRef
	}
	return s.items[len(s.items)-1]
}

func (s *openStack) isEmpty() bool {
	return len(s.items) == 0
}

func (s *openStack) len() int {
	return len(s.items)
}

func (s *openStack) at(i int) Ref {
	return s.items[i]
}

// contains reports whether r is anywhere on the stack.
func (s *openStack) contains(r Ref) bool {
	for _, it := range s.items {
		if it == r {
			return true
		}
	}
	return false
}

// indexOf returns the stack slot of r, or -1.
func (s *openStack) indexOf(r Ref) int {
	for i, it := range s.items {
		if it == r {
			return i
		}
	}
	return -1
}

// remove deletes r from the stack wherever it sits, used by the
// adoption agency algorithm and end-tag handling that closes elements
// out of stack order.
func (s *openStack) remove(r Ref) {
	idx := s.indexOf(r)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.arena.get(r).isOpen = false
}

// insertAfter inserts newRef immediately above existing in the stack.
func (s *openStack) insertAfter(existing, newRef Ref) {
	idx := s.indexOf(existing)
	if idx < 0 {
		s.push(newRef)
		return
	}
	s.arena.get(newRef).isOpen = true
	s.items = append(s.items, noRef)
	copy(s.items[idx+2:], s.items[idx+1:])
	s.items[idx+1] = newRef
}

// replace substitutes newRef for oldRef at the same stack slot,
// used by the adoption agency algorithm's "bookmark" step.
func (s *openStack) replace(oldRef, newRef Ref) {
	idx := s.indexOf(oldRef)
	if idx < 0 {
		return
	}
	s.arena.get(oldRef).isOpen = false
	s.arena.get(newRef).isOpen = true
	s.items[idx] = newRef
}

// scopeKind selects which barrier set hasElementInScope tests
// against (spec.md §4.4 names four: default, list-item, button,
// table; the teacher's utils.go and scopes.go generalize the same
// predicate over different barrier sets for table-body/table-row/
// select contexts too).
type scopeKind int

const (
	scopeDefault scopeKind = iota
	scopeListItem
	scopeButton
	scopeTable
	scopeTableBody
	scopeTableRow
	scopeSelect
)

// defaultScopeBarriers is the barrier set shared by default,
// list-item, and button scope (each adds its own extra member on
// top of this set).
var defaultScopeBarriers = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true,
	"td": true, "th": true, "marquee": true, "object": true,
	"template": true,
	// MathML text-integration points and SVG integration points also
	// act as scope barriers; matched by namespace below.
}

// hasElementInScope implements "has an element in the specific
// scope" for HTML-namespace target names, grounded in the teacher's
// hasElementInScope/hasElementInTableScope/hasElementInListItemScope/
// hasElementInButtonScope/hasElementInSelectScope family in
// treebuilder/utils.go, collapsed into one parameterized predicate.
func (s *openStack) hasElementInScope(kind scopeKind, target string) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		e := s.arena.get(s.items[i])
		if e.ns == domns.HTML && e.local == target {
			return true
		}
		if isBarrier(kind, e) {
			return false
		}
	}
	return false
}

// hasAnyElementInScope is hasElementInScope generalized to a set of
// target names, used by the heading (h1-h6) end-tag rule which treats
// any of the six as satisfying the same scope check.
func (s *openStack) hasAnyElementInScope(kind scopeKind, targets map[string]bool) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		e := s.arena.get(s.items[i])
		if e.ns == domns.HTML && targets[e.local] {
			return true
		}
		if isBarrier(kind, e) {
			return false
		}
	}
	return false
}

func isBarrier(kind scopeKind, e *elem) bool {
	switch kind {
	case scopeSelect:
		// Select scope is inverted: every element except optgroup/
		// option is a barrier.
		return !(e.ns == domns.HTML && (e.local == "optgroup" || e.local == "option"))
	case scopeTable:
		return e.ns == domns.HTML && (e.local == "html" || e.local == "table" || e.local == "template")
	case scopeTableBody:
		return e.ns == domns.HTML && (e.local == "html" || e.local == "tbody" || e.local == "thead" || e.local == "tfoot" || e.local == "template")
	case scopeTableRow:
		return e.ns == domns.HTML && (e.local == "html" || e.local == "tr" || e.local == "template")
	}
	if e.ns != domns.HTML {
		if isMathMLTextIntegrationPoint(e) || isHTMLIntegrationPoint(e) {
			return true
		}
		return false
	}
	if defaultScopeBarriers[e.local] {
		return true
	}
	switch kind {
	case scopeListItem:
		return e.local == "ol" || e.local == "ul"
	case scopeButton:
		return e.local == "button"
	}
	return false
}

// specialElements is the HTML Living Standard's "special" category
// (spec.md §4.4 implied end tags / reset-insertion-mode use it),
// ported from the teacher's constants.SpecialElements set.
var specialElements = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true,
	"aside": true, "base": true, "basefont": true, "bgsound": true,
	"blockquote": true, "body": true, "br": true, "button": true,
	"caption": true, "center": true, "col": true, "colgroup": true,
	"dd": true, "details": true, "dir": true, "div": true, "dl": true,
	"dt": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true,
	"frameset": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "head": true, "header": true, "hgroup": true,
	"hr": true, "html": true, "iframe": true, "img": true, "input": true,
	"keygen": true, "li": true, "link": true, "listing": true,
	"main": true, "marquee": true, "menu": true, "meta": true,
	"nav": true, "noembed": true, "noframes": true, "noscript": true,
	"object": true, "ol": true, "p": true, "param": true, "plaintext": true,
	"pre": true, "script": true, "search": true, "section": true,
	"select": true, "source": true, "style": true, "summary": true,
	"table": true, "tbody": true, "td": true, "template": true,
	"textarea": true, "tfoot": true, "th": true, "thead": true,
	"title": true, "tr": true, "track": true, "ul": true, "wbr": true,
	"xmp": true,
}

func isSpecial(e *elem) bool {
	return e.ns == domns.HTML && specialElements[e.local]
}

// implicitlyCloseable is the implied-end-tags set (spec.md §4.4).
var implicitlyCloseable = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
}

// implicitlyCloseableThorough is the wider set used by
// generateImpliedEndTagsThorough; implicitlyCloseable above is the set
// used by generateImpliedEndTags.
var implicitlyCloseableThorough = map[string]bool{
	"caption": true, "colgroup": true, "dd": true, "dt": true, "li": true,
	"optgroup": true, "option": true, "p": true, "rb": true, "rp": true,
	"rt": true, "rtc": true, "tbody": true, "td": true, "tfoot": true,
	"th": true, "thead": true, "tr": true,
}

// generateImpliedEndTags pops elements from the stack whose local
// name is in the implied-end-tags set, skipping any element whose
// name equals except. Grounded in treebuilder/utils.go's
// generateImpliedEndTags.
func (b *Builder) generateImpliedEndTags(except string) {
	for {
		r := b.stack.current()
		if r == noRef {
			return
		}
		e := b.arena.get(r)
		if e.ns != domns.HTML || !implicitlyCloseable[e.local] || e.local == except {
			return
		}
		b.stack.pop()
	}
}

// generateImpliedEndTagsThorough is "generate all implied end tags
// thoroughly", used when a template element is closed.
func (b *Builder) generateImpliedEndTagsThorough() {
	for {
		r := b.stack.current()
		if r == noRef {
			return
		}
		e := b.arena.get(r)
		if e.ns != domns.HTML || !implicitlyCloseableThorough[e.local] {
			return
		}
		b.stack.pop()
	}
}

// isMathMLTextIntegrationPoint reports whether e is one of MathML's
// mi/mo/mn/ms/mtext, which act as HTML-content integration points
// inside foreign content (spec.md §4.5).
func isMathMLTextIntegrationPoint(e *elem) bool {
	if e.ns != domns.MathML {
		return false
	}
	switch e.local {
	case "mi", "mo", "mn", "ms", "mtext":
		return true
	}
	return false
}

// isHTMLIntegrationPoint reports whether e is an SVG/MathML HTML
// integration point (spec.md §4.5): MathML annotation-xml with a
// text/html or application/xhtml+xml encoding, or any of the SVG
// foreignObject/desc/title elements.
func isHTMLIntegrationPoint(e *elem) bool {
	switch e.ns {
	case domns.MathML:
		if e.local != "annotation-xml" {
			return false
		}
		enc, ok := e.attrByNSValue("", "encoding")
		if !ok {
			return false
		}
		return equalsFoldASCII(enc, "text/html") || equalsFoldASCII(enc, "application/xhtml+xml")
	case domns.SVG:
		switch e.local {
		case "foreignObject", "desc", "title":
			return true
		}
	}
	return false
}

func (e *elem) attrByNSValue(ns, local string) (string, bool) {
	if e.attrByNS == nil {
		return "", false
	}
	idx, ok := e.attrByNS[[2]string{ns, local}]
	if !ok {
		return "", false
	}
	return e.attrs[idx].Value, true
}

func equalsFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
