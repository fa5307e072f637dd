package builder

import (
	"strings"

	"github.com/kasuga-html/htmltree/domns"
	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// tableFosterTargets is the set of elements whose current-node
// presence triggers foster parenting for misnested content (spec.md
// §4.4's "appropriate place for inserting a node"), ported from the
// teacher's constants.TableFosterTargets.
var tableFosterTargets = map[string]bool{
	"table": true, "tbody": true, "tfoot": true, "thead": true, "tr": true,
}

// tableAllowedChildren names the elements a table-context current
// node may legitimately insert without triggering foster parenting
// for a *new element* (characters always foster outside these
// targets; elements only foster when not in this set).
var tableAllowedChildren = map[string]bool{
	"table": true, "tbody": true, "tfoot": true, "thead": true, "tr": true,
	"style": true, "script": true, "template": true, "input": true,
	"caption": true, "colgroup": true, "col": true,
}

// appropriateInsertionLocation implements "the appropriate place for
// inserting a node" for the *current* element, returning the parent
// node, and optionally a reference child to insert before (the bool
// is false when the node should be appended instead).
func (b *Builder) appropriateInsertionLocation(forTag string, isText bool) (Node, Node, bool) {
	cur := b.current()
	if cur != noRef {
		e := b.arena.get(cur)
		if e.ns == domns.HTML && e.local == "template" {
			return e.node, nil, false
		}
	}
	if !b.fosterParenting || cur == noRef {
		return b.nodeOf(cur), nil, false
	}
	e := b.arena.get(cur)
	if e.ns != domns.HTML || !tableFosterTargets[e.local] {
		return b.nodeOf(cur), nil, false
	}
	if isText {
		return b.fosterInsertionLocation()
	}
	if forTag != "" && tableAllowedChildren[forTag] {
		return b.nodeOf(cur), nil, false
	}
	return b.fosterInsertionLocation()
}

func (b *Builder) nodeOf(r Ref) Node {
	if r == noRef {
		return b.docNode
	}
	return b.arena.get(r).node
}

// fosterInsertionLocation walks the stack for the last <table> (or,
// if nearer the top, the last <template>) and returns the slot
// immediately before it, per spec.md §4.4. Ported from the teacher's
// fosterInsertionLocation, generalized onto Sink.InsertBefore since
// the builder cannot inspect or splice the application's child list
// directly.
func (b *Builder) fosterInsertionLocation() (Node, Node, bool) {
	tableIdx, templateIdx := -1, -1
	for i := b.stack.len() - 1; i >= 0; i-- {
		e := b.arena.get(b.stack.at(i))
		if e.ns != domns.HTML {
			continue
		}
		if tableIdx < 0 && e.local == "table" {
			tableIdx = i
		}
		if templateIdx < 0 && e.local == "template" {
			templateIdx = i
		}
		if tableIdx >= 0 && templateIdx >= 0 {
			break
		}
	}
	if templateIdx >= 0 && (tableIdx < 0 || templateIdx > tableIdx) {
		return b.nodeOf(b.stack.at(templateIdx)), nil, false
	}
	if tableIdx < 0 {
		return b.nodeOf(b.current()), nil, false
	}
	tableRef := b.stack.at(tableIdx)
	if tableIdx == 0 {
		return b.docNode, b.nodeOf(tableRef), true
	}
	// A Sink never exposes a node's parent, so unlike the teacher we
	// cannot special-case "table already has a parent": the stack slot
	// immediately below the table is always its parent by construction,
	// since the builder is the only thing that ever inserts a table.
	return b.nodeOf(b.stack.at(tableIdx - 1)), b.nodeOf(tableRef), true
}

func (b *Builder) insertCharacter(loc token.Location, data string) {
	if data == "" {
		return
	}
	parent, before, hasBefore := b.appropriateInsertionLocation("", true)
	node := b.sink.CreateText(data)
	if hasBefore {
		b.sink.InsertBefore(node, parent, before)
	} else {
		b.sink.AppendChild(node, parent)
	}
}

func (b *Builder) insertComment(data string) {
	parent, before, hasBefore := b.appropriateInsertionLocation("", false)
	node := b.sink.CreateComment(data)
	if hasBefore {
		b.sink.InsertBefore(node, parent, before)
	} else {
		b.sink.AppendChild(node, parent)
	}
}

func tokenAttrsToSink(attrs []token.Attr) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attribute, 0, len(attrs))
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		key := a.Namespace + "\x00" + a.Name
		if seen[key] {
			continue // duplicate attribute: first occurrence wins, per spec.md §3.2
		}
		seen[key] = true
		out = append(out, Attribute{Namespace: a.Namespace, Prefix: a.Prefix, Local: a.Name, Value: a.Value})
	}
	return out
}

// insertHTMLElement creates an HTML-namespace element for tok, inserts
// it at the appropriate place, and pushes it onto the open stack.
func (b *Builder) insertHTMLElement(tok token.Token) Ref {
	return b.insertForeignElement(domns.HTML, tok.Name, tok.Attrs)
}

// insertForeignElement creates an element in the given namespace,
// inserts it at the appropriate insertion location (honoring foster
// parenting when active), and pushes it onto the open stack.
func (b *Builder) insertForeignElement(ns domns.Namespace, local string, attrs []token.Attr) Ref {
	sinkAttrs := tokenAttrsToSink(attrs)
	node := b.sink.CreateElement(ns, "", local, sinkAttrs)
	parent, before, hasBefore := b.appropriateInsertionLocation(local, false)
	if hasBefore {
		b.sink.InsertBefore(node, parent, before)
	} else {
		b.sink.AppendChild(node, parent)
	}
	ref := b.arena.create(ns, "", local, sinkAttrs, node)
	b.stack.push(ref)
	return ref
}

func (b *Builder) insertDoctype(name, publicID, systemID string) {
	node := b.sink.CreateDoctype(name, publicID, systemID)
	b.sink.AppendChild(node, b.docNode)
}

func (b *Builder) popCurrent() Ref {
	return b.stack.pop()
}

func (b *Builder) clearStackBackToTableContext() {
	b.clearStackUntil(map[string]bool{"table": true, "template": true, "html": true})
}

func (b *Builder) clearStackBackToTableBodyContext() {
	b.clearStackUntil(map[string]bool{"tbody": true, "tfoot": true, "thead": true, "template": true, "html": true})
}

func (b *Builder) clearStackBackToTableRowContext() {
	b.clearStackUntil(map[string]bool{"tr": true, "template": true, "html": true})
}

func (b *Builder) clearStackUntil(names map[string]bool) {
	for {
		r := b.current()
		if r == noRef {
			return
		}
		e := b.arena.get(r)
		if e.ns == domns.HTML && names[e.local] {
			return
		}
		b.stack.pop()
	}
}

func (b *Builder) closeCaptionElement() bool {
	if !b.stack.hasElementInScope(scopeTable, "caption") {
		return false
	}
	b.generateImpliedEndTags("")
	for {
		r := b.stack.pop()
		if b.arena.get(r).local == "caption" {
			break
		}
	}
	b.fmtList.clearToLastMarker()
	b.mode = ModeInTable
	return true
}

func (b *Builder) closeTableCell() bool {
	if !b.stack.hasElementInScope(scopeTable, "td") && !b.stack.hasElementInScope(scopeTable, "th") {
		return false
	}
	b.generateImpliedEndTags("")
	for {
		r := b.stack.pop()
		local := b.arena.get(r).local
		if local == "td" || local == "th" {
			break
		}
	}
	b.fmtList.clearToLastMarker()
	b.mode = ModeInRow
	return true
}

// resetInsertionModeAppropriately implements spec.md §4.4's insertion
// mode reset, ported from the teacher's resetInsertionModeAppropriately.
func (b *Builder) resetInsertionModeAppropriately() {
	for i := b.stack.len() - 1; i >= 0; i-- {
		r := b.stack.at(i)
		e := b.arena.get(r)
		last := i == 0
		node := r
		if b.fragment != nil && last {
			node = b.fragmentElemRef
			e = b.arena.get(node)
		}
		if e.ns != domns.HTML {
			if last {
				b.mode = ModeInBody
				return
			}
			continue
		}
		switch e.local {
		case "select":
			b.mode = b.resetModeForSelect(i)
			return
		case "td", "th":
			if !last {
				b.mode = ModeInCell
				return
			}
		case "tr":
			b.mode = ModeInRow
			return
		case "tbody", "tfoot", "thead":
			b.mode = ModeInTableBody
			return
		case "caption":
			b.mode = ModeInCaption
			return
		case "colgroup":
			b.mode = ModeInColumnGroup
			return
		case "table":
			b.mode = ModeInTable
			return
		case "template":
			if len(b.templateModes) > 0 {
				b.mode = b.templateModes[len(b.templateModes)-1]
				return
			}
		case "head":
			if !last {
				b.mode = ModeInHead
				return
			}
		case "body":
			b.mode = ModeInBody
			return
		case "html":
			if b.headRef == noRef {
				b.mode = ModeBeforeHead
			} else {
				b.mode = ModeAfterHead
			}
			return
		}
		if last {
			b.mode = ModeInBody
			return
		}
	}
	b.mode = ModeInBody
}

func (b *Builder) resetModeForSelect(fromIdx int) InsertionMode {
	for i := fromIdx; i >= 0; i-- {
		e := b.arena.get(b.stack.at(i))
		if e.ns != domns.HTML {
			continue
		}
		switch e.local {
		case "table":
			if i != 0 {
				return ModeInSelectInTable
			}
		case "html":
			return ModeInSelect
		}
	}
	return ModeInSelect
}

func (b *Builder) anyOtherEndTag(name string) {
	for i := b.stack.len() - 1; i >= 0; i-- {
		e := b.arena.get(b.stack.at(i))
		if e.ns == domns.HTML && e.local == name {
			b.generateImpliedEndTags(name)
			for b.stack.len() > i {
				b.stack.pop()
			}
			return
		}
		if isSpecial(e) {
			return
		}
	}
}

func filterWhitespace(data string) string {
	if data == "" {
		return ""
	}
	var sb strings.Builder
	for _, r := range data {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			continue
		default:
			return false
		}
	}
	return true
}

func isHiddenInput(attrs []token.Attr) bool {
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		if strings.EqualFold(a.Name, "type") && strings.EqualFold(a.Value, "hidden") {
			return true
		}
	}
	return false
}

func (b *Builder) reportLoc(tok token.Token, code perr.Code) {
	b.report(tok.Loc, code)
}
