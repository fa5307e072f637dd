package builder

import (
	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// processInSelect is spec.md §4.6's "in select" insertion mode.
func (b *Builder) processInSelect(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		data := tok.Text
		if data == "" {
			return false
		}
		b.insertCharacter(tok.Loc, data)
		return false

	case token.Comment:
		b.insertComment(tok.Text)
		return false

	case token.Doctype:
		b.report(tok.Loc, perr.UnexpectedDOCTYPE)
		return false

	case token.EndOfInput:
		return b.processInBody(tok)

	case token.StartTag:
		switch tok.Name {
		case "html":
			return b.processInBody(tok)
		case "option":
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "option" {
				b.stack.pop()
			}
			b.insertHTMLElement(tok)
			return false
		case "optgroup":
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "option" {
				b.stack.pop()
			}
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "optgroup" {
				b.stack.pop()
			}
			b.insertHTMLElement(tok)
			return false
		case "hr":
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "option" {
				b.stack.pop()
			}
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "optgroup" {
				b.stack.pop()
			}
			ref := b.insertHTMLElement(tok)
			b.stack.remove(ref)
			return false
		case "select":
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			return b.closeSelect()
		case "input", "keygen", "textarea":
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			if !b.stack.hasElementInScope(scopeSelect, "select") {
				return false
			}
			b.closeSelect()
			return true
		case "script", "template":
			return b.processInHead(tok)
		default:
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			return false
		}

	case token.EndTag:
		switch tok.Name {
		case "optgroup":
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "option" {
				if b.stack.len() > 1 && b.arena.get(b.stack.at(b.stack.len()-2)).local == "optgroup" {
					b.stack.pop()
				}
			}
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "optgroup" {
				b.stack.pop()
				return false
			}
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		case "option":
			if cur := b.current(); cur != noRef && b.arena.get(cur).local == "option" {
				b.stack.pop()
				return false
			}
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		case "select":
			if !b.stack.hasElementInScope(scopeSelect, "select") {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.closeSelect()
			return false
		case "template":
			return b.processInHead(tok)
		default:
			b.report(tok.Loc, perr.UnexpectedEndTag)
			return false
		}
	}
	return false
}

// closeSelect pops elements until the select element itself is
// popped, then resets the insertion mode; used by both the "select"
// end tag and the several start tags that implicitly close it.
func (b *Builder) closeSelect() bool {
	for {
		r := b.stack.pop()
		if b.arena.get(r).local == "select" {
			break
		}
	}
	b.resetInsertionModeAppropriately()
	return false
}

// processInSelectInTable is spec.md §4.6's "in select in table"
// insertion mode: a select embedded inside a table context closes
// itself on any table-structural tag, falling back to "in select"
// otherwise.
func (b *Builder) processInSelectInTable(tok token.Token) bool {
	closesOnStart := map[string]bool{
		"caption": true, "table": true, "tbody": true, "tfoot": true,
		"thead": true, "tr": true, "td": true, "th": true,
	}
	if tok.Kind == token.StartTag && closesOnStart[tok.Name] {
		b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
		for {
			r := b.stack.pop()
			if b.arena.get(r).local == "select" {
				break
			}
		}
		b.resetInsertionModeAppropriately()
		return true
	}
	if tok.Kind == token.EndTag && closesOnStart[tok.Name] {
		if !b.stack.hasElementInScope(scopeTable, tok.Name) {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		for {
			r := b.stack.pop()
			if b.arena.get(r).local == "select" {
				break
			}
		}
		b.resetInsertionModeAppropriately()
		return true
	}
	return b.processInSelect(tok)
}
