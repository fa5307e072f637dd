package builder

import (
	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// processInTable is spec.md §4.6's "in table" insertion mode, ported
// from the teacher's processInTable: most tokens that aren't
// table-structural fall through to "in body" (the classic "foster
// parenting" entry point for misnested content).
func (b *Builder) processInTable(tok token.Token) bool {
	if tok.Kind == token.Data {
		if cur := b.current(); cur != noRef {
			local := b.arena.get(cur).local
			if local == "table" || local == "tbody" || local == "tfoot" || local == "thead" || local == "tr" {
				b.pendingTableText = nil
				b.tableTextOriginalMode = b.mode
				b.mode = ModeInTableText
				return true
			}
		}
	}

	switch tok.Kind {
	case token.Comment:
		b.insertComment(tok.Text)
		return false

	case token.Doctype:
		b.report(tok.Loc, perr.UnexpectedDOCTYPE)
		return false

	case token.StartTag:
		switch tok.Name {
		case "caption":
			b.clearStackBackToTableContext()
			b.fmtList.pushMarker()
			b.insertHTMLElement(tok)
			b.mode = ModeInCaption
			return false
		case "colgroup":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(tok)
			b.mode = ModeInColumnGroup
			return false
		case "col":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "colgroup"})
			b.mode = ModeInColumnGroup
			return true
		case "tbody", "tfoot", "thead":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(tok)
			b.mode = ModeInTableBody
			return false
		case "td", "th", "tr":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "tbody"})
			b.mode = ModeInTableBody
			return true
		case "table":
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			if !b.stack.hasElementInScope(scopeTable, "table") {
				return false
			}
			for {
				r := b.stack.pop()
				if b.arena.get(r).local == "table" {
					break
				}
			}
			b.resetInsertionModeAppropriately()
			return true
		case "style", "script", "template":
			return b.processInHead(tok)
		case "input":
			if !isHiddenInput(tok.Attrs) {
				break
			}
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			ref := b.insertHTMLElement(tok)
			b.stack.remove(ref)
			return false
		case "form":
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			if b.formRef != noRef || b.hasTemplateOnStack() {
				return false
			}
			ref := b.insertHTMLElement(tok)
			b.formRef = ref
			b.stack.remove(ref)
			return false
		}

	case token.EndTag:
		switch tok.Name {
		case "table":
			if !b.stack.hasElementInScope(scopeTable, "table") {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			for {
				r := b.stack.pop()
				if b.arena.get(r).local == "table" {
					break
				}
			}
			b.resetInsertionModeAppropriately()
			return false
		case "body", "caption", "col", "colgroup", "html", "tbody", "td",
			"tfoot", "th", "thead", "tr":
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		case "template":
			return b.processInHead(tok)
		}

	case token.EndOfInput:
		return b.processInBody(tok)
	}

	b.fosterParenting = true
	reprocess := b.processInBody(tok)
	b.fosterParenting = false
	return reprocess
}

// processInTableText is spec.md §4.6's "in table text" insertion
// mode: character tokens accumulate until a non-character token
// arrives, at which point a run containing anything but whitespace is
// reinserted with foster parenting in force, per the teacher's
// processInTableText.
func (b *Builder) processInTableText(tok token.Token) bool {
	if tok.Kind == token.Data {
		data := tok.Text
		if data == "" {
			return false
		}
		b.pendingTableText = append(b.pendingTableText, pendingTableChar{text: data})
		return false
	}

	var all string
	for _, c := range b.pendingTableText {
		all += c.text
	}

	if !isAllWhitespace(all) {
		b.report(tok.Loc, perr.NonSpaceCharacterInTableText)
		b.fosterParenting = true
		b.insertCharacter(tok.Loc, all)
		b.fosterParenting = false
		b.framesetOK = false
	} else if all != "" {
		b.insertCharacter(tok.Loc, all)
	}
	b.pendingTableText = nil
	b.mode = b.tableTextOriginalMode
	return true
}

// processInCaption is spec.md §4.6's "in caption" insertion mode.
func (b *Builder) processInCaption(tok token.Token) bool {
	switch tok.Kind {
	case token.StartTag:
		switch tok.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !b.closeCaptionElement() {
				b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
				return false
			}
			return true
		}
	case token.EndTag:
		switch tok.Name {
		case "caption":
			if !b.closeCaptionElement() {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			}
			return false
		case "table":
			if !b.closeCaptionElement() {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			return true
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
	}
	return b.processInBody(tok)
}

// processInColumnGroup is spec.md §4.6's "in column group" insertion
// mode.
func (b *Builder) processInColumnGroup(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		ws := filterWhitespace(tok.Text)
		if ws == tok.Text {
			if ws != "" {
				b.insertCharacter(tok.Loc, ws)
			}
			return false
		}
		if ws != "" {
			b.insertCharacter(tok.Loc, ws)
		}
	case token.Comment:
		b.insertComment(tok.Text)
		return false
	case token.Doctype:
		b.report(tok.Loc, perr.UnexpectedDOCTYPE)
		return false
	case token.StartTag:
		switch tok.Name {
		case "html":
			return b.processInBody(tok)
		case "col":
			ref := b.insertHTMLElement(tok)
			b.stack.remove(ref)
			return false
		case "template":
			return b.processInHead(tok)
		}
	case token.EndTag:
		switch tok.Name {
		case "colgroup":
			if cur := b.current(); cur == noRef || b.arena.get(cur).local != "colgroup" {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.stack.pop()
			b.mode = ModeInTable
			return false
		case "col":
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		case "template":
			return b.processInHead(tok)
		}
	case token.EndOfInput:
		return b.processInBody(tok)
	}

	if cur := b.current(); cur == noRef || b.arena.get(cur).local != "colgroup" {
		return false
	}
	b.stack.pop()
	b.mode = ModeInTable
	return true
}

// processInTableBody is spec.md §4.6's "in table body" insertion
// mode.
func (b *Builder) processInTableBody(tok token.Token) bool {
	switch tok.Kind {
	case token.StartTag:
		switch tok.Name {
		case "tr":
			b.clearStackBackToTableBodyContext()
			b.insertHTMLElement(tok)
			b.mode = ModeInRow
			return false
		case "th", "td":
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			b.clearStackBackToTableBodyContext()
			b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "tr"})
			b.mode = ModeInRow
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !b.stack.hasAnyElementInScope(scopeTable, map[string]bool{"tbody": true, "thead": true, "tfoot": true}) {
				b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
				return false
			}
			b.clearStackBackToTableBodyContext()
			b.stack.pop()
			b.mode = ModeInTable
			return true
		}
	case token.EndTag:
		switch tok.Name {
		case "tbody", "tfoot", "thead":
			if !b.stack.hasElementInScope(scopeTable, tok.Name) {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.clearStackBackToTableBodyContext()
			b.stack.pop()
			b.mode = ModeInTable
			return false
		case "table":
			if !b.stack.hasAnyElementInScope(scopeTable, map[string]bool{"tbody": true, "thead": true, "tfoot": true}) {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.clearStackBackToTableBodyContext()
			b.stack.pop()
			b.mode = ModeInTable
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
	}
	return b.processInTable(tok)
}

// processInRow is spec.md §4.6's "in row" insertion mode.
func (b *Builder) processInRow(tok token.Token) bool {
	switch tok.Kind {
	case token.StartTag:
		switch tok.Name {
		case "th", "td":
			b.clearStackBackToTableRowContext()
			b.insertHTMLElement(tok)
			b.mode = ModeInCell
			b.fmtList.pushMarker()
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !b.stack.hasElementInScope(scopeTableRow, "tr") {
				b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
				return false
			}
			b.clearStackBackToTableRowContext()
			b.stack.pop()
			b.mode = ModeInTableBody
			return true
		}
	case token.EndTag:
		switch tok.Name {
		case "tr":
			if !b.stack.hasElementInScope(scopeTableRow, "tr") {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.clearStackBackToTableRowContext()
			b.stack.pop()
			b.mode = ModeInTableBody
			return false
		case "table":
			if !b.stack.hasElementInScope(scopeTableRow, "tr") {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.clearStackBackToTableRowContext()
			b.stack.pop()
			b.mode = ModeInTableBody
			return true
		case "tbody", "tfoot", "thead":
			if !b.stack.hasElementInScope(scopeTable, tok.Name) {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			if !b.stack.hasElementInScope(scopeTableRow, "tr") {
				return false
			}
			b.clearStackBackToTableRowContext()
			b.stack.pop()
			b.mode = ModeInTableBody
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
	}
	return b.processInTable(tok)
}

// processInCell is spec.md §4.6's "in cell" insertion mode.
func (b *Builder) processInCell(tok token.Token) bool {
	switch tok.Kind {
	case token.StartTag:
		switch tok.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !b.closeTableCell() {
				b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
				return false
			}
			return true
		}
	case token.EndTag:
		switch tok.Name {
		case "td", "th":
			if !b.stack.hasElementInScope(scopeTable, tok.Name) {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.closeTableCell()
			return false
		case "body", "caption", "col", "colgroup", "html":
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		case "table", "tbody", "tfoot", "thead", "tr":
			if !b.stack.hasElementInScope(scopeTable, tok.Name) {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.closeTableCell()
			return true
		}
	}
	return b.processInBody(tok)
}
