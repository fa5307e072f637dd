package builder

import (
	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// processInTemplate is spec.md §4.6's "in template" insertion mode:
// template content is parsed using whichever mode the entering
// start tag implies, tracked on templateModes, ported from the
// teacher's processInTemplate.
func (b *Builder) processInTemplate(tok token.Token) bool {
	switch tok.Kind {
	case token.Data, token.Comment, token.Doctype:
		return b.processInBody(tok)

	case token.StartTag:
		switch tok.Name {
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			return b.processInHead(tok)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			b.popTemplateMode()
			b.templateModes = append(b.templateModes, ModeInTable)
			b.mode = ModeInTable
			return true
		case "col":
			b.popTemplateMode()
			b.templateModes = append(b.templateModes, ModeInColumnGroup)
			b.mode = ModeInColumnGroup
			return true
		case "tr":
			b.popTemplateMode()
			b.templateModes = append(b.templateModes, ModeInTableBody)
			b.mode = ModeInTableBody
			return true
		case "td", "th":
			b.popTemplateMode()
			b.templateModes = append(b.templateModes, ModeInRow)
			b.mode = ModeInRow
			return true
		default:
			b.popTemplateMode()
			b.templateModes = append(b.templateModes, ModeInBody)
			b.mode = ModeInBody
			return true
		}

	case token.EndTag:
		if tok.Name == "template" {
			return b.processInHead(tok)
		}
		b.report(tok.Loc, perr.UnexpectedEndTag)
		return false

	case token.EndOfInput:
		if !b.hasTemplateOnStack() {
			return false
		}
		b.generateImpliedEndTagsThorough()
		b.popUntilPoppedName("template")
		b.fmtList.clearToLastMarker()
		b.popTemplateMode()
		b.resetInsertionModeAppropriately()
		return true
	}
	return false
}

func (b *Builder) popTemplateMode() {
	if len(b.templateModes) > 0 {
		b.templateModes = b.templateModes[:len(b.templateModes)-1]
	}
}

func (b *Builder) insertCommentAsLastChildOfHTML(data string) {
	htmlRef := b.stack.at(0)
	node := b.sink.CreateComment(data)
	b.sink.AppendChild(node, b.arena.get(htmlRef).node)
}

// processAfterBody is spec.md §4.6's "after body" insertion mode.
func (b *Builder) processAfterBody(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			return b.processInBody(tok)
		}
	case token.Comment:
		b.insertCommentAsLastChildOfHTML(tok.Text)
		return false
	case token.Doctype:
		b.report(tok.Loc, perr.UnexpectedDOCTYPE)
		return false
	case token.StartTag:
		if tok.Name == "html" {
			return b.processInBody(tok)
		}
	case token.EndTag:
		if tok.Name == "html" {
			if b.fragment != nil {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.mode = ModeAfterAfterBody
			return false
		}
	case token.EndOfInput:
		return false
	}
	code := perr.UnexpectedStartTagIgnored
	if tok.Kind == token.EndTag {
		code = perr.UnexpectedEndTag
	}
	b.report(tok.Loc, code)
	b.mode = ModeInBody
	return true
}

// processInFrameset is spec.md §4.6's "in frameset" insertion mode.
func (b *Builder) processInFrameset(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			b.insertCharacter(tok.Loc, tok.Text)
		}
		return false
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
		case "frameset":
			b.insertHTMLElement(tok)
			return false
		case "frame":
			ref := b.insertHTMLElement(tok)
			b.stack.remove(ref)
			return false
		case "noframes":
			return b.processInHead(tok)
		}
		return false
	case token.EndTag:
		if tok.Name == "frameset" {
			if b.stack.len() == 1 {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.stack.pop()
			if b.fragment == nil && !b.currentIsHTML("frameset") {
				b.mode = ModeAfterFrameset
			}
			return false
		}
		return false
	}
	return false
}

// processAfterFrameset is spec.md §4.6's "after frameset" insertion
// mode.
func (b *Builder) processAfterFrameset(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			b.insertCharacter(tok.Loc, tok.Text)
		}
		return false
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
		case "noframes":
			return b.processInHead(tok)
		}
		return false
	case token.EndTag:
		if tok.Name == "html" {
			b.mode = ModeAfterAfterFrameset
		}
		return false
	case token.EndOfInput:
		return false
	}
	return false
}

// processAfterAfterBody is spec.md §4.6's "after after body" mode.
func (b *Builder) processAfterAfterBody(tok token.Token) bool {
	switch tok.Kind {
	case token.Comment:
		b.sink.AppendChild(b.sink.CreateComment(tok.Text), b.docNode)
		return false
	case token.Doctype:
		return b.processInBody(tok)
	case token.Data:
		if isAllWhitespace(tok.Text) {
			return b.processInBody(tok)
		}
	case token.StartTag:
		if tok.Name == "html" {
			return b.processInBody(tok)
		}
	case token.EndOfInput:
		return false
	}
	b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
	b.mode = ModeInBody
	return true
}

// processAfterAfterFrameset is spec.md §4.6's "after after frameset"
// mode: unlike the body variant, stray content here is simply
// dropped rather than reprocessed, since a frameset document has no
// body to fall back into.
func (b *Builder) processAfterAfterFrameset(tok token.Token) bool {
	switch tok.Kind {
	case token.Comment:
		b.sink.AppendChild(b.sink.CreateComment(tok.Text), b.docNode)
		return false
	case token.Doctype:
		return b.processInBody(tok)
	case token.Data:
		if isAllWhitespace(tok.Text) {
			return b.processInBody(tok)
		}
	case token.StartTag:
		switch tok.Name {
		case "html":
			return b.processInBody(tok)
		case "noframes":
			return b.processInHead(tok)
		}
	case token.EndOfInput:
		return false
	}
	b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
	return false
}
