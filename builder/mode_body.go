package builder

import (
	"github.com/kasuga-html/htmltree/domns"
	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// formattingElements is the "formatting" element category (spec.md
// §4.4), ported from the teacher's constants.FormattingElements.
var formattingElements = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true,
	"font": true, "i": true, "nobr": true, "s": true, "small": true,
	"strike": true, "strong": true, "tt": true, "u": true,
}

// headingElements is h1 through h6, tested as a unit by several "in
// body" rules.
var headingElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// closableBlockEndTags is the end-tag counterpart of the block
// start-tag case in startTagInBody; it omits "p", which has its own
// insert-if-missing rule, and adds "button", "listing", and "pre",
// whose start tags are handled by their own cases there.
var closableBlockEndTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"button": true, "center": true, "details": true, "dialog": true,
	"dir": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "header": true,
	"hgroup": true, "listing": true, "main": true, "menu": true, "nav": true,
	"ol": true, "pre": true, "search": true, "section": true,
	"summary": true, "ul": true,
}

func (b *Builder) closePElement() {
	b.generateImpliedEndTags("p")
	for {
		r := b.stack.pop()
		if b.arena.get(r).local == "p" {
			return
		}
	}
}

func (b *Builder) closeButtonScopeP() {
	if b.stack.hasElementInScope(scopeButton, "p") {
		b.closePElement()
	}
}

// processInBody is the "in body" insertion mode (spec.md §4.6),
// ported from the teacher's processInBody: the densest of the mode
// handlers, since nearly every other insertion mode falls back to it
// for tokens it doesn't special-case.
func (b *Builder) processInBody(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		data := tok.Text
		if data == "" {
			return false
		}
		b.reconstructActiveFormattingElements()
		b.insertCharacter(tok.Loc, data)
		if !isAllWhitespace(data) {
			b.framesetOK = false
		}
		return false

	case token.Comment:
		b.insertComment(tok.Text)
		return false

	case token.Doctype:
		b.report(tok.Loc, perr.UnexpectedDOCTYPE)
		return false

	case token.EndOfInput:
		if len(b.templateModes) > 0 {
			return b.processInTemplate(tok)
		}
		return false

	case token.StartTag:
		return b.startTagInBody(tok)

	case token.EndTag:
		return b.endTagInBody(tok)
	}
	return false
}

func (b *Builder) startTagInBody(tok token.Token) bool {
	switch tok.Name {
	case "html":
		b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
		return false

	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
		"style", "template", "title":
		return b.processInHead(tok)

	case "body":
		b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
		if b.stack.len() < 2 {
			return false
		}
		second := b.arena.get(b.stack.at(1))
		if second.ns != domns.HTML || second.local != "body" || b.hasTemplateOnStack() {
			return false
		}
		b.framesetOK = false
		return false

	case "frameset":
		b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
		if b.stack.len() < 2 || !b.framesetOK {
			return false
		}
		second := b.arena.get(b.stack.at(1))
		if second.ns != domns.HTML || second.local != "body" {
			return false
		}
		// A Sink has no removal primitive, so the body element displaced
		// by frameset stays wherever it was last attached; this is an
		// acknowledged gap for a legacy, rarely-produced construct.
		for b.stack.len() > 1 {
			b.stack.pop()
		}
		b.insertHTMLElement(tok)
		b.mode = ModeInFrameset
		return false

	case "address", "article", "aside", "blockquote", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
		"footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
		"search", "section", "summary", "ul":
		b.closeButtonScopeP()
		b.insertHTMLElement(tok)
		return false

	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.closeButtonScopeP()
		if cur := b.current(); cur != noRef && headingElements[b.arena.get(cur).local] {
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			b.stack.pop()
		}
		b.insertHTMLElement(tok)
		return false

	case "pre", "listing":
		b.closeButtonScopeP()
		b.insertHTMLElement(tok)
		b.framesetOK = false
		return false

	case "form":
		if b.formRef != noRef && !b.hasTemplateOnStack() {
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			return false
		}
		b.closeButtonScopeP()
		ref := b.insertHTMLElement(tok)
		if !b.hasTemplateOnStack() {
			b.formRef = ref
		}
		return false

	case "li":
		b.framesetOK = false
		for i := b.stack.len() - 1; i >= 0; i-- {
			e := b.arena.get(b.stack.at(i))
			if e.ns == domns.HTML && e.local == "li" {
				b.generateImpliedEndTags("li")
				if cur := b.current(); b.arena.get(cur).local != "li" {
					b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
				}
				for {
					r := b.stack.pop()
					if b.arena.get(r).local == "li" {
						break
					}
				}
				break
			}
			if isSpecial(e) && e.local != "address" && e.local != "div" && e.local != "p" {
				break
			}
		}
		b.closeButtonScopeP()
		b.insertHTMLElement(tok)
		return false

	case "dd", "dt":
		b.framesetOK = false
		for i := b.stack.len() - 1; i >= 0; i-- {
			e := b.arena.get(b.stack.at(i))
			if e.ns == domns.HTML && (e.local == "dd" || e.local == "dt") {
				b.generateImpliedEndTags(e.local)
				if cur := b.current(); b.arena.get(cur).local != e.local {
					b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
				}
				for {
					r := b.stack.pop()
					if b.arena.get(r).local == e.local {
						break
					}
				}
				break
			}
			if isSpecial(e) && e.local != "address" && e.local != "div" && e.local != "p" {
				break
			}
		}
		b.closeButtonScopeP()
		b.insertHTMLElement(tok)
		return false

	case "plaintext":
		b.closeButtonScopeP()
		b.insertHTMLElement(tok)
		if sw, ok := b.src.(token.StateSwitcher); ok {
			sw.SetState(token.PLAINTEXTState)
		}
		return false

	case "button":
		if b.stack.hasElementInScope(scopeDefault, "button") {
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			b.generateImpliedEndTags("")
			for {
				r := b.stack.pop()
				if b.arena.get(r).local == "button" {
					break
				}
			}
		}
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		b.framesetOK = false
		return false

	case "a":
		if ref, _, ok := b.fmtList.findByName("a"); ok {
			b.report(tok.Loc, perr.AdoptionAgencyParseError)
			b.runAdoptionAgency(tok.Loc, "a")
			b.fmtList.removeElement(ref)
			b.stack.remove(ref)
		}
		b.reconstructActiveFormattingElements()
		ref := b.insertHTMLElement(tok)
		b.fmtList.push(ref)
		return false

	case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
		b.reconstructActiveFormattingElements()
		ref := b.insertHTMLElement(tok)
		b.fmtList.push(ref)
		return false

	case "nobr":
		b.reconstructActiveFormattingElements()
		if b.stack.hasElementInScope(scopeDefault, "nobr") {
			b.report(tok.Loc, perr.AdoptionAgencyParseError)
			b.runAdoptionAgency(tok.Loc, "nobr")
			b.reconstructActiveFormattingElements()
		}
		ref := b.insertHTMLElement(tok)
		b.fmtList.push(ref)
		return false

	case "applet", "marquee", "object":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		b.fmtList.pushMarker()
		b.framesetOK = false
		return false

	case "table":
		if b.quirks != Quirks {
			b.closeButtonScopeP()
		}
		b.insertHTMLElement(tok)
		b.framesetOK = false
		b.mode = ModeInTable
		return false

	case "area", "br", "embed", "img", "keygen", "wbr":
		b.reconstructActiveFormattingElements()
		ref := b.insertHTMLElement(tok)
		b.stack.remove(ref)
		b.framesetOK = false
		return false

	case "input":
		b.reconstructActiveFormattingElements()
		ref := b.insertHTMLElement(tok)
		b.stack.remove(ref)
		if !isHiddenInput(tok.Attrs) {
			b.framesetOK = false
		}
		return false

	case "param", "source", "track":
		ref := b.insertHTMLElement(tok)
		b.stack.remove(ref)
		return false

	case "hr":
		b.closeButtonScopeP()
		ref := b.insertHTMLElement(tok)
		b.stack.remove(ref)
		b.framesetOK = false
		return false

	case "image":
		b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
		imgTok := tok
		imgTok.Name = "img"
		return b.startTagInBody(imgTok)

	case "textarea":
		b.startRawText(tok, rawTextRCDATA)
		b.framesetOK = false
		return false

	case "xmp":
		b.closeButtonScopeP()
		b.reconstructActiveFormattingElements()
		b.framesetOK = false
		b.startRawText(tok, rawTextRAWTEXT)
		return false

	case "iframe":
		b.framesetOK = false
		b.startRawText(tok, rawTextRAWTEXT)
		return false

	case "noembed":
		b.startRawText(tok, rawTextRAWTEXT)
		return false

	case "select":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		b.framesetOK = false
		switch b.mode {
		case ModeInTable, ModeInCaption, ModeInTableBody, ModeInRow, ModeInCell:
			b.mode = ModeInSelectInTable
		default:
			b.mode = ModeInSelect
		}
		return false

	case "optgroup", "option":
		if cur := b.current(); cur != noRef && b.arena.get(cur).local == "option" {
			b.stack.pop()
		}
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		return false

	case "rb", "rtc":
		if b.stack.hasElementInScope(scopeDefault, "ruby") {
			b.generateImpliedEndTags("")
			if cur := b.current(); b.arena.get(cur).local != "ruby" {
				b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
			}
		}
		b.insertHTMLElement(tok)
		return false

	case "rp", "rt":
		if b.stack.hasElementInScope(scopeDefault, "ruby") {
			b.generateImpliedEndTags("rtc")
			if cur := b.current(); b.arena.get(cur).local != "ruby" && b.arena.get(cur).local != "rtc" {
				b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
			}
		}
		b.insertHTMLElement(tok)
		return false

	case "math":
		b.reconstructActiveFormattingElements()
		attrs := b.adjustForeignAttrs(domns.MathML, tok.Attrs)
		ref := b.insertForeignElement(domns.MathML, tok.Name, attrs)
		if tok.SelfClosing {
			b.stack.remove(ref)
		}
		return false

	case "svg":
		b.reconstructActiveFormattingElements()
		attrs := b.adjustForeignAttrs(domns.SVG, tok.Attrs)
		ref := b.insertForeignElement(domns.SVG, tok.Name, attrs)
		if tok.SelfClosing {
			b.stack.remove(ref)
		}
		return false

	case "caption", "col", "colgroup", "frame", "head", "tbody", "td",
		"tfoot", "th", "thead", "tr":
		b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
		return false

	default:
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		return false
	}
}

func (b *Builder) endTagInBody(tok token.Token) bool {
	switch tok.Name {
	case "template":
		return b.processInHead(tok)

	case "body":
		if !b.stack.hasElementInScope(scopeDefault, "body") {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		b.mode = ModeAfterBody
		return false

	case "html":
		if !b.stack.hasElementInScope(scopeDefault, "body") {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		b.mode = ModeAfterBody
		return true

	case "p":
		if !b.stack.hasElementInScope(scopeButton, "p") {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "p"})
		}
		b.closePElement()
		return false

	case "li":
		if !b.stack.hasElementInScope(scopeListItem, "li") {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		b.generateImpliedEndTags("li")
		if cur := b.current(); b.arena.get(cur).local != "li" {
			b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
		}
		for {
			r := b.stack.pop()
			if b.arena.get(r).local == "li" {
				break
			}
		}
		return false

	case "dd", "dt":
		if !b.stack.hasElementInScope(scopeDefault, tok.Name) {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		b.generateImpliedEndTags(tok.Name)
		if cur := b.current(); b.arena.get(cur).local != tok.Name {
			b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
		}
		for {
			r := b.stack.pop()
			if b.arena.get(r).local == tok.Name {
				break
			}
		}
		return false

	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !b.stack.hasAnyElementInScope(scopeDefault, headingElements) {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		b.generateImpliedEndTags("")
		if cur := b.current(); b.arena.get(cur).local != tok.Name {
			b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
		}
		for {
			r := b.stack.pop()
			if headingElements[b.arena.get(r).local] {
				break
			}
		}
		return false

	case "form":
		if !b.hasTemplateOnStack() {
			node := b.formRef
			b.formRef = noRef
			if node == noRef || !b.stack.contains(node) {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.generateImpliedEndTags("")
			if cur := b.current(); cur != node {
				b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
			}
			b.stack.remove(node)
			return false
		}
		if !b.stack.hasElementInScope(scopeDefault, "form") {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		b.generateImpliedEndTags("")
		if cur := b.current(); b.arena.get(cur).local != "form" {
			b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
		}
		for {
			r := b.stack.pop()
			if b.arena.get(r).local == "form" {
				break
			}
		}
		return false

	case "applet", "marquee", "object":
		if !b.stack.hasElementInScope(scopeDefault, tok.Name) {
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
		b.generateImpliedEndTags("")
		if cur := b.current(); b.arena.get(cur).local != tok.Name {
			b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
		}
		for {
			r := b.stack.pop()
			if b.arena.get(r).local == tok.Name {
				break
			}
		}
		b.fmtList.clearToLastMarker()
		return false

	case "br":
		b.report(tok.Loc, perr.UnexpectedEndTag)
		b.reconstructActiveFormattingElements()
		ref := b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "br"})
		b.stack.remove(ref)
		b.framesetOK = false
		return false

	default:
		if formattingElements[tok.Name] {
			b.runAdoptionAgency(tok.Loc, tok.Name)
			return false
		}
		if closableBlockEndTags[tok.Name] {
			if !b.stack.hasElementInScope(scopeDefault, tok.Name) {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.generateImpliedEndTags("")
			if cur := b.current(); b.arena.get(cur).local != tok.Name {
				b.report(tok.Loc, perr.ImpliedEndTagsOnSpecialElement)
			}
			for {
				r := b.stack.pop()
				if b.arena.get(r).local == tok.Name {
					break
				}
			}
			return false
		}
		b.anyOtherEndTag(tok.Name)
		return false
	}
}
