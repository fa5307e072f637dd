package builder

import (
	"strings"

	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

func (b *Builder) processInitial(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			return false
		}
	case token.Comment:
		b.sink.AppendChild(b.sink.CreateComment(tok.Text), b.docNode)
		return false
	case token.Doctype:
		b.insertDoctype(tok.Name, derefOr(tok.PublicID, ""), derefOr(tok.SystemID, ""))
		if b.fragment == nil {
			b.quirks = classifyQuirks(tok.Name, tok.PublicID, tok.SystemID, tok.ForceQuirks, b.iframeSrcdoc)
		}
		b.mode = ModeBeforeHTML
		return false
	}
	if !b.iframeSrcdoc {
		b.quirks = Quirks
	}
	b.mode = ModeBeforeHTML
	return true
}

func (b *Builder) processBeforeHTML(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			return false
		}
	case token.Comment:
		b.sink.AppendChild(b.sink.CreateComment(tok.Text), b.docNode)
		return false
	case token.StartTag:
		if tok.Name == "html" {
			b.insertHTMLElement(tok)
			b.mode = ModeBeforeHead
			return false
		}
	case token.EndTag:
		switch tok.Name {
		case "head", "body", "html", "br":
		default:
			return false
		}
	case token.EndOfInput:
	}
	b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "html"})
	b.mode = ModeBeforeHead
	return true
}

func (b *Builder) processBeforeHead(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			return false
		}
	case token.Comment:
		b.insertComment(tok.Text)
		return false
	case token.StartTag:
		switch tok.Name {
		case "html":
			return b.processInBody(tok)
		case "head":
			b.headRef = b.insertHTMLElement(tok)
			b.mode = ModeInHead
			return false
		}
	case token.EndTag:
		switch tok.Name {
		case "head", "body", "html", "br":
		default:
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
	}
	b.headRef = b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "head"})
	b.mode = ModeInHead
	return true
}

func (b *Builder) processInHead(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			b.insertCharacter(tok.Loc, tok.Text)
			return false
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
		case "base", "basefont", "bgsound", "link", "meta":
			b.insertHTMLElement(tok)
			b.stack.pop()
			return false
		case "title":
			b.startRawText(tok, rawTextRCDATA)
			return false
		case "noscript":
			if b.scriptingEnabled {
				b.startRawText(tok, rawTextRAWTEXT)
				return false
			}
			b.insertHTMLElement(tok)
			b.mode = ModeInHeadNoscript
			return false
		case "noframes", "style":
			b.startRawText(tok, rawTextRAWTEXT)
			return false
		case "script":
			b.startRawText(tok, rawTextScriptData)
			return false
		case "template":
			b.insertHTMLElement(tok)
			b.fmtList.pushMarker()
			b.framesetOK = false
			b.mode = ModeInTemplate
			b.templateModes = append(b.templateModes, ModeInTemplate)
			return false
		case "head":
			b.report(tok.Loc, perr.MisplacedStartTagForHeadElement)
			return false
		}
	case token.EndTag:
		switch tok.Name {
		case "head":
			b.stack.pop()
			b.mode = ModeAfterHead
			return false
		case "body", "html", "br":
		case "template":
			if !b.hasTemplateOnStack() {
				b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
				return false
			}
			b.generateImpliedEndTagsThorough()
			b.popUntilPoppedName("template")
			b.fmtList.clearToLastMarker()
			if len(b.templateModes) > 0 {
				b.templateModes = b.templateModes[:len(b.templateModes)-1]
			}
			b.resetInsertionModeAppropriately()
			return false
		default:
			b.report(tok.Loc, perr.EndTagWithoutMatchingOpenElement)
			return false
		}
	}
	b.stack.pop()
	b.mode = ModeAfterHead
	return true
}

func (b *Builder) hasTemplateOnStack() bool {
	for i := b.stack.len() - 1; i >= 0; i-- {
		if b.arena.get(b.stack.at(i)).local == "template" {
			return true
		}
	}
	return false
}

func (b *Builder) popUntilPoppedName(name string) {
	for {
		e := b.arena.get(b.stack.pop())
		if e.local == name {
			return
		}
	}
}

func (b *Builder) processInHeadNoscript(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			return b.processInHead(tok)
		}
	case token.Comment:
		return b.processInHead(tok)
	case token.StartTag:
		switch tok.Name {
		case "html":
			return b.processInBody(tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return b.processInHead(tok)
		case "head", "noscript":
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			return false
		}
	case token.EndTag:
		switch tok.Name {
		case "noscript":
			b.stack.pop()
			b.mode = ModeInHead
			return false
		case "br":
		default:
			b.report(tok.Loc, perr.UnexpectedEndTag)
			return false
		}
	}
	b.stack.pop()
	b.mode = ModeInHead
	return true
}

func (b *Builder) processAfterHead(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		if isAllWhitespace(tok.Text) {
			b.insertCharacter(tok.Loc, tok.Text)
			return false
		}
	case token.Comment:
		b.insertComment(tok.Text)
		return false
	case token.StartTag:
		switch tok.Name {
		case "html":
			return b.processInBody(tok)
		case "body":
			b.insertHTMLElement(tok)
			b.framesetOK = false
			b.mode = ModeInBody
			return false
		case "frameset":
			b.insertHTMLElement(tok)
			b.mode = ModeInFrameset
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			b.report(tok.Loc, perr.MisplacedStartTagForHeadElement)
			if b.headRef == noRef {
				return false
			}
			b.stack.push(b.headRef)
			reprocess := b.processInHead(tok)
			b.stack.remove(b.headRef)
			return reprocess
		case "head":
			b.report(tok.Loc, perr.UnexpectedStartTagIgnored)
			return false
		}
	case token.EndTag:
		switch tok.Name {
		case "body", "html", "br":
		case "template":
			return b.processInHead(tok)
		default:
			b.report(tok.Loc, perr.UnexpectedEndTag)
			return false
		}
	}
	b.insertHTMLElement(token.Token{Kind: token.StartTag, Name: "body"})
	b.framesetOK = false
	b.mode = ModeInBody
	return true
}

func (b *Builder) processText(tok token.Token) bool {
	switch tok.Kind {
	case token.Data:
		b.insertCharacter(tok.Loc, strings.ReplaceAll(tok.Text, "\x00", ""))
		return false
	case token.EndTag:
		if sw, ok := b.src.(token.StateSwitcher); ok {
			sw.SetState(token.DataState)
		}
		b.stack.pop()
		b.mode = b.originalMode
		return false
	case token.EndOfInput:
		b.report(tok.Loc, perr.EOFInTag)
		if sw, ok := b.src.(token.StateSwitcher); ok {
			sw.SetState(token.DataState)
		}
		b.stack.pop()
		b.mode = b.originalMode
		return true
	}
	return false
}

type rawTextKind int

const (
	rawTextRCDATA rawTextKind = iota
	rawTextRAWTEXT
	rawTextScriptData
)

// startRawText inserts tok's element, switches to the Text insertion
// mode, and (when the Source honors token.StateSwitcher) puts the
// tokenizer itself into the matching content model, per spec.md
// §4.2's "generic raw text/RCDATA element parsing algorithm". A
// Source that doesn't implement StateSwitcher is expected to infer
// the same scanning behavior from the start tag name alone.
func (b *Builder) startRawText(tok token.Token, kind rawTextKind) {
	b.insertHTMLElement(tok)
	if sw, ok := b.src.(token.StateSwitcher); ok {
		sw.SetLastStartTag(tok.Name)
		switch kind {
		case rawTextRCDATA:
			sw.SetState(token.RCDATAState)
		case rawTextRAWTEXT:
			sw.SetState(token.RAWTEXTState)
		case rawTextScriptData:
			sw.SetState(token.ScriptDataState)
		}
	}
	b.originalMode = b.mode
	b.mode = ModeText
}
