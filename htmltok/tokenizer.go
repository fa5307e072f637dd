// Package htmltok is a reference token.Source: it turns a string of
// HTML source into the Token stream builder.Builder drives. Per
// spec.md §1/§4.2 the tokenizer's byte-level rules are an external
// concern to the tree-construction driver; this implementation is
// deliberately a simplified, single-pass scanner rather than the full
// 90-state WHATWG tokenizer, grounded in the teacher's tokenizer
// package's overall shape (rune cursor, Attr/Token value types,
// a switchable RCDATA/RAWTEXT/script-data/PLAINTEXT content mode) but
// condensed: character references are decoded post-hoc over collected
// text (entities.go) instead of via a dedicated per-character state.
package htmltok

import (
	"strings"
	"unicode"

	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// Tokenizer scans HTML source and implements token.Source.
type Tokenizer struct {
	src  []rune
	pos  int
	line int
	col  int

	state        State
	lastStartTag string

	reporter perr.Reporter
	done     bool
}

// New returns a Tokenizer over src in DataState.
func New(src string, opts Options) *Tokenizer {
	rep := opts.Reporter
	if rep == nil {
		rep = perr.Discard
	}
	return &Tokenizer{
		src:      []rune(src),
		line:     1,
		col:      0,
		state:    DataState,
		reporter: rep,
	}
}

// SetState switches the tokenizer's content mode, implementing
// token.StateSwitcher. The tree builder calls this after inserting an
// element whose content model is not plain data (script, style,
// textarea, title, plaintext, xmp, iframe, noembed, noframes), and
// again (to DataState) once that element's end tag (or EOF) is
// consumed.
func (t *Tokenizer) SetState(s token.ContentState) {
	t.state = stateFromContent(s)
}

func stateFromContent(s token.ContentState) State {
	switch s {
	case token.RCDATAState:
		return RCDATAState
	case token.RAWTEXTState:
		return RAWTEXTState
	case token.ScriptDataState:
		return ScriptDataState
	case token.PLAINTEXTState:
		return PLAINTEXTState
	default:
		return DataState
	}
}

// SetLastStartTag records the tag name RCDATA/RAWTEXT/script-data
// scanning must match against to recognize the closing tag.
func (t *Tokenizer) SetLastStartTag(name string) {
	t.lastStartTag = name
}

func (t *Tokenizer) loc() token.Location {
	return token.Location{Line: t.line, Col: t.col}
}

func (t *Tokenizer) peek() (rune, bool) {
	if t.pos >= len(t.src) {
		return 0, false
	}
	return t.src[t.pos], true
}

func (t *Tokenizer) peekAt(offset int) (rune, bool) {
	idx := t.pos + offset
	if idx >= len(t.src) {
		return 0, false
	}
	return t.src[idx], true
}

func (t *Tokenizer) advance() (rune, bool) {
	r, ok := t.peek()
	if !ok {
		return 0, false
	}
	t.pos++
	if r == '\n' {
		t.line++
		t.col = 0
	} else {
		t.col++
	}
	return r, true
}

func (t *Tokenizer) startsWithFold(s string) bool {
	if t.pos+len(s) > len(t.src) {
		return false
	}
	for i, r := range s {
		if unicode.ToLower(t.src[t.pos+i]) != unicode.ToLower(r) {
			return false
		}
	}
	return true
}

// Next returns the next Token. Once EndOfInput has been returned every
// subsequent call returns EndOfInput again.
func (t *Tokenizer) Next() token.Token {
	if t.done {
		return token.Token{Kind: token.EndOfInput, Loc: t.loc()}
	}
	switch t.state {
	case RCDATAState, RAWTEXTState, ScriptDataState:
		return t.nextRawTextLike()
	case PLAINTEXTState:
		return t.nextPlaintext()
	default:
		return t.nextData()
	}
}

func (t *Tokenizer) emitEOF() token.Token {
	t.done = true
	return token.Token{Kind: token.EndOfInput, Loc: t.loc()}
}

func (t *Tokenizer) nextData() token.Token {
	start := t.loc()
	if _, ok := t.peek(); !ok {
		return t.emitEOF()
	}
	var sb strings.Builder
	if r, ok := t.peek(); ok && r == '<' {
		if tok, handled := t.tagOpen(); handled {
			return tok
		}
		t.advance()
		sb.WriteRune('<')
	}
	for {
		r, ok := t.peek()
		if !ok || r == '<' {
			break
		}
		t.advance()
		if r == 0 {
			t.reporter.Report(start, perr.UnexpectedNullCharacter)
			sb.WriteRune('�')
			continue
		}
		sb.WriteRune(r)
	}
	return token.Token{Kind: token.Data, Loc: start, Text: decodeEntities(sb.String(), false)}
}

// nextRawTextLike scans RCDATA/RAWTEXT/script-data content: everything
// up to a case-insensitive "</lastStartTag" boundary (or EOF) is data;
// RCDATA additionally decodes entities.
func (t *Tokenizer) nextRawTextLike() token.Token {
	start := t.loc()
	if _, ok := t.peek(); !ok {
		return t.emitEOF()
	}
	if r, ok := t.peek(); ok && r == '<' {
		if r2, ok2 := t.peekAt(1); ok2 && r2 == '/' && t.matchesEndTagAhead() {
			return t.endTagOpen()
		}
	}
	var sb strings.Builder
	for {
		r, ok := t.peek()
		if !ok {
			break
		}
		if r == '<' {
			if r2, ok2 := t.peekAt(1); ok2 && r2 == '/' && t.matchesEndTagAhead() {
				break
			}
		}
		t.advance()
		if r == 0 {
			sb.WriteRune('�')
			continue
		}
		sb.WriteRune(r)
	}
	text := sb.String()
	if t.state == RCDATAState {
		text = decodeEntities(text, false)
	}
	return token.Token{Kind: token.Data, Loc: start, Text: text}
}

func (t *Tokenizer) matchesEndTagAhead() bool {
	if t.lastStartTag == "" {
		return false
	}
	probe := "</" + t.lastStartTag
	if !t.startsWithFold(probe) {
		return false
	}
	after, ok := t.peekAt(len(probe))
	if !ok {
		return true
	}
	return after == '>' || after == '/' || isSpace(after)
}

func (t *Tokenizer) nextPlaintext() token.Token {
	start := t.loc()
	if _, ok := t.peek(); !ok {
		return t.emitEOF()
	}
	var sb strings.Builder
	for {
		r, ok := t.advance()
		if !ok {
			break
		}
		if r == 0 {
			sb.WriteRune('�')
			continue
		}
		sb.WriteRune(r)
	}
	return token.Token{Kind: token.Data, Loc: start, Text: sb.String()}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

// tagOpen consumes a leading '<' and dispatches to markup declaration,
// start-tag, end-tag, or bogus-comment scanning. A '<' at end of input
// comes back as a "<" data token. Returns handled=false when the
// character after '<' cannot start markup (a space, a digit, and so
// on), in which case the caller falls back to literal-character
// handling starting at '<'.
func (t *Tokenizer) tagOpen() (token.Token, bool) {
	start := t.loc()
	next, ok := t.peekAt(1)
	if !ok {
		t.advance()
		t.reporter.Report(start, perr.EOFBeforeTagName)
		return token.Token{Kind: token.Data, Loc: start, Text: "<"}, true
	}
	switch {
	case next == '!':
		t.advance()
		t.advance()
		return t.markupDeclarationOpen(start), true
	case next == '/':
		return t.endTagOpen(), true
	case isASCIILetter(next):
		t.advance()
		return t.tagName(start, token.StartTag), true
	case next == '?':
		t.advance()
		t.advance()
		t.reporter.Report(start, perr.UnexpectedQuestionMarkInsteadOfTagName)
		return t.bogusComment(start), true
	default:
		return token.Token{}, false
	}
}

func (t *Tokenizer) endTagOpen() token.Token {
	start := t.loc()
	t.advance() // '<'
	t.advance() // '/'
	next, ok := t.peek()
	if !ok {
		t.reporter.Report(start, perr.EOFBeforeTagName)
		return token.Token{Kind: token.Data, Loc: start, Text: "</"}
	}
	if next == '>' {
		t.advance()
		return token.Token{Kind: token.Data, Loc: start, Text: ""}
	}
	if !isASCIILetter(next) {
		t.reporter.Report(start, perr.InvalidFirstCharacterOfTagName)
		return t.bogusComment(start)
	}
	return t.tagName(start, token.EndTag)
}

func (t *Tokenizer) tagName(start token.Location, kind token.Kind) token.Token {
	var nameBuf strings.Builder
	for {
		r, ok := t.peek()
		if !ok {
			t.reporter.Report(start, perr.EOFInTag)
			return t.finishTag(start, kind, strings.ToLower(nameBuf.String()), nil, false)
		}
		if isSpace(r) {
			t.advance()
			break
		}
		if r == '/' || r == '>' {
			break
		}
		t.advance()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		nameBuf.WriteRune(r)
	}
	name := nameBuf.String()
	attrs, selfClosing := t.attributes(start)
	if kind == token.EndTag && len(attrs) > 0 {
		t.reporter.Report(start, perr.EndTagWithAttributes)
	}
	if kind == token.EndTag && selfClosing {
		t.reporter.Report(start, perr.EndTagWithTrailingSolidus)
	}
	return t.finishTag(start, kind, name, attrs, selfClosing)
}

func (t *Tokenizer) finishTag(start token.Location, kind token.Kind, name string, attrs []token.Attr, selfClosing bool) token.Token {
	return token.Token{Kind: kind, Loc: start, Name: name, Attrs: attrs, SelfClosing: selfClosing}
}

// attributes consumes "BeforeAttributeName" through the trailing '>'
// (or EOF), returning the parsed attribute list and the self-closing
// flag. Assumes the tag name has just been consumed.
func (t *Tokenizer) attributes(start token.Location) ([]token.Attr, bool) {
	var attrs []token.Attr
	seen := map[string]bool{}
	for {
		t.skipSpace()
		r, ok := t.peek()
		if !ok {
			t.reporter.Report(start, perr.EOFInTag)
			return attrs, false
		}
		if r == '>' {
			t.advance()
			return attrs, false
		}
		if r == '/' {
			t.advance()
			r2, ok2 := t.peek()
			if ok2 && r2 == '>' {
				t.advance()
				return attrs, true
			}
			t.reporter.Report(start, perr.UnexpectedSolidusInTag)
			continue
		}
		name, value := t.attribute(start)
		if name == "" {
			continue
		}
		if seen[name] {
			t.reporter.Report(start, perr.DuplicateAttribute)
			continue
		}
		seen[name] = true
		attrs = append(attrs, token.Attr{Name: name, Value: value})
	}
}

func (t *Tokenizer) attribute(start token.Location) (string, string) {
	var nameBuf strings.Builder
	for {
		r, ok := t.peek()
		if !ok || isSpace(r) || r == '/' || r == '>' || r == '=' {
			break
		}
		t.advance()
		if r == '"' || r == '\'' || r == '<' {
			t.reporter.Report(start, perr.UnexpectedCharacterInAttributeName)
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		nameBuf.WriteRune(r)
	}
	name := nameBuf.String()
	t.skipSpace()
	r, ok := t.peek()
	if !ok || r != '=' {
		if name == "" && ok && r == '=' {
			t.reporter.Report(start, perr.UnexpectedEqualsSignBeforeAttributeName)
		}
		return name, ""
	}
	t.advance()
	t.skipSpace()
	return name, t.attributeValue(start)
}

func (t *Tokenizer) attributeValue(start token.Location) string {
	r, ok := t.peek()
	if !ok {
		t.reporter.Report(start, perr.EOFInTag)
		return ""
	}
	if r == '"' || r == '\'' {
		quote := r
		t.advance()
		var sb strings.Builder
		for {
			r, ok := t.advance()
			if !ok {
				t.reporter.Report(start, perr.EOFInTag)
				break
			}
			if r == quote {
				break
			}
			if r == 0 {
				sb.WriteRune('�')
				continue
			}
			sb.WriteRune(r)
		}
		return decodeEntities(sb.String(), true)
	}
	var sb strings.Builder
	for {
		r, ok := t.peek()
		if !ok || isSpace(r) || r == '>' {
			break
		}
		t.advance()
		if r == 0 {
			sb.WriteRune('�')
			continue
		}
		if r == '"' || r == '\'' || r == '<' || r == '=' || r == '`' {
			t.reporter.Report(start, perr.MissingAttributeValue)
		}
		sb.WriteRune(r)
	}
	return decodeEntities(sb.String(), true)
}

func (t *Tokenizer) skipSpace() {
	for {
		r, ok := t.peek()
		if !ok || !isSpace(r) {
			return
		}
		t.advance()
	}
}

func (t *Tokenizer) markupDeclarationOpen(start token.Location) token.Token {
	if t.startsWithFold("--") {
		t.pos += 2
		return t.comment(start)
	}
	if t.startsWithFold("DOCTYPE") {
		t.pos += 7
		return t.doctype(start)
	}
	if t.startsWithFold("[CDATA[") {
		t.pos += 7
		t.reporter.Report(start, perr.CDATAInHTMLContent)
		return t.cdata(start)
	}
	t.reporter.Report(start, perr.IncorrectlyOpenedComment)
	return t.bogusComment(start)
}

func (t *Tokenizer) comment(start token.Location) token.Token {
	var sb strings.Builder
	for {
		if t.startsWithFold("-->") {
			t.pos += 3
			return token.Token{Kind: token.Comment, Loc: start, Text: sb.String()}
		}
		if t.startsWithFold("--!>") {
			t.pos += 4
			t.reporter.Report(start, perr.IncorrectlyClosedComment)
			return token.Token{Kind: token.Comment, Loc: start, Text: sb.String()}
		}
		r, ok := t.advance()
		if !ok {
			t.reporter.Report(start, perr.EOFInComment)
			return token.Token{Kind: token.Comment, Loc: start, Text: sb.String()}
		}
		if r == 0 {
			sb.WriteRune('�')
			continue
		}
		sb.WriteRune(r)
	}
}

func (t *Tokenizer) bogusComment(start token.Location) token.Token {
	var sb strings.Builder
	for {
		r, ok := t.advance()
		if !ok {
			return token.Token{Kind: token.Comment, Loc: start, Text: sb.String()}
		}
		if r == '>' {
			return token.Token{Kind: token.Comment, Loc: start, Text: sb.String()}
		}
		if r == 0 {
			sb.WriteRune('�')
			continue
		}
		sb.WriteRune(r)
	}
}

func (t *Tokenizer) cdata(start token.Location) token.Token {
	var sb strings.Builder
	for {
		if t.startsWithFold("]]>") {
			t.pos += 3
			return token.Token{Kind: token.Data, Loc: start, Text: sb.String()}
		}
		r, ok := t.advance()
		if !ok {
			return token.Token{Kind: token.Data, Loc: start, Text: sb.String()}
		}
		sb.WriteRune(r)
	}
}

func (t *Tokenizer) doctype(start token.Location) token.Token {
	t.skipSpace()
	tok := token.Token{Kind: token.Doctype, Loc: start}
	var nameBuf strings.Builder
	for {
		r, ok := t.peek()
		if !ok {
			t.reporter.Report(start, perr.EOFInDoctype)
			tok.ForceQuirks = true
			tok.Name = strings.ToLower(nameBuf.String())
			return tok
		}
		if isSpace(r) || r == '>' {
			break
		}
		t.advance()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		nameBuf.WriteRune(r)
	}
	tok.Name = nameBuf.String()
	t.skipSpace()

	r, ok := t.peek()
	if ok && r == '>' {
		t.advance()
		return tok
	}

	if t.startsWithFold("PUBLIC") {
		t.pos += 6
		id := t.doctypeIdentifier(start, perr.MissingWhitespaceAfterDoctypePublicKeyword, perr.MissingQuoteBeforeDoctypePublicIdentifier, perr.AbruptDoctypePublicIdentifier, perr.MissingDoctypePublicIdentifier)
		tok.PublicID = &id
		beforeSpace, _ := t.peek()
		sawSpace := isSpace(beforeSpace)
		t.skipSpace()
		if r2, ok2 := t.peek(); ok2 && (r2 == '"' || r2 == '\'') {
			if !sawSpace {
				t.reporter.Report(start, perr.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
			}
			sid := t.doctypeIdentifier(start, perr.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers, perr.MissingQuoteBeforeDoctypeSystemIdentifier, perr.AbruptDoctypeSystemIdentifier, perr.MissingDoctypeSystemIdentifier)
			tok.SystemID = &sid
		}
	} else if t.startsWithFold("SYSTEM") {
		t.pos += 6
		id := t.doctypeIdentifier(start, perr.MissingWhitespaceAfterDoctypeSystemKeyword, perr.MissingQuoteBeforeDoctypeSystemIdentifier, perr.AbruptDoctypeSystemIdentifier, perr.MissingDoctypeSystemIdentifier)
		tok.SystemID = &id
	} else {
		tok.ForceQuirks = true
	}

	for {
		r, ok := t.advance()
		if !ok {
			t.reporter.Report(start, perr.EOFInDoctype)
			tok.ForceQuirks = true
			break
		}
		if r == '>' {
			break
		}
	}
	return tok
}

func (t *Tokenizer) doctypeIdentifier(start token.Location, missingWSCode, missingQuoteCode, abruptCode, missingIDCode perr.Code) string {
	t.skipSpace()
	r, ok := t.peek()
	if !ok || (r != '"' && r != '\'') {
		t.reporter.Report(start, missingQuoteCode)
		return ""
	}
	quote := r
	t.advance()
	var sb strings.Builder
	for {
		r, ok := t.advance()
		if !ok {
			t.reporter.Report(start, perr.EOFInDoctype)
			break
		}
		if r == quote {
			break
		}
		if r == '>' {
			t.reporter.Report(start, abruptCode)
			t.pos--
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
