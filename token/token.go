// Package token defines the token vocabulary the tree-construction
// driver consumes. The tokenizer that produces these values is an
// external collaborator (see htmltok for a reference implementation);
// this package only fixes the wire shape between tokenizer and
// builder, ported from the teacher's tokenizer.Token sum type.
package token

// Kind tags a Token's variant.
type Kind int

const (
	Doctype Kind = iota
	Data
	StartTag
	EndTag
	Comment
	EndOfInput
)

func (k Kind) String() string {
	switch k {
	case Doctype:
		return "doctype"
	case Data:
		return "data"
	case StartTag:
		return "start-tag"
	case EndTag:
		return "end-tag"
	case Comment:
		return "comment"
	case EndOfInput:
		return "end-of-input"
	default:
		return "unknown"
	}
}

// Location is a 1-based line, 0-based column source coordinate, used
// only by the error handler.
type Location struct {
	Line int
	Col  int
}

// Attr is a single token-level attribute, pre-namespace-adjustment.
// Namespace/Prefix are always empty on attributes as produced by the
// tokenizer; the builder's foreign-content dispatch fills them in for
// xlink:/xml:/xmlns attributes per §4.8.
type Attr struct {
	Namespace string
	Prefix    string
	Name      string
	Value     string
}

// Token is the tagged union produced by a token stream. Exactly one
// group of fields is meaningful, selected by Kind.
type Token struct {
	Kind Kind
	Loc  Location

	// Doctype
	Name        string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool

	// Data / Comment
	Text string

	// StartTag / EndTag (Name above doubles as the tag name)
	Attrs       []Attr
	SelfClosing bool
}

// Source is the pull-model token producer the builder drives. A
// conforming implementation always terminates with an EndOfInput
// token and never calls back into the builder.
type Source interface {
	Next() Token
}

// ContentState names the tokenizer content models spec.md §4.6
// switches between when the tree builder enters an element whose
// content isn't plain data: RCDATA (title, textarea), RAWTEXT
// (style, xmp, iframe, noembed, noframes), script data (script), and
// PLAINTEXT (plaintext, which never switches back).
type ContentState int

const (
	DataState ContentState = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
)

// StateSwitcher is implemented by a Source whose content model the
// tree builder can drive out-of-band, rather than leaving it to infer
// RCDATA/RAWTEXT/script-data scanning from the start tag name alone.
// A Source that doesn't implement it is still conformant; the builder
// only calls these methods on a best-effort basis via a type
// assertion.
type StateSwitcher interface {
	SetState(ContentState)
	SetLastStartTag(name string)
}
