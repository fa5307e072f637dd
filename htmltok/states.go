package htmltok

// State is the tokenizer's own state, switched by the tree builder
// when it enters RCDATA/RAWTEXT/script-data/PLAINTEXT content per
// spec.md §4.6 ("tokenizer-mode switches ... implementers must define
// how the tokenizer is switched and back"). Named and ordered after
// the teacher's tokenizer.State, trimmed to the states this reference
// implementation actually drives (the full HTML5 tokenizer has ~90
// sub-states for script-data double-escaping and per-character
// numeric character references; this collapses those into coarser
// text-scanning and post-hoc entity decoding, see entities.go).
type State int

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
)

func (s State) String() string {
	switch s {
	case DataState:
		return "data"
	case RCDATAState:
		return "rcdata"
	case RAWTEXTState:
		return "rawtext"
	case ScriptDataState:
		return "script-data"
	case PLAINTEXTState:
		return "plaintext"
	default:
		return "unknown"
	}
}
