package builder

// InsertionMode is the tree-construction dispatch state (spec.md
// §4.6). The Living Standard's full machine refines "in table"
// handling into several cooperating table-context modes; SPEC_FULL.md
// folds those into the same "Insertion-Mode Machine" line item rather
// than treating them as out of scope, so this enum carries all of
// them rather than just the fourteen headline names.
type InsertionMode int

const (
	ModeInitial InsertionMode = iota
	ModeBeforeHTML
	ModeBeforeHead
	ModeInHead
	ModeInHeadNoscript
	ModeAfterHead
	ModeInBody
	ModeText
	ModeInTable
	ModeInTableText
	ModeInCaption
	ModeInColumnGroup
	ModeInTableBody
	ModeInRow
	ModeInCell
	ModeInSelect
	ModeInSelectInTable
	ModeInTemplate
	ModeAfterBody
	ModeInFrameset
	ModeAfterFrameset
	ModeAfterAfterBody
	ModeAfterAfterFrameset
)

func (m InsertionMode) String() string {
	switch m {
	case ModeInitial:
		return "initial"
	case ModeBeforeHTML:
		return "before html"
	case ModeBeforeHead:
		return "before head"
	case ModeInHead:
		return "in head"
	case ModeInHeadNoscript:
		return "in head noscript"
	case ModeAfterHead:
		return "after head"
	case ModeInBody:
		return "in body"
	case ModeText:
		return "text"
	case ModeInTable:
		return "in table"
	case ModeInTableText:
		return "in table text"
	case ModeInCaption:
		return "in caption"
	case ModeInColumnGroup:
		return "in column group"
	case ModeInTableBody:
		return "in table body"
	case ModeInRow:
		return "in row"
	case ModeInCell:
		return "in cell"
	case ModeInSelect:
		return "in select"
	case ModeInSelectInTable:
		return "in select in table"
	case ModeInTemplate:
		return "in template"
	case ModeAfterBody:
		return "after body"
	case ModeInFrameset:
		return "in frameset"
	case ModeAfterFrameset:
		return "after frameset"
	case ModeAfterAfterBody:
		return "after after body"
	case ModeAfterAfterFrameset:
		return "after after frameset"
	default:
		return "unknown"
	}
}
