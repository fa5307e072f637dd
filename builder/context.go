package builder

import "github.com/kasuga-html/htmltree/domns"

// resolvedFragmentContext is the namespace-typed form of FragmentContext,
// built once at session start so the rest of the builder never has to
// re-derive domns.Namespace from the int field FragmentContext exposes
// in its doc comments.
type resolvedFragmentContext struct {
	ns          domns.Namespace
	local       string
	formElement bool
}

func resolveFragmentContext(c *FragmentContext) *resolvedFragmentContext {
	if c == nil {
		return nil
	}
	return &resolvedFragmentContext{
		ns:          domns.Namespace(c.Namespace),
		local:       c.Local,
		formElement: c.FormElement,
	}
}

// initialModeForContext picks the insertion mode fragment parsing
// starts in, per spec.md §4.7, ported from the teacher's
// NewFragment context-tag switch.
func initialModeForContext(ctx *resolvedFragmentContext) InsertionMode {
	if ctx.ns != domns.HTML {
		return ModeInBody
	}
	switch ctx.local {
	case "html":
		return ModeBeforeHead
	case "tbody", "thead", "tfoot":
		return ModeInTableBody
	case "tr":
		return ModeInRow
	case "td", "th":
		return ModeInCell
	case "caption":
		return ModeInCaption
	case "colgroup":
		return ModeInColumnGroup
	case "table":
		return ModeInTable
	case "select":
		return ModeInSelect
	default:
		return ModeInBody
	}
}
