package builder

import "github.com/kasuga-html/htmltree/perr"

// FragmentContext supplies the context element for fragment parsing
// (spec.md §4.7), generalized from the teacher's treebuilder/context.go
// to operate on namespace/local-name pairs instead of a live
// *dom.Element, since the builder never owns a tree of its own.
type FragmentContext struct {
	Namespace int // a domns.Namespace value, stored as int
	Local     string

	// FormElement reports whether the context chain includes an open
	// <form>, used to seed the form-pointer so fragment parsing of
	// e.g. a <td> inside a <form> doesn't let a stray nested form tag
	// take effect.
	FormElement bool
}

// Options configures a Builder session. Grounded in the teacher's
// treebuilder.Options (scripting flag) generalized with the
// fragment-parsing and iframe srcdoc knobs spec.md's Design Notes
// call out as supplemented features.
type Options struct {
	// Reporter receives parse errors. Defaults to perr.Discard.
	Reporter perr.Reporter

	// ScriptingEnabled controls whether <noscript> content is parsed
	// as raw text (true) or as markup (false), per spec.md §4.6's
	// "in head noscript" notes.
	ScriptingEnabled bool

	// IframeSrcdoc marks this session as parsing the contents of an
	// iframe srcdoc attribute, which forces no-quirks mode regardless
	// of any DOCTYPE.
	IframeSrcdoc bool

	// Fragment, when non-nil, switches the builder into fragment
	// parsing mode (spec.md §4.7) against the given context element.
	Fragment *FragmentContext
}

func (o Options) reporter() perr.Reporter {
	if o.Reporter == nil {
		return perr.Discard
	}
	return o.Reporter
}
