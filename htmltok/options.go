package htmltok

import "github.com/kasuga-html/htmltree/perr"

// Options configures a Tokenizer, mirroring the shape of the teacher's
// tokenizer/options.go.
type Options struct {
	// Reporter receives tokenizer-level parse errors. Defaults to
	// perr.Discard.
	Reporter perr.Reporter
}
