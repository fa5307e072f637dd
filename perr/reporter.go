package perr

import "github.com/kasuga-html/htmltree/token"

// Reporter receives parse errors as they occur. The tree builder
// never aborts on a Reporter call; Report is expected to be cheap and
// non-blocking (e.g. append to a slice, or a non-blocking channel
// send) since it is invoked synchronously from the hot parsing path.
type Reporter interface {
	Report(loc token.Location, code Code)
}

// Discard is a Reporter that drops every error. Useful for callers
// that only want the tree, not diagnostics.
var Discard Reporter = discardReporter{}

type discardReporter struct{}

func (discardReporter) Report(token.Location, Code) {}

// Collector is a Reporter that accumulates every error in order, for
// tests and tooling that want to assert on the exact set reported.
type Collector struct {
	Errors []Entry
}

// Entry pairs a location with the code reported there.
type Entry struct {
	Loc  token.Location
	Code Code
}

func (c *Collector) Report(loc token.Location, code Code) {
	c.Errors = append(c.Errors, Entry{Loc: loc, Code: code})
}
