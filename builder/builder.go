// Package builder implements a conformant HTML5 tree-construction
// driver: the insertion-mode state machine, the open-element stack,
// the active formatting element list, the adoption agency algorithm,
// and foreign-content dispatch (spec.md §4), ported from the
// teacher's treebuilder package and generalized from its direct
// *dom.Element graph onto an arena-of-Ref model driven entirely
// through the caller-supplied Sink.
package builder

import (
	"github.com/kasuga-html/htmltree/domns"
	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// Builder drives tree construction for a single parse session. A
// Builder is not safe for concurrent use and is discarded after Run
// returns.
type Builder struct {
	sink     Sink
	arena    *arena
	stack    *openStack
	fmtList  *formattingList
	reporter perr.Reporter

	mode         InsertionMode
	originalMode InsertionMode

	templateModes []InsertionMode

	headRef Ref
	formRef Ref

	framesetOK      bool
	fosterParenting bool

	pendingTableText      []pendingTableChar
	tableTextOriginalMode InsertionMode

	quirks QuirksMode

	scriptingEnabled bool
	iframeSrcdoc     bool

	fragment        *resolvedFragmentContext
	fragmentRootRef Ref
	fragmentElemRef Ref

	forceHTMLMode bool

	docNode Node

	src token.Source
}

type pendingTableChar struct {
	text string
}

// New creates a Builder for whole-document parsing.
func New(sink Sink, opts Options) *Builder {
	b := newBuilder(sink, opts)
	b.mode = ModeInitial
	return b
}

// NewFragment creates a Builder for fragment parsing against
// opts.Fragment (spec.md §4.7). opts.Fragment must be non-nil.
func NewFragment(sink Sink, opts Options) *Builder {
	b := newBuilder(sink, opts)
	ctx := resolveFragmentContext(opts.Fragment)
	b.fragment = ctx
	b.framesetOK = false

	htmlNode := sink.CreateElement(domns.HTML, "", "html", nil)
	sink.AppendChild(htmlNode, sink.Document())
	htmlRef := b.arena.create(domns.HTML, "", "html", nil, htmlNode)
	b.stack.push(htmlRef)
	b.fragmentRootRef = htmlRef

	if ctx != nil {
		contextNode := sink.CreateElement(ctx.ns, "", ctx.local, nil)
		sink.AppendChild(contextNode, htmlNode)
		contextRef := b.arena.create(ctx.ns, "", ctx.local, nil, contextNode)
		b.stack.push(contextRef)
		b.fragmentElemRef = contextRef
		if ctx.formElement {
			b.formRef = contextRef
		}
		b.mode = initialModeForContext(ctx)
		b.originalMode = b.mode
	} else {
		b.mode = ModeBeforeHead
	}
	return b
}

func newBuilder(sink Sink, opts Options) *Builder {
	a := newArena()
	return &Builder{
		sink:             sink,
		arena:            a,
		stack:            newOpenStack(a),
		fmtList:          newFormattingList(a),
		reporter:         opts.reporter(),
		headRef:          noRef,
		formRef:          noRef,
		fragmentRootRef:  noRef,
		fragmentElemRef:  noRef,
		framesetOK:       true,
		scriptingEnabled: opts.ScriptingEnabled,
		iframeSrcdoc:     opts.IframeSrcdoc,
		docNode:          sink.Document(),
	}
}

// Document returns the Node handle for the document root, as
// returned by the Sink's Document method.
func (b *Builder) Document() Node {
	return b.docNode
}

// FragmentNodes returns the element/text/comment children of the
// fragment context element (or of the synthetic <html> root, for a
// context-less fragment), in document order. Grounded in the
// teacher's TreeBuilder.FragmentNodes.
func (b *Builder) FragmentNodes(childrenOf func(Node) []Node) []Node {
	root := b.fragmentElemRef
	if root == noRef {
		root = b.fragmentRootRef
	}
	if root == noRef {
		return nil
	}
	return childrenOf(b.arena.get(root).node)
}

// QuirksMode reports the document's quirks-mode classification as
// determined by the first DOCTYPE token processed. A document whose
// first significant token is not a DOCTYPE is Quirks (unless
// Options.IframeSrcdoc is set); a fragment parse, which never consults
// quirks mode, reports NoQuirks.
func (b *Builder) QuirksMode() QuirksMode {
	return b.quirks
}

// Run drives src to completion, feeding every token through the
// insertion-mode machine until an EndOfInput token is processed. It
// returns a non-nil error only if the Sink violates its contract;
// non-conformant input never stops the parse, it is only reported
// through the Reporter (spec.md §7).
func (b *Builder) Run(src token.Source) (err error) {
	b.src = src
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*SinkError); ok {
				err = se
				return
			}
			panic(r)
		}
	}()
	for {
		tok := src.Next()
		b.processToken(tok)
		if tok.Kind == token.EndOfInput {
			return nil
		}
	}
}

func (b *Builder) report(loc token.Location, code perr.Code) {
	b.reporter.Report(loc, code)
}

// processToken is ProcessToken generalized to the Ref/Sink model,
// preserving the teacher's reprocess-token dispatch convention: a
// mode handler returns true to ask for the same token to be
// reprocessed, either because the insertion mode changed or because
// foreign-content dispatch decided to fall back to HTML rules.
func (b *Builder) processToken(tok token.Token) {
	for {
		if !b.forceHTMLMode && b.shouldUseForeignContent(tok) {
			if b.processForeignContent(tok) {
				continue
			}
			return
		}
		b.forceHTMLMode = false

		var reprocess bool
		switch b.mode {
		case ModeInitial:
			reprocess = b.processInitial(tok)
		case ModeBeforeHTML:
			reprocess = b.processBeforeHTML(tok)
		case ModeBeforeHead:
			reprocess = b.processBeforeHead(tok)
		case ModeInHead:
			reprocess = b.processInHead(tok)
		case ModeInHeadNoscript:
			reprocess = b.processInHeadNoscript(tok)
		case ModeAfterHead:
			reprocess = b.processAfterHead(tok)
		case ModeInBody:
			reprocess = b.processInBody(tok)
		case ModeText:
			reprocess = b.processText(tok)
		case ModeInTable:
			reprocess = b.processInTable(tok)
		case ModeInTableText:
			reprocess = b.processInTableText(tok)
		case ModeInCaption:
			reprocess = b.processInCaption(tok)
		case ModeInColumnGroup:
			reprocess = b.processInColumnGroup(tok)
		case ModeInTableBody:
			reprocess = b.processInTableBody(tok)
		case ModeInRow:
			reprocess = b.processInRow(tok)
		case ModeInCell:
			reprocess = b.processInCell(tok)
		case ModeInSelect:
			reprocess = b.processInSelect(tok)
		case ModeInSelectInTable:
			reprocess = b.processInSelectInTable(tok)
		case ModeInTemplate:
			reprocess = b.processInTemplate(tok)
		case ModeAfterBody:
			reprocess = b.processAfterBody(tok)
		case ModeInFrameset:
			reprocess = b.processInFrameset(tok)
		case ModeAfterFrameset:
			reprocess = b.processAfterFrameset(tok)
		case ModeAfterAfterBody:
			reprocess = b.processAfterAfterBody(tok)
		case ModeAfterAfterFrameset:
			reprocess = b.processAfterAfterFrameset(tok)
		default:
			reprocess = b.processInBody(tok)
		}
		if !reprocess {
			return
		}
	}
}

func (b *Builder) current() Ref {
	return b.stack.current()
}

func (b *Builder) currentIsHTML(name string) bool {
	r := b.current()
	if r == noRef {
		return false
	}
	e := b.arena.get(r)
	return e.ns == domns.HTML && e.local == name
}

func (b *Builder) adjustedCurrentNode() Ref {
	if b.fragment != nil && b.stack.len() == 1 {
		return b.fragmentElemRef
	}
	return b.current()
}
