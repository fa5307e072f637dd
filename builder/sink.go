// Package builder implements the HTML5 tree-construction driver:
// the insertion-mode state machine, the open-element stack, the
// active formatting element list, the adoption agency algorithm, and
// foreign-content dispatch (spec.md §4). It owns no result tree —
// every mutation is requested through the Sink interface the
// application supplies.
package builder

import (
	"fmt"

	"github.com/kasuga-html/htmltree/domns"
)

// Node is an opaque handle to an application-level tree node. The
// builder never inspects it; it only passes handles back to Sink
// calls and stores them inside the arena.
type Node any

// Sink is the five-operation tree-mutation contract of spec.md §4.3.
// Every method must return promptly and without error: per spec.md §7
// a Sink that cannot honor a request is a programming error, not a
// recoverable parse error, and the builder aborts the session by
// returning a *SinkError from Run.
type Sink interface {
	CreateDoctype(name, publicID, systemID string) Node
	CreateElement(ns domns.Namespace, prefix, localName string, attrs []Attribute) Node
	CreateText(data string) Node
	CreateComment(data string) Node

	// AppendChild attaches node as the last child of parent, first
	// detaching it from its current parent if it already has one (the
	// adoption agency algorithm reparents already-inserted nodes, not
	// just freshly created ones). parent is either the Document()
	// handle or a node previously returned by CreateElement. The
	// builder never requests insertion of an ancestor into one of its
	// own descendants, and never targets a doctype node.
	AppendChild(node, parent Node)

	// InsertBefore attaches node as parent's child immediately before
	// reference, which must already be one of parent's children,
	// first detaching node from its current parent if any. Used by
	// foster parenting (spec.md §4.4's "appropriate place for
	// inserting a node"), where content misnested inside a table must
	// land just ahead of the table rather than at the end of its
	// parent's child list.
	InsertBefore(node, parent, reference Node)

	// MoveChildren relocates every child of oldParent (in order) to
	// become the last children of newParent. Both must be element
	// handles returned by CreateElement.
	MoveChildren(oldParent, newParent Node)

	// Document returns the handle representing the document root, the
	// only valid parent for a doctype node and for the root <html>
	// element.
	Document() Node
}

// Attribute is the callback-contract shape of an attribute: a
// namespace URI (empty for plain HTML attributes), an optional
// prefix, a local name, and a value.
type Attribute struct {
	Namespace string
	Prefix    string
	Local     string
	Value     string
}

// SinkError wraps a Sink contract violation. Builder.Run returns one
// of these, never a bare error from deeper inside the algorithm,
// distinguishing "the application misbehaved" from "input was
// non-conformant" (the latter never stops the parse, per spec.md §7).
type SinkError struct {
	Op  string
	Msg string
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("builder: sink contract violation in %s: %s", e.Op, e.Msg)
}
