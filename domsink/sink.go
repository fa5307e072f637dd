package domsink

import (
	"github.com/kasuga-html/htmltree/builder"
	"github.com/kasuga-html/htmltree/domns"
)

// Sink is the reference builder.Sink implementation: it materializes
// every tree-construction instruction into the concrete node types in
// this package, backed by a chunked NodeAllocator so that parsing a
// large document does not allocate one object per node.
type Sink struct {
	alloc *NodeAllocator
	doc   *Document
}

// New creates a Sink with a fresh, empty Document.
func New() *Sink {
	return &Sink{alloc: NewNodeAllocator(), doc: NewDocument()}
}

// Doc returns the concrete Document the sink has been building,
// typed for callers that want direct access to DocumentElement, Head,
// Body, and Title rather than walking builder.Node handles.
func (s *Sink) Doc() *Document {
	return s.doc
}

// CreateDoctype implements builder.Sink.
func (s *Sink) CreateDoctype(name, publicID, systemID string) builder.Node {
	return s.alloc.NewDocumentType(name, publicID, systemID)
}

// CreateElement implements builder.Sink.
func (s *Sink) CreateElement(ns domns.Namespace, prefix, localName string, attrs []builder.Attribute) builder.Node {
	e := s.alloc.NewElement(ns, prefix, localName)
	for _, a := range attrs {
		e.Attributes.Set(a.Prefix, a.Namespace, a.Local, a.Value)
	}
	if ns == domns.HTML && localName == "template" {
		e.TemplateContent = s.alloc.NewDocumentFragment()
	}
	return e
}

// CreateText implements builder.Sink.
func (s *Sink) CreateText(data string) builder.Node {
	return s.alloc.NewText(data)
}

// CreateComment implements builder.Sink.
func (s *Sink) CreateComment(data string) builder.Node {
	return s.alloc.NewComment(data)
}

// AppendChild implements builder.Sink, detaching node from its
// current parent first per the interface's documented contract (the
// adoption agency algorithm reparents already-inserted nodes).
//
// A DOCTYPE appended to the document is recorded on Document.Doctype
// rather than added as a generic child: the builder only ever learns
// of a document's node set through CreateX/AppendChild, so unlike the
// teacher's TreeBuilder (which owns a concrete *dom.Document and
// assigns tb.document.Doctype directly) this Sink has to intercept
// the doctype's insertion itself.
func (s *Sink) AppendChild(node, parent builder.Node) {
	n := node.(Node)
	detach(n)
	if dt, ok := n.(*DocumentType); ok {
		if doc, ok := parent.(*Document); ok {
			dt.SetParent(doc)
			doc.Doctype = dt
			return
		}
	}
	toParent(parent).AppendChild(n)
}

// InsertBefore implements builder.Sink.
func (s *Sink) InsertBefore(node, parent, reference builder.Node) {
	n := node.(Node)
	detach(n)
	var ref Node
	if reference != nil {
		ref = reference.(Node)
	}
	toParent(parent).InsertBefore(n, ref)
}

// MoveChildren implements builder.Sink, used by the adoption agency
// algorithm to move every child of the furthest block into the new
// formatting element created for it.
func (s *Sink) MoveChildren(oldParent, newParent builder.Node) {
	oldElem := oldParent.(*Element)
	newElem := newParent.(*Element)
	children := oldElem.Children()
	moved := make([]Node, len(children))
	copy(moved, children)
	oldElem.children = nil
	for _, c := range moved {
		c.SetParent(newElem)
		newElem.children = append(newElem.children, c)
	}
}

// Document implements builder.Sink.
func (s *Sink) Document() builder.Node {
	return s.doc
}

func detach(n Node) {
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
}

// toParent adapts a builder.Node known to be either the Document or
// an Element into the Node interface's RemoveChild/AppendChild/
// InsertBefore surface. A <template> element resolves to its
// TemplateContent fragment, so children inserted into a template land
// in its contents rather than among its own children.
func toParent(parent builder.Node) Node {
	switch p := parent.(type) {
	case *Document:
		return p
	case *Element:
		if p.TemplateContent != nil {
			return p.TemplateContent
		}
		return p
	case *DocumentFragment:
		return p
	default:
		panic("domsink: unexpected parent handle")
	}
}
