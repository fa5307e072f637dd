package domsink

import "github.com/kasuga-html/htmltree/domns"

// Document represents a parsed HTML document: the tree root, holding
// the DOCTYPE (if any) plus the <html> element and any comments or
// whitespace the parser placed outside it.
type Document struct {
	baseNode

	// Doctype is the document's DOCTYPE declaration, or nil if the
	// source had none.
	Doctype *DocumentType
}

// NewDocument creates a new, empty document.
func NewDocument() *Document {
	d := &Document{}
	d.baseNode.init(d)
	return d
}

// Type implements Node.
func (d *Document) Type() NodeType {
	return DocumentNodeType
}

// Clone implements Node.
func (d *Document) Clone(deep bool) Node {
	clone := &Document{}
	clone.baseNode.init(clone)
	if d.Doctype != nil {
		clone.Doctype = d.Doctype.Clone(false).(*DocumentType)
	}
	if deep {
		for _, child := range d.children {
			clone.AppendChild(child.Clone(true))
		}
	}
	return clone
}

// AppendChild adds a child node, properly setting the parent.
func (d *Document) AppendChild(child Node) {
	child.SetParent(d)
	d.children = append(d.children, child)
}

// DocumentElement returns the root <html> element, or nil if none has
// been inserted yet.
func (d *Document) DocumentElement() *Element {
	for _, child := range d.children {
		if elem, ok := child.(*Element); ok && elem.Namespace == domns.HTML && elem.TagName == "html" {
			return elem
		}
	}
	return nil
}

// Head returns the document's <head> element, or nil if absent.
func (d *Document) Head() *Element {
	return firstChildElement(d.DocumentElement(), "head")
}

// Body returns the document's <body> element, or nil if absent.
func (d *Document) Body() *Element {
	return firstChildElement(d.DocumentElement(), "body")
}

func firstChildElement(parent *Element, name string) *Element {
	if parent == nil {
		return nil
	}
	for _, child := range parent.Children() {
		if elem, ok := child.(*Element); ok && elem.TagName == name {
			return elem
		}
	}
	return nil
}

// Title returns the text content of the document's <title> element,
// or "" if there is none.
func (d *Document) Title() string {
	head := d.Head()
	if head == nil {
		return ""
	}
	if title := firstChildElement(head, "title"); title != nil {
		return title.Text()
	}
	return ""
}

// DocumentType represents a DOCTYPE declaration.
type DocumentType struct {
	parent Node

	// Name is the DOCTYPE name, almost always "html".
	Name string

	// PublicID is the DOCTYPE's public identifier.
	PublicID string

	// SystemID is the DOCTYPE's system identifier.
	SystemID string
}

// NewDocumentType creates a new DOCTYPE node.
func NewDocumentType(name, publicID, systemID string) *DocumentType {
	return &DocumentType{Name: name, PublicID: publicID, SystemID: systemID}
}

// Type implements Node.
func (dt *DocumentType) Type() NodeType { return DoctypeNodeType }

// Parent implements Node.
func (dt *DocumentType) Parent() Node { return dt.parent }

// SetParent implements Node.
func (dt *DocumentType) SetParent(parent Node) { dt.parent = parent }

// Children implements Node (DOCTYPE nodes have no children).
func (dt *DocumentType) Children() []Node { return nil }

// AppendChild implements Node (no-op for DOCTYPE nodes).
func (dt *DocumentType) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for DOCTYPE nodes).
func (dt *DocumentType) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for DOCTYPE nodes).
func (dt *DocumentType) RemoveChild(_ Node) {}

// Clone implements Node.
func (dt *DocumentType) Clone(_ bool) Node {
	return &DocumentType{Name: dt.Name, PublicID: dt.PublicID, SystemID: dt.SystemID}
}

// DocumentFragment represents a fragment of a tree not attached to a
// Document, used for <template> contents and for the context-less
// fragment-parsing entry point.
type DocumentFragment struct {
	baseNode
}

// NewDocumentFragment creates a new, empty document fragment.
func NewDocumentFragment() *DocumentFragment {
	df := &DocumentFragment{}
	df.baseNode.init(df)
	return df
}

// Type implements Node.
func (df *DocumentFragment) Type() NodeType {
	return DocumentNodeType
}

// Clone implements Node.
func (df *DocumentFragment) Clone(deep bool) Node {
	clone := &DocumentFragment{}
	clone.baseNode.init(clone)
	if deep {
		for _, child := range df.children {
			clone.AppendChild(child.Clone(true))
		}
	}
	return clone
}

// AppendChild adds a child node, properly setting the parent.
func (df *DocumentFragment) AppendChild(child Node) {
	child.SetParent(df)
	df.children = append(df.children, child)
}
