package domsink

import (
	"strings"

	"github.com/kasuga-html/htmltree/domns"
)

// Element represents an HTML, SVG, or MathML element. Unlike the
// teacher's dom.Element, Namespace is a domns.Namespace rather than a
// bare URI string (the builder compares namespaces by identity, not
// by string), and a Prefix field is carried alongside the local name
// so that namespaced foreign attributes and qualified names survive
// round-tripping through a sink and back out through serialization.
type Element struct {
	baseNode

	// TagName is the element's local name (lowercase for HTML elements,
	// case-preserved for foreign elements, matching the builder's own
	// case handling).
	TagName string

	// Prefix is the element's namespace prefix, almost always empty;
	// foreign content carries one only when the source markup did.
	Prefix string

	// Namespace identifies which vocabulary this element belongs to.
	Namespace domns.Namespace

	// Attributes holds the element's attributes.
	Attributes *Attributes

	// TemplateContent holds the contents of a <template> element's
	// template contents document fragment. Nil for every other element.
	TemplateContent *DocumentFragment
}

// NewElement creates a new element in the given namespace.
func NewElement(ns domns.Namespace, prefix, localName string) *Element {
	e := &Element{
		TagName:    localName,
		Prefix:     prefix,
		Namespace:  ns,
		Attributes: NewAttributes(),
	}
	e.baseNode.init(e)
	return e
}

// Type implements Node.
func (e *Element) Type() NodeType {
	return ElementNodeType
}

// Clone implements Node.
func (e *Element) Clone(deep bool) Node {
	clone := &Element{
		TagName:    e.TagName,
		Prefix:     e.Prefix,
		Namespace:  e.Namespace,
		Attributes: e.Attributes.Clone(),
	}
	clone.baseNode.init(clone)

	if deep {
		for _, child := range e.children {
			clone.AppendChild(child.Clone(true))
		}
		if e.TemplateContent != nil {
			clone.TemplateContent = e.TemplateContent.Clone(true).(*DocumentFragment)
		}
	}
	return clone
}

// AppendChild adds a child node, properly setting the parent.
func (e *Element) AppendChild(child Node) {
	child.SetParent(e)
	e.children = append(e.children, child)
}

// InsertBefore inserts newChild immediately before refChild.
func (e *Element) InsertBefore(newChild, refChild Node) {
	if refChild == nil {
		e.AppendChild(newChild)
		return
	}
	for i, child := range e.children {
		if child == refChild {
			newChild.SetParent(e)
			e.children = append(e.children[:i], append([]Node{newChild}, e.children[i:]...)...)
			return
		}
	}
	e.AppendChild(newChild)
}

// RemoveChild detaches child from this element, if present.
func (e *Element) RemoveChild(child Node) {
	for i, c := range e.children {
		if c == child {
			child.SetParent(nil)
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Text returns the concatenated text content of this element and its
// descendants, skipping comments, in the manner of the DOM's
// textContent accessor.
func (e *Element) Text() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	for _, child := range e.children {
		switch c := child.(type) {
		case *Text:
			sb.WriteString(c.Data)
		case *Element:
			c.collectText(sb)
		}
	}
}

// Attr returns the value of an unnamespaced attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	val, _ := e.Attributes.Get(name)
	return val
}

// HasAttr returns true if the element carries the named attribute.
func (e *Element) HasAttr(name string) bool {
	return e.Attributes.Has(name)
}

// ID returns the value of the id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// Classes returns the element's CSS classes, split on whitespace.
func (e *Element) Classes() []string {
	class := e.Attr("class")
	if class == "" {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether the element carries the given CSS class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}
