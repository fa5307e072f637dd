// Package htmlserialize renders a domsink tree back to an HTML
// string, adapted from the teacher's serialize package to walk
// domsink.Node instead of dom.Node and to know about namespaced
// foreign elements/attributes, which the teacher's serializer never
// had to round-trip.
package htmlserialize

import (
	"strings"

	"github.com/kasuga-html/htmltree/domns"
	"github.com/kasuga-html/htmltree/domsink"
)

// ToHTML serializes a domsink node (typically a *domsink.Document or
// *domsink.Element) to its HTML string form.
func ToHTML(node domsink.Node) string {
	var sb strings.Builder
	serializeNode(&sb, node)
	return sb.String()
}

func serializeNode(sb *strings.Builder, node domsink.Node) {
	switch n := node.(type) {
	case *domsink.Document:
		serializeDocument(sb, n)
	case *domsink.DocumentType:
		serializeDoctype(sb, n)
	case *domsink.Element:
		serializeElement(sb, n)
	case *domsink.Text:
		sb.WriteString(escapeText(n.Data))
	case *domsink.Comment:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	}
}

func serializeDocument(sb *strings.Builder, doc *domsink.Document) {
	if doc.Doctype != nil {
		serializeDoctype(sb, doc.Doctype)
	}
	for _, child := range doc.Children() {
		serializeNode(sb, child)
	}
}

func serializeDoctype(sb *strings.Builder, dt *domsink.DocumentType) {
	sb.WriteString("<!DOCTYPE ")
	sb.WriteString(dt.Name)
	if dt.PublicID != "" {
		sb.WriteString(" PUBLIC \"")
		sb.WriteString(dt.PublicID)
		sb.WriteByte('"')
		if dt.SystemID != "" {
			sb.WriteString(" \"")
			sb.WriteString(dt.SystemID)
			sb.WriteByte('"')
		}
	} else if dt.SystemID != "" {
		sb.WriteString(" SYSTEM \"")
		sb.WriteString(dt.SystemID)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

func serializeElement(sb *strings.Builder, elem *domsink.Element) {
	tag := qualifiedName(elem)

	sb.WriteByte('<')
	sb.WriteString(tag)

	for _, attr := range elem.Attributes.All() {
		sb.WriteByte(' ')
		if attr.Prefix != "" {
			sb.WriteString(attr.Prefix)
			sb.WriteByte(':')
		}
		sb.WriteString(attr.Name)
		sb.WriteString("=\"")
		sb.WriteString(escapeAttr(attr.Value))
		sb.WriteByte('"')
	}

	if elem.Namespace == domns.HTML && isVoidElement(elem.TagName) {
		sb.WriteByte('>')
		return
	}

	sb.WriteByte('>')

	if elem.Namespace == domns.HTML && isRawTextContainer(elem.TagName) {
		for _, child := range elem.Children() {
			if text, ok := child.(*domsink.Text); ok {
				sb.WriteString(text.Data)
			}
		}
	} else {
		for _, child := range elem.Children() {
			serializeNode(sb, child)
		}
	}

	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

// qualifiedName renders an element's tag the way it would appear in
// source: prefixed for a foreign element carrying a namespace prefix,
// bare local name otherwise.
func qualifiedName(elem *domsink.Element) string {
	if elem.Prefix != "" {
		return elem.Prefix + ":" + elem.TagName
	}
	return elem.TagName
}

// escapeText escapes HTML text content's three reserved characters.
func escapeText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// escapeAttr escapes an attribute value for double-quoted output.
func escapeAttr(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '"':
			sb.WriteString("&quot;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

// isRawTextContainer reports whether tag's children are serialized
// verbatim rather than escaped, matching the content models the
// tree-construction driver itself treats as RAWTEXT/script-data
// (noscript, raw text only when scripting is enabled, is escaped).
func isRawTextContainer(tag string) bool {
	switch tag {
	case "script", "style", "xmp", "iframe", "noembed", "noframes":
		return true
	}
	return false
}
