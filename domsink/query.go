package domsink

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query finds every descendant element of root matching a CSS
// selector, in document order. The teacher's Element.Query was left
// as a selector-parsing stub; this fills it in by mirroring the
// subtree into a throwaway golang.org/x/net/html tree (the shape
// cascadia's matcher requires) and mapping matches back to the
// originating Element through the side table built during the
// mirror, the same two-step match-then-translate goquery itself
// performs internally over its own *html.Node trees.
func (e *Element) Query(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	root, byNode := mirrorToHTML(e)
	var results []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && sel.Match(n) {
			if match, ok := byNode[n]; ok && match != e {
				results = append(results, match)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return results, nil
}

// QueryFirst finds the first descendant element matching selector, or
// nil if none match.
func (e *Element) QueryFirst(selector string) (*Element, error) {
	results, err := e.Query(selector)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// Query finds every element in the document matching selector.
func (d *Document) Query(selector string) ([]*Element, error) {
	root := d.DocumentElement()
	if root == nil {
		return nil, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	htmlRoot, byNode := mirrorToHTML(root)
	var results []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && sel.Match(n) {
			if match, ok := byNode[n]; ok {
				results = append(results, match)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(htmlRoot)
	return results, nil
}

// QueryFirst finds the first element in the document matching selector.
func (d *Document) QueryFirst(selector string) (*Element, error) {
	results, err := d.Query(selector)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// mirrorToHTML builds a standalone *html.Node tree structurally
// identical to root's subtree, returning the root of the mirror plus
// a map back from each mirrored element node to the Element it stands
// in for. Only element, text, and comment descendants are mirrored;
// template contents are not descended into, matching how a live DOM
// treats <template> as an opaque leaf for querySelector purposes.
func mirrorToHTML(root *Element) (*html.Node, map[*html.Node]*Element) {
	byNode := make(map[*html.Node]*Element)
	var convert func(e *Element) *html.Node
	convert = func(e *Element) *html.Node {
		n := &html.Node{
			Type:      html.ElementNode,
			Data:      e.TagName,
			Namespace: foreignPrefix(e),
		}
		for _, a := range e.Attributes.All() {
			n.Attr = append(n.Attr, html.Attribute{
				Namespace: a.Namespace,
				Key:       a.Name,
				Val:       a.Value,
			})
		}
		byNode[n] = e
		for _, child := range e.Children() {
			var cn *html.Node
			switch c := child.(type) {
			case *Element:
				cn = convert(c)
			case *Text:
				cn = &html.Node{Type: html.TextNode, Data: c.Data}
			case *Comment:
				cn = &html.Node{Type: html.CommentNode, Data: c.Data}
			default:
				continue
			}
			n.AppendChild(cn)
		}
		return n
	}
	return convert(root), byNode
}

// foreignPrefix reports the namespace tag cascadia's selectors expect
// on the Node.Namespace field: empty for HTML, otherwise the
// short name x/net/html itself uses ("svg", "mathml").
func foreignPrefix(e *Element) string {
	switch e.Namespace.String() {
	case "html":
		return ""
	case "svg":
		return "svg"
	case "mathml":
		return "mathml"
	default:
		return ""
	}
}
