package builder

import (
	"strings"

	"github.com/kasuga-html/htmltree/domns"
	"github.com/kasuga-html/htmltree/token"
)

// shouldUseForeignContent reports whether the current token must be
// processed by the foreign-content dispatch rules (spec.md §4.5)
// rather than the current insertion mode, ported from the teacher's
// shouldUseForeignContent.
func (b *Builder) shouldUseForeignContent(tok token.Token) bool {
	cur := b.adjustedCurrentNode()
	if cur == noRef {
		return false
	}
	e := b.arena.get(cur)
	if e.ns == domns.HTML {
		return false
	}
	if tok.Kind == token.EndOfInput {
		return false
	}

	if isMathMLTextIntegrationPoint(e) {
		if tok.Kind == token.Data {
			return false
		}
		if tok.Kind == token.StartTag && tok.Name != "mglyph" && tok.Name != "malignmark" {
			return false
		}
	}
	if e.ns == domns.MathML && e.local == "annotation-xml" {
		if tok.Kind == token.StartTag && tok.Name == "svg" {
			return false
		}
	}
	if isHTMLIntegrationPoint(e) {
		if tok.Kind == token.Data || tok.Kind == token.StartTag {
			return false
		}
	}
	return true
}

// processForeignContent implements "parsing tokens in foreign
// content" (spec.md §4.5). It returns true when the token should be
// reprocessed by the ordinary insertion-mode machine.
func (b *Builder) processForeignContent(tok token.Token) bool {
	cur := b.current()
	if cur == noRef {
		return false
	}

	switch tok.Kind {
	case token.Data:
		if tok.Text == "" {
			return false
		}
		data := strings.ReplaceAll(tok.Text, "\x00", "�")
		if !isAllWhitespace(data) {
			b.framesetOK = false
		}
		b.insertCharacter(tok.Loc, data)
		return false

	case token.Comment:
		b.insertComment(tok.Text)
		return false

	case token.StartTag:
		if foreignBreakoutElements[tok.Name] || (tok.Name == "font" && foreignBreakoutFont(tok.Attrs)) {
			b.popUntilHTMLOrIntegrationPoint()
			b.resetInsertionModeAppropriately()
			b.forceHTMLMode = true
			return true
		}
		ns := b.arena.get(cur).ns
		name := tok.Name
		if ns == domns.SVG {
			name = adjustSVGTagName(name)
		}
		attrs := b.adjustForeignAttrs(ns, tok.Attrs)
		ref := b.insertForeignElement(ns, name, attrs)
		b.arena.get(ref).original = tok.Name
		if tok.SelfClosing {
			b.stack.remove(ref)
		}
		return false

	case token.EndTag:
		if tok.Name == "br" || tok.Name == "p" {
			b.popUntilHTMLOrIntegrationPoint()
			b.resetInsertionModeAppropriately()
			b.forceHTMLMode = true
			return true
		}
		for i := b.stack.len() - 1; i >= 0; i-- {
			r := b.stack.at(i)
			e := b.arena.get(r)
			isHTML := e.ns == domns.HTML
			if strings.EqualFold(e.original, tok.Name) {
				if b.fragment != nil && r == b.fragmentElemRef {
					return false
				}
				if isHTML {
					b.forceHTMLMode = true
					return true
				}
				for b.stack.len() > i {
					b.stack.pop()
				}
				return false
			}
			if isHTML {
				b.forceHTMLMode = true
				return true
			}
		}
		return false

	default:
		return false
	}
}

func (b *Builder) popUntilHTMLOrIntegrationPoint() {
	for {
		r := b.current()
		if r == noRef {
			return
		}
		e := b.arena.get(r)
		if e.ns == domns.HTML || isHTMLIntegrationPoint(e) {
			return
		}
		b.stack.pop()
	}
}

func foreignBreakoutFont(attrs []token.Attr) bool {
	for _, a := range attrs {
		switch strings.ToLower(a.Name) {
		case "color", "face", "size":
			return true
		}
	}
	return false
}

func adjustSVGTagName(name string) string {
	if adj, ok := svgTagNameAdjustments[name]; ok {
		return adj
	}
	return name
}

type foreignAttrAdjustment struct {
	ns     domns.Namespace
	prefix string
	local  string
}

// adjustForeignAttrs applies SVG/MathML attribute casing and
// xlink:/xml:/xmlns namespace adjustment (spec.md §4.8), ported from
// the teacher's prepareForeignAttributes.
func (b *Builder) adjustForeignAttrs(ns domns.Namespace, attrs []token.Attr) []token.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]token.Attr, 0, len(attrs))
	for _, a := range attrs {
		name := a.Name
		lower := strings.ToLower(name)
		switch ns {
		case domns.MathML:
			if adj, ok := mathMLAttributeAdjustments[lower]; ok {
				name = adj
			}
		case domns.SVG:
			if adj, ok := svgAttributeAdjustments[lower]; ok {
				name = adj
			}
		}
		if fa, ok := foreignAttributeAdjustments[strings.ToLower(name)]; ok {
			out = append(out, token.Attr{Namespace: fa.ns.URI(), Prefix: fa.prefix, Name: fa.local, Value: a.Value})
			continue
		}
		out = append(out, token.Attr{Name: name, Value: a.Value})
	}
	return out
}

var svgTagNameAdjustments = map[string]string{
	"altglyph": "altGlyph", "altglyphdef": "altGlyphDef", "altglyphitem": "altGlyphItem",
	"animatecolor": "animateColor", "animatemotion": "animateMotion", "animatetransform": "animateTransform",
	"clippath": "clipPath", "feblend": "feBlend", "fecolormatrix": "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer", "fecomposite": "feComposite",
	"feconvolvematrix": "feConvolveMatrix", "fediffuselighting": "feDiffuseLighting",
	"fedisplacementmap": "feDisplacementMap", "fedistantlight": "feDistantLight",
	"feflood": "feFlood", "fefunca": "feFuncA", "fefuncb": "feFuncB", "fefuncg": "feFuncG",
	"fefuncr": "feFuncR", "fegaussianblur": "feGaussianBlur", "feimage": "feImage",
	"femerge": "feMerge", "femergenode": "feMergeNode", "femorphology": "feMorphology",
	"feoffset": "feOffset", "fepointlight": "fePointLight", "fespecularlighting": "feSpecularLighting",
	"fespotlight": "feSpotLight", "fetile": "feTile", "feturbulence": "feTurbulence",
	"foreignobject": "foreignObject", "glyphref": "glyphRef", "lineargradient": "linearGradient",
	"radialgradient": "radialGradient", "textpath": "textPath",
}

var svgAttributeAdjustments = map[string]string{
	"attributename": "attributeName", "attributetype": "attributeType",
	"basefrequency": "baseFrequency", "baseprofile": "baseProfile", "calcmode": "calcMode",
	"clippathunits": "clipPathUnits", "diffuseconstant": "diffuseConstant", "edgemode": "edgeMode",
	"filterunits": "filterUnits", "glyphref": "glyphRef", "gradienttransform": "gradientTransform",
	"gradientunits": "gradientUnits", "kernelmatrix": "kernelMatrix", "kernelunitlength": "kernelUnitLength",
	"keypoints": "keyPoints", "keysplines": "keySplines", "keytimes": "keyTimes",
	"lengthadjust": "lengthAdjust", "limitingconeangle": "limitingConeAngle",
	"markerheight": "markerHeight", "markerunits": "markerUnits", "markerwidth": "markerWidth",
	"maskcontentunits": "maskContentUnits", "maskunits": "maskUnits", "numoctaves": "numOctaves",
	"pathlength": "pathLength", "patterncontentunits": "patternContentUnits",
	"patterntransform": "patternTransform", "patternunits": "patternUnits",
	"pointsatx": "pointsAtX", "pointsaty": "pointsAtY", "pointsatz": "pointsAtZ",
	"preservealpha": "preserveAlpha", "preserveaspectratio": "preserveAspectRatio",
	"primitiveunits": "primitiveUnits", "refx": "refX", "refy": "refY",
	"repeatcount": "repeatCount", "repeatdur": "repeatDur", "requiredextensions": "requiredExtensions",
	"requiredfeatures": "requiredFeatures", "specularconstant": "specularConstant",
	"specularexponent": "specularExponent", "spreadmethod": "spreadMethod", "startoffset": "startOffset",
	"stddeviation": "stdDeviation", "stitchtiles": "stitchTiles", "surfacescale": "surfaceScale",
	"systemlanguage": "systemLanguage", "tablevalues": "tableValues", "targetx": "targetX",
	"targety": "targetY", "textlength": "textLength", "viewbox": "viewBox", "viewtarget": "viewTarget",
	"xchannelselector": "xChannelSelector", "ychannelselector": "yChannelSelector", "zoomandpan": "zoomAndPan",
}

var mathMLAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}

var foreignAttributeAdjustments = map[string]foreignAttrAdjustment{
	"xlink:actuate": {domns.XLink, "xlink", "actuate"},
	"xlink:arcrole": {domns.XLink, "xlink", "arcrole"},
	"xlink:href":    {domns.XLink, "xlink", "href"},
	"xlink:role":    {domns.XLink, "xlink", "role"},
	"xlink:show":    {domns.XLink, "xlink", "show"},
	"xlink:title":   {domns.XLink, "xlink", "title"},
	"xlink:type":    {domns.XLink, "xlink", "type"},
	"xml:lang":      {domns.XML, "xml", "lang"},
	"xml:space":     {domns.XML, "xml", "space"},
	"xmlns":         {domns.XMLNS, "", "xmlns"},
	"xmlns:xlink":   {domns.XMLNS, "xmlns", "xlink"},
}

var foreignBreakoutElements = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true, "dt": true,
	"em": true, "embed": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "head": true, "hr": true, "i": true, "img": true,
	"li": true, "listing": true, "menu": true, "meta": true, "nobr": true,
	"ol": true, "p": true, "pre": true, "ruby": true, "s": true, "small": true,
	"span": true, "strong": true, "strike": true, "sub": true, "sup": true,
	"table": true, "tt": true, "u": true, "ul": true, "var": true,
}
