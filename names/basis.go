package names

// The basis is the set of element local names, attribute local names,
// and foreign-content prefixes that the tree-construction rules name
// explicitly (the builder itself switches on strings, not on these
// IDs). It is assembled once, from the same vocabulary the
// teacher repo's internal/constants package hard-coded as string-keyed
// maps (elements.go, scopes.go, intern.go): void elements, special
// elements, formatting elements, table structure, integration points,
// SVG/MathML case-adjustment source and target names, and the small
// set of attribute names with adjustment rules.
var (
	Html, Head, Body, Title, Base, Link, Meta, Style, Script, Noscript,
	Template, Frameset, Frame, Noframes ID

	Div, P, Span, Address, Article, Aside, Blockquote, Center, Details,
	Dialog, Dir, Figcaption, Figure, Footer, Header, Hgroup, Listing,
	Main, Menu, Nav, Plaintext, Pre, Search, Section, Summary ID

	H1, H2, H3, H4, H5, H6 ID

	Ul, Ol, Li, Dl, Dt, Dd, Rb, Rp, Rt, Rtc, Ruby ID

	Table, Caption, Colgroup, Col, Tbody, Thead, Tfoot, Tr, Td, Th ID

	Form, Input, Button, Select, Option, Optgroup, Textarea, Label,
	Fieldset, Legend, Keygen ID

	Img, Image, Video, Audio, Source, Track, Canvas, Object, Applet,
	Marquee, Embed, Iframe, Param, Area, Bgsound, Basefont, Noembed ID

	A, B, Big, Code, Em, Font, I, Nobr, S, Small, Strike, Strong, Tt, U ID

	Br, Hr, Wbr, Xmp ID

	Svg, Math, AnnotationXML, ForeignObject, Desc, Mi, Mo, Mn, Ms, Mtext ID

	AttrClass, AttrID, AttrColor, AttrFace, AttrSize, AttrEncoding,
	AttrDefinitionurl, AttrDefinitionURL ID

	XlinkActuate, XlinkArcrole, XlinkHref, XlinkRole, XlinkShow,
	XlinkTitle, XlinkType, XmlLang, XmlSpace, Xmlns, XmlnsXlink ID
)

func init() {
	Html = register("html")
	Head = register("head")
	Body = register("body")
	Title = register("title")
	Base = register("base")
	Link = register("link")
	Meta = register("meta")
	Style = register("style")
	Script = register("script")
	Noscript = register("noscript")
	Template = register("template")
	Frameset = register("frameset")
	Frame = register("frame")
	Noframes = register("noframes")

	Div = register("div")
	P = register("p")
	Span = register("span")
	Address = register("address")
	Article = register("article")
	Aside = register("aside")
	Blockquote = register("blockquote")
	Center = register("center")
	Details = register("details")
	Dialog = register("dialog")
	Dir = register("dir")
	Figcaption = register("figcaption")
	Figure = register("figure")
	Footer = register("footer")
	Header = register("header")
	Hgroup = register("hgroup")
	Listing = register("listing")
	Main = register("main")
	Menu = register("menu")
	Nav = register("nav")
	Plaintext = register("plaintext")
	Pre = register("pre")
	Search = register("search")
	Section = register("section")
	Summary = register("summary")

	H1 = register("h1")
	H2 = register("h2")
	H3 = register("h3")
	H4 = register("h4")
	H5 = register("h5")
	H6 = register("h6")

	Ul = register("ul")
	Ol = register("ol")
	Li = register("li")
	Dl = register("dl")
	Dt = register("dt")
	Dd = register("dd")
	Rb = register("rb")
	Rp = register("rp")
	Rt = register("rt")
	Rtc = register("rtc")
	Ruby = register("ruby")

	Table = register("table")
	Caption = register("caption")
	Colgroup = register("colgroup")
	Col = register("col")
	Tbody = register("tbody")
	Thead = register("thead")
	Tfoot = register("tfoot")
	Tr = register("tr")
	Td = register("td")
	Th = register("th")

	Form = register("form")
	Input = register("input")
	Button = register("button")
	Select = register("select")
	Option = register("option")
	Optgroup = register("optgroup")
	Textarea = register("textarea")
	Label = register("label")
	Fieldset = register("fieldset")
	Legend = register("legend")
	Keygen = register("keygen")

	Img = register("img")
	Image = register("image")
	Video = register("video")
	Audio = register("audio")
	Source = register("source")
	Track = register("track")
	Canvas = register("canvas")
	Object = register("object")
	Applet = register("applet")
	Marquee = register("marquee")
	Embed = register("embed")
	Iframe = register("iframe")
	Param = register("param")
	Area = register("area")
	Bgsound = register("bgsound")
	Basefont = register("basefont")
	Noembed = register("noembed")

	A = register("a")
	B = register("b")
	Big = register("big")
	Code = register("code")
	Em = register("em")
	Font = register("font")
	I = register("i")
	Nobr = register("nobr")
	S = register("s")
	Small = register("small")
	Strike = register("strike")
	Strong = register("strong")
	Tt = register("tt")
	U = register("u")

	Br = register("br")
	Hr = register("hr")
	Wbr = register("wbr")
	Xmp = register("xmp")

	Svg = register("svg")
	Math = register("math")
	AnnotationXML = register("annotation-xml")
	ForeignObject = register("foreignObject")
	Desc = register("desc")
	Mi = register("mi")
	Mo = register("mo")
	Mn = register("mn")
	Ms = register("ms")
	Mtext = register("mtext")

	AttrClass = register("class")
	AttrID = register("id")
	AttrColor = register("color")
	AttrFace = register("face")
	AttrSize = register("size")
	AttrEncoding = register("encoding")
	AttrDefinitionurl = register("definitionurl")
	AttrDefinitionURL = register("definitionURL")

	XlinkActuate = register("xlink:actuate")
	XlinkArcrole = register("xlink:arcrole")
	XlinkHref = register("xlink:href")
	XlinkRole = register("xlink:role")
	XlinkShow = register("xlink:show")
	XlinkTitle = register("xlink:title")
	XlinkType = register("xlink:type")
	XmlLang = register("xml:lang")
	XmlSpace = register("xml:space")
	Xmlns = register("xmlns")
	XmlnsXlink = register("xmlns:xlink")

	// Void and raw-text names, registered again as a group; register
	// returns the existing ID for those that already have an exported
	// var above. mglyph and malignmark are registered here only, without
	// exported vars.
	for _, s := range []string{
		"area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr",
		"script", "style", "textarea", "title",
		"mglyph", "malignmark",
	} {
		register(s)
	}
}
