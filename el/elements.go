package el

import (
	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

// Document sections

// Body creates a <body> element. It renders as a paired tag even while
// empty, matching the document skeleton.
func Body() *element.Element { return element.New("body").ForceClose() }

// Header creates a <header> element.
func Header() *element.Element { return element.New("header") }

// Footer creates a <footer> element.
func Footer() *element.Element { return element.New("footer") }

// Nav creates a <nav> element.
func Nav() *element.Element { return element.New("nav") }

// Main creates a <main> element.
func Main() *element.Element { return element.New("main") }

// Section creates a <section> element.
func Section() *element.Element { return element.New("section") }

// Article creates an <article> element.
func Article() *element.Element { return element.New("article") }

// Aside creates an <aside> element.
func Aside() *element.Element { return element.New("aside") }

// Text content

// Div creates a <div> element with optional inline content.
func Div(content ...string) *element.Element { return element.New("div", content...) }

// P creates a <p> element with optional inline content.
func P(content ...string) *element.Element { return element.New("p", content...) }

// Span creates a <span> element with optional inline content.
func Span(content ...string) *element.Element { return element.New("span", content...) }

// H1 creates an <h1> element.
func H1(content ...string) *element.Element { return element.New("h1", content...) }

// H2 creates an <h2> element.
func H2(content ...string) *element.Element { return element.New("h2", content...) }

// H3 creates an <h3> element.
func H3(content ...string) *element.Element { return element.New("h3", content...) }

// H4 creates an <h4> element.
func H4(content ...string) *element.Element { return element.New("h4", content...) }

// H5 creates an <h5> element.
func H5(content ...string) *element.Element { return element.New("h5", content...) }

// H6 creates an <h6> element.
func H6(content ...string) *element.Element { return element.New("h6", content...) }

// Pre creates a <pre> element.
func Pre(content ...string) *element.Element { return element.New("pre", content...) }

// Code creates a <code> element.
func Code(content ...string) *element.Element { return element.New("code", content...) }

// Blockquote creates a <blockquote> element.
func Blockquote(content ...string) *element.Element { return element.New("blockquote", content...) }

// Br creates a <br/> line break.
func Br() *element.Element { return element.New("br") }

// Hr creates an <hr/> rule.
func Hr() *element.Element { return element.New("hr") }

// Inline semantics

// B creates a <b> element.
func B(content ...string) *element.Element { return element.New("b", content...) }

// I creates an <i> element.
func I(content ...string) *element.Element { return element.New("i", content...) }

// Strong creates a <strong> element.
func Strong(content ...string) *element.Element { return element.New("strong", content...) }

// Em creates an <em> element.
func Em(content ...string) *element.Element { return element.New("em", content...) }

// Small creates a <small> element.
func Small(content ...string) *element.Element { return element.New("small", content...) }

// Mark creates a <mark> element.
func Mark(content ...string) *element.Element { return element.New("mark", content...) }

// Time creates a <time> element with a datetime attribute.
func Time(content, datetime string) *element.Element {
	return element.New("time", content).SetAttr("datetime", datetime)
}

// Links and media

// A creates an <a> element pointing at href, with optional inline content.
func A(href string, content ...string) *element.Element {
	return element.New("a", content...).SetAttr("href", href)
}

// Img creates an <img/> element. Width and height, when wanted, are set by
// chaining SetAttrUint.
func Img(src, alt string) *element.Element {
	return element.New("img").SetAttr("src", src).SetAttr("alt", alt)
}

// Figure creates a <figure> element.
func Figure() *element.Element { return element.New("figure") }

// FigCaption creates a <figcaption> element.
func FigCaption(content ...string) *element.Element { return element.New("figcaption", content...) }

// Lists

// Ul creates an unordered list.
func Ul() *element.Element { return element.New("ul") }

// Ol creates an ordered list.
func Ol() *element.Element { return element.New("ol") }

// Li creates a list item with optional inline content.
func Li(content ...string) *element.Element { return element.New("li", content...) }

// Interactive

// Details creates a <details> element, opened when open is true.
func Details(open ...bool) *element.Element {
	e := element.New("details")
	if len(open) > 0 && open[0] {
		e.SetAttr("open", "")
	}
	return e
}

// Summary creates a <summary> element for use inside Details.
func Summary(content ...string) *element.Element { return element.New("summary", content...) }
