package htmlsmith

import (
	"io"

	"github.com/htmlsmith-dev/htmlsmith/el"
	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
	"github.com/htmlsmith-dev/htmlsmith/pkg/render"
)

// Doctype is emitted before the root element of every document.
const Doctype = "<!DOCTYPE html>\n"

// Document wraps the standard html/head/body skeleton. The head is typed so
// only head-scoped items can land in it; the body accepts any node. Both
// sections render with a closing tag even while empty.
type Document struct {
	root *element.Element
	head el.Head
	body *element.Element
}

// NewDocument creates a document with an empty head and body.
func NewDocument() *Document {
	root := element.NewRoot()
	kids := root.Children()
	return &Document{
		root: root,
		head: el.HeadOf(kids[0]),
		body: kids[1],
	}
}

// Root returns the underlying <html> element.
func (d *Document) Root() *element.Element { return d.root }

// Head returns the typed head section.
func (d *Document) Head() el.Head { return d.head }

// Body returns the <body> element.
func (d *Document) Body() *element.Element { return d.body }

// Title sets the document title.
func (d *Document) Title(title string) *Document {
	d.head.Append(el.Title(title))
	return d
}

// Charset declares the document character set.
func (d *Document) Charset(charset string) *Document {
	d.head.Append(el.MetaCharset(charset))
	return d
}

// Viewport adds the conventional responsive viewport declaration.
func (d *Document) Viewport() *Document {
	d.head.Append(el.MetaViewport())
	return d
}

// Meta adds a named meta declaration to the head.
func (d *Document) Meta(name, content string) *Document {
	d.head.Append(el.Meta(name, content))
	return d
}

// Stylesheet links an external stylesheet.
func (d *Document) Stylesheet(href string) *Document {
	d.head.Append(el.Stylesheet(href))
	return d
}

// Script references an external script from the head.
func (d *Document) Script(src string) *Document {
	d.head.Append(el.Script(src))
	return d
}

// String renders the document, doctype included, with the default
// configuration.
func (d *Document) String() string {
	return Doctype + render.String(d.root)
}

// Render writes the document, doctype included, with the default
// configuration.
func (d *Document) Render(w io.Writer) error {
	return d.RenderWith(w, render.NewRenderer(render.Config{}))
}

// RenderWith writes the document using a custom renderer.
func (d *Document) RenderWith(w io.Writer, r *render.Renderer) error {
	if _, err := io.WriteString(w, Doctype); err != nil {
		return err
	}
	return r.RenderToWriter(w, d.root)
}
