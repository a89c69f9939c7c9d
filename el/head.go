package el

import (
	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

// HeadItem is an element that belongs in a document head: a title, a meta
// declaration, a stylesheet or script reference, an inline style, or a base.
// Only the factories in this file produce HeadItems, which is what lets
// Head.Append reject body content at compile time.
type HeadItem struct {
	el *element.Element
}

// Elem returns the underlying element, satisfying element.Node.
func (h HeadItem) Elem() *element.Element { return h.el }

// Head wraps a <head> element and only accepts HeadItems.
type Head struct {
	el *element.Element
}

// NewHead creates an empty <head> builder. It renders as a paired tag even
// while empty.
func NewHead() Head {
	return Head{el: element.New("head").ForceClose()}
}

// HeadOf wraps an existing <head> element, typically the one pre-created by
// the document skeleton, so further appends stay head-scoped.
func HeadOf(e *element.Element) Head {
	return Head{el: e}
}

// Elem returns the underlying element, satisfying element.Node.
func (h Head) Elem() *element.Element { return h.el }

// Append adds head-scoped items and returns the builder.
func (h Head) Append(items ...HeadItem) Head {
	for _, item := range items {
		h.el.Append(item.el)
	}
	return h
}

// Title creates a <title> item.
func Title(content string) HeadItem {
	return HeadItem{el: element.New("title", content)}
}

// Style creates a <style> item holding inline CSS.
func Style(css string) HeadItem {
	return HeadItem{el: element.New("style", css)}
}

// Script creates a <script> item referencing an external source.
func Script(src string) HeadItem {
	return HeadItem{el: element.New("script").ForceClose().SetAttr("src", src)}
}

// ScriptInline creates a <script> item holding inline code. The code is
// emitted verbatim.
func ScriptInline(code string) HeadItem {
	return HeadItem{el: element.New("script", code)}
}

// Meta creates a named <meta> item.
func Meta(name, content string) HeadItem {
	return HeadItem{el: element.New("meta").SetAttr("name", name).SetAttr("content", content)}
}

// MetaCharset creates a charset <meta> item.
func MetaCharset(charset string) HeadItem {
	return HeadItem{el: element.New("meta").SetAttr("charset", charset)}
}

// MetaViewport creates the conventional responsive viewport <meta> item.
func MetaViewport() HeadItem {
	return Meta("viewport", "width=device-width, initial-scale=1")
}

// LinkRel creates a <link> item with the given relationship and target, and
// an optional type.
func LinkRel(rel, href string, typ ...string) HeadItem {
	e := element.New("link").SetAttr("rel", rel).SetAttr("href", href)
	if len(typ) > 0 {
		e.SetAttr("type", typ[0])
	}
	return HeadItem{el: e}
}

// Stylesheet creates a stylesheet <link> item.
func Stylesheet(href string) HeadItem {
	return LinkRel("stylesheet", href, "text/css")
}

// Base creates a <base> item, with an optional target.
func Base(href string, target ...string) HeadItem {
	e := element.New("base").SetAttr("href", href)
	if len(target) > 0 {
		e.SetAttr("target", target[0])
	}
	return HeadItem{el: e}
}
