// Package htmlsmith builds HTML documents as element trees and serializes
// them to deterministic, indented markup.
//
// The package is a facade: the node model lives in pkg/element, the
// serializer in pkg/render, and the tag catalogue in el. Small programs can
// import htmlsmith alone:
//
//	doc := htmlsmith.NewDocument().Title("Hello")
//	doc.Body().Append(el.H1("Hello"), el.P("It works."))
//	fmt.Print(doc.String())
//
// Output is a pure function of the tree: attributes render in sorted key
// order and content passes through verbatim, unescaped.
package htmlsmith

import (
	"io"

	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
	"github.com/htmlsmith-dev/htmlsmith/pkg/render"
)

// Core types re-exported so small programs only import this package.
type (
	// Element is one node of a document tree.
	Element = element.Element
	// Node is anything that resolves to an *Element.
	Node = element.Node
	// Attr is a single rendered attribute.
	Attr = element.Attr
)

// New creates an element with the given tag and optional inline content.
func New(tag string, content ...string) *Element { return element.New(tag, content...) }

// Text creates a raw-text leaf holding the given text verbatim.
func Text(s string) *Element { return element.Text(s) }

// Textf creates a raw-text leaf from a format string.
func Textf(format string, args ...any) *Element { return element.Textf(format, args...) }

// String renders an element tree with the default two-space indentation.
func String(e *Element) string { return render.String(e) }

// Fprint renders an element tree to w with the default configuration.
func Fprint(w io.Writer, e *Element) error { return render.Fprint(w, e) }
