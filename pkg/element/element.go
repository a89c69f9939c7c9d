package element

import (
	"fmt"
	"sort"
	"strconv"
)

// Attr is a single attribute as emitted into markup: a name and a value.
// A zero Value renders as a bare boolean attribute.
type Attr struct {
	Key   string
	Value string
}

// Node is anything that resolves to an *Element. It is satisfied by
// *Element itself and by the typed wrappers in package el, which narrow
// their own Append signatures so that invalid child shapes fail to compile.
type Node interface {
	Elem() *Element
}

// Element is one node of an HTML document tree: a tag, optional inline
// content, a set of attributes, and owned children in append order. An
// Element with an empty tag is a raw-text leaf; it carries only content
// and renders as a single indented line.
//
// Content passes through to the output verbatim. Nothing is escaped.
//
// All mutators return the receiver, so trees are built by chaining:
//
//	row := element.New("tr").
//		Append(element.New("td", "a").ForceClose()).
//		Append(element.New("td", "b").ForceClose())
//
// Append transfers ownership of the child to the parent. After a child has
// been appended it belongs to that parent; appending it a second time or
// mutating it through a retained reference is a caller error.
type Element struct {
	tag        string
	content    string
	attrs      map[string]string
	children   []*Element
	forceClose bool
}

// New creates an element with the given tag and optional inline content.
func New(tag string, content ...string) *Element {
	e := &Element{tag: tag}
	if len(content) > 0 {
		e.content = content[0]
	}
	return e
}

// Text creates a raw-text leaf holding the given text verbatim.
func Text(s string) *Element {
	return &Element{content: s}
}

// Textf creates a raw-text leaf from a format string.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

// NewRoot creates a document root: an <html> element with empty <head> and
// <body> children already in place. Both skeleton children render as paired
// tags even while empty, so a fresh root serializes as
//
//	<html>
//	  <head></head>
//	  <body></body>
//	</html>
func NewRoot() *Element {
	return New("html").Append(
		New("head").ForceClose(),
		New("body").ForceClose(),
	)
}

// Elem returns the element itself, satisfying Node.
func (e *Element) Elem() *Element { return e }

// SetAttr sets an attribute, replacing any previous value for the same
// name. An empty value renders as a bare boolean attribute (` name` with no
// `="..."`). Raw-text leaves carry no attributes; on a leaf this is a no-op.
func (e *Element) SetAttr(name, value string) *Element {
	if e.tag == "" {
		return e
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	return e
}

// SetAttrUint sets an attribute to the decimal text form of value.
func (e *Element) SetAttrUint(name string, value uint) *Element {
	return e.SetAttr(name, strconv.FormatUint(uint64(value), 10))
}

// ID sets the id attribute.
func (e *Element) ID(v string) *Element { return e.SetAttr("id", v) }

// Class sets the class attribute.
func (e *Element) Class(v string) *Element { return e.SetAttr("class", v) }

// Title sets the title attribute.
func (e *Element) Title(v string) *Element { return e.SetAttr("title", v) }

// Style sets the style attribute. The value is emitted as-is; there is no
// style-object expansion.
func (e *Element) Style(v string) *Element { return e.SetAttr("style", v) }

// Append adds children to the element in order and returns the element.
// Ownership of each child moves to the parent. Nil children are skipped.
// Raw-text leaves have no children; on a leaf this is a no-op.
func (e *Element) Append(children ...Node) *Element {
	if e.tag == "" {
		return e
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		child := c.Elem()
		if child == nil {
			continue
		}
		e.children = append(e.children, child)
	}
	return e
}

// AppendText appends plain text as a raw-text leaf child.
func (e *Element) AppendText(s string) *Element {
	return e.Append(Text(s))
}

// AppendTextf appends formatted text as a raw-text leaf child.
func (e *Element) AppendTextf(format string, args ...any) *Element {
	return e.Append(Textf(format, args...))
}

// ForceClose marks the element as force-closing: when it has no content and
// no children it renders as <tag></tag> instead of the self-closing <tag/>.
func (e *Element) ForceClose() *Element {
	e.forceClose = true
	return e
}

// Tag returns the element's tag. It is empty for raw-text leaves.
func (e *Element) Tag() string { return e.tag }

// Content returns the element's inline content.
func (e *Element) Content() string { return e.content }

// IsText reports whether the element is a raw-text leaf.
func (e *Element) IsText() bool { return e.tag == "" }

// ForceClosing reports whether the element emits a closing tag even when it
// has no content and no children.
func (e *Element) ForceClosing() bool { return e.forceClose }

// Children returns the element's children in append order. The returned
// slice is the element's own backing store; callers must not modify it.
func (e *Element) Children() []*Element { return e.children }

// Attr returns the value of a single attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs returns the element's attributes sorted by key. The lexicographic
// order here is the one serialization contract for attribute output, so
// rendering the same tree always produces the same bytes.
func (e *Element) Attrs() []Attr {
	if len(e.attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]Attr, len(keys))
	for i, k := range keys {
		attrs[i] = Attr{Key: k, Value: e.attrs[k]}
	}
	return attrs
}
