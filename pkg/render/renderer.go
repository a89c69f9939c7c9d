// Package render serializes element trees to indented HTML text.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

// DefaultIndent is the indentation unit emitted once per nesting level.
const DefaultIndent = "  "

// Config configures the serializer.
type Config struct {
	// Indent is the string emitted once per nesting level.
	// Defaults to two spaces if not specified.
	Indent string

	// Depth is the nesting level rendering starts at. The outermost element
	// is indented Depth times, its children Depth+1 times, and so on.
	Depth int
}

// Renderer serializes Element trees to indented HTML. Output depends only
// on the tree and the configuration: attributes are emitted in sorted key
// order, so the same tree always renders to the same bytes.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = DefaultIndent
	}
	return &Renderer{config: config}
}

// RenderToString renders an element tree to a string.
func (r *Renderer) RenderToString(e *element.Element) string {
	var buf bytes.Buffer
	_ = r.RenderToWriter(&buf, e)
	return buf.String()
}

// RenderToWriter streams an element tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, e *element.Element) error {
	return r.renderElement(w, e, r.config.Depth)
}

// String renders an element tree with the default configuration.
func String(e *element.Element) string {
	return NewRenderer(Config{}).RenderToString(e)
}

// Fprint renders an element tree to w with the default configuration.
func Fprint(w io.Writer, e *element.Element) error {
	return NewRenderer(Config{}).RenderToWriter(w, e)
}

// renderElement emits one element in three phases: opening tag, content and
// children, closing tag. A raw-text leaf emits a single indented line.
//
// The opening tag decides the element's shape. Inline content keeps the
// cursor on the opening line; children move it to the next line one level
// deeper; an empty element self-closes with "/>" unless it is marked
// force-closing, in which case the closing tag follows immediately.
func (r *Renderer) renderElement(w io.Writer, e *element.Element, depth int) error {
	if e == nil {
		return nil
	}

	if e.IsText() {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", e.Content()); err != nil {
			return err
		}
		return nil
	}

	if err := r.writeIndent(w, depth); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<%s", e.Tag()); err != nil {
		return err
	}
	for _, a := range e.Attrs() {
		if a.Value == "" {
			// Bare boolean attribute.
			if _, err := fmt.Fprintf(w, " %s", a.Key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, " %s=\"%s\"", a.Key, a.Value); err != nil {
			return err
		}
	}

	content := e.Content()
	children := e.Children()

	switch {
	case content != "":
		// Content continues inline on the opening line.
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
	case e.ForceClosing():
		// Opened to be closed even though empty. Takes precedence over the
		// children newline, so any children continue the opening line.
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
	case len(children) > 0:
		if _, err := io.WriteString(w, ">\n"); err != nil {
			return err
		}
	default:
		// Void form. No content, no children, no closing tag.
		_, err := io.WriteString(w, "/>\n")
		return err
	}

	if content != "" {
		if _, err := io.WriteString(w, content); err != nil {
			return err
		}
	}
	for _, child := range children {
		if err := r.renderElement(w, child, depth+1); err != nil {
			return err
		}
	}

	// The closing tag aligns with the opening tag only when children put
	// the cursor at the start of a new line.
	if len(children) > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "</%s>\n", e.Tag()); err != nil {
		return err
	}
	return nil
}

// writeIndent writes indentation for the given depth.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
