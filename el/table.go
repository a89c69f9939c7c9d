package el

import (
	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

// Cell wraps a <td> or <th> element. Cells render as paired tags even while
// empty, and are the only children Row.Append accepts.
type Cell struct {
	el *element.Element
}

// Td creates a table data cell with optional inline content.
func Td(content ...string) Cell {
	return Cell{el: element.New("td", content...).ForceClose()}
}

// Th creates a table header cell with optional inline content.
func Th(content ...string) Cell {
	return Cell{el: element.New("th", content...).ForceClose()}
}

// Elem returns the underlying element, satisfying element.Node.
func (c Cell) Elem() *element.Element { return c.el }

// RowSpan sets the rowspan attribute. Zero is ignored.
func (c Cell) RowSpan(n uint) Cell {
	if n > 0 {
		c.el.SetAttrUint("rowspan", n)
	}
	return c
}

// ColSpan sets the colspan attribute. Zero is ignored.
func (c Cell) ColSpan(n uint) Cell {
	if n > 0 {
		c.el.SetAttrUint("colspan", n)
	}
	return c
}

// ID sets the id attribute.
func (c Cell) ID(v string) Cell {
	c.el.ID(v)
	return c
}

// Class sets the class attribute.
func (c Cell) Class(v string) Cell {
	c.el.Class(v)
	return c
}

// Attr sets an arbitrary attribute.
func (c Cell) Attr(name, value string) Cell {
	c.el.SetAttr(name, value)
	return c
}

// Append adds arbitrary children to the cell. Cells restrict nothing; the
// narrowing lives in Row and Table.
func (c Cell) Append(children ...element.Node) Cell {
	c.el.Append(children...)
	return c
}

// Row wraps a <tr> element and only accepts cells.
type Row struct {
	el *element.Element
}

// Tr creates a table row holding the given cells.
func Tr(cells ...Cell) Row {
	r := Row{el: element.New("tr")}
	return r.Append(cells...)
}

// Elem returns the underlying element, satisfying element.Node.
func (r Row) Elem() *element.Element { return r.el }

// Append adds cells to the row and returns the row.
func (r Row) Append(cells ...Cell) Row {
	for _, c := range cells {
		r.el.Append(c.el)
	}
	return r
}

// Class sets the class attribute.
func (r Row) Class(v string) Row {
	r.el.Class(v)
	return r
}

// Attr sets an arbitrary attribute.
func (r Row) Attr(name, value string) Row {
	r.el.SetAttr(name, value)
	return r
}

// Table wraps a <table> element and only accepts rows.
type Table struct {
	el *element.Element
}

// NewTable creates a table holding the given rows.
func NewTable(rows ...Row) Table {
	t := Table{el: element.New("table")}
	return t.Append(rows...)
}

// Elem returns the underlying element, satisfying element.Node.
func (t Table) Elem() *element.Element { return t.el }

// Append adds rows to the table and returns the table.
func (t Table) Append(rows ...Row) Table {
	for _, r := range rows {
		t.el.Append(r.el)
	}
	return t
}

// ID sets the id attribute.
func (t Table) ID(v string) Table {
	t.el.ID(v)
	return t
}

// Class sets the class attribute.
func (t Table) Class(v string) Table {
	t.el.Class(v)
	return t
}

// Attr sets an arbitrary attribute.
func (t Table) Attr(name, value string) Table {
	t.el.SetAttr(name, value)
	return t
}

// Caption creates a <caption> element. It is not a Row, so it attaches to a
// table through the underlying element: table.Elem().Append(el.Caption(...)).
func Caption(content ...string) *element.Element {
	return element.New("caption", content...)
}
