// Package el is the element catalogue: factory functions that create
// preconfigured elements from github.com/htmlsmith-dev/htmlsmith/pkg/element.
//
// Most factories return a plain *element.Element. The container builders
// (Head, Table, Row) and the form helpers (Input, Option, Cell) are thin
// wrapper types whose Append signatures only accept the child shapes those
// containers allow, so putting a paragraph inside a table row is a compile
// error rather than bad markup.
//
// Typical usage:
//
//	body.Append(
//	    el.H1("Inventory"),
//	    el.NewTable(
//	        el.Tr(el.Th("Tool"), el.Th("Qty")),
//	        el.Tr(el.Td("hammer"), el.Td("2")),
//	    ),
//	)
package el
