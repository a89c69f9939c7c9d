package el

import (
	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

// If returns elem when cond is true and nil otherwise. Append skips nil
// children, so conditional content can stay inline in a construction chain:
//
//	body.Append(el.H1("Report"), el.If(empty, el.P("Nothing to show")))
func If(cond bool, elem *element.Element) *element.Element {
	if cond {
		return elem
	}
	return nil
}

// IfElse returns ifTrue when cond is true and ifFalse otherwise.
func IfElse(cond bool, ifTrue, ifFalse *element.Element) *element.Element {
	if cond {
		return ifTrue
	}
	return ifFalse
}
