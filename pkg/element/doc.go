// Package element provides the node model for building HTML documents in
// memory before serializing them to indented markup.
//
// # Core Type
//
// Element is the fundamental building block: a tag, optional inline content,
// attributes, and owned children. An Element with an empty tag is a raw-text
// leaf. The Node interface is the seam through which typed wrappers (package
// el) participate in trees while restricting their own child shapes at
// compile time.
//
// # Building Trees
//
// Every mutator returns the receiver, so trees are assembled by chaining:
//
//	list := element.New("ul").Class("menu").
//		Append(element.New("li", "First")).
//		Append(element.New("li", "Second"))
//
// Append transfers ownership: once appended, a child belongs to its parent
// and must not be appended again or mutated through an old reference.
//
// # Serialization
//
// Rendering lives in package render. Attributes serialize in lexicographic
// key order (see Attrs), content is emitted verbatim without escaping, and
// empty elements self-close unless marked with ForceClose.
package element
