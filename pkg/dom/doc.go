// Package dom provides an immutable, declarative builder for UI element
// descriptors and the compile step that materializes them into a virtual
// node tree.
//
// # Building
//
// An Element is created for a tag and piped through transformation
// methods, each returning a new Element with one field updated:
//
//	view := dom.Div().
//	    AddClass("container").
//	    AddStyle("maxWidth", "500px").
//	    AppendChild(dom.H1().SetText("Title")).
//	    AppendChild(dom.Button().SetText("Go").On("click", Submit{}))
//
// No method mutates its receiver; builder chains may be constructed on
// any number of goroutines independently.
//
// # Conditionals
//
// Every mutator has an If variant gated on a boolean, where false is the
// identity transform:
//
//	card.AddClassIf(selected, "card--selected")
//
// # Compiling
//
// Render compiles the accumulated state into a *vnode.VNode: attribute
// ordering (passthrough attributes, then id, then the joined class list),
// style declarations in insertion order without deduplication, listener
// bindings with their dispatch modes, and the child list with text first
// and keyed/unkeyed assembly.
package dom
