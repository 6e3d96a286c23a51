// Package vnode defines the virtual node tree produced by compiling
// elements, together with structural equality, event dispatch, and the
// diff engine that turns two trees into a minimal patch list.
//
// # Core Types
//
// VNode represents one node: an element with an ordered attribute list,
// ordered style declarations, listener bindings, and children, or a plain
// text node. Child lists are either positional or keyed; keyed lists pair
// every child with a stable identity string so the diff can reorder nodes
// without destroying them.
//
// # Ordering
//
// Attribute and style order is significant and preserved exactly as
// compiled. Duplicate style keys are legal and kept as distinct
// declarations in source order.
//
// # Diffing
//
// Diff compares two trees and returns Patch operations. When either
// child list is keyed, reconciliation matches children by key; otherwise
// children are matched by position.
package vnode
