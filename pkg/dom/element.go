package dom

import (
	"slices"

	"github.com/danielnarey/modular-ui/pkg/vnode"
)

// Element is an opaque, immutable descriptor of one UI node under
// construction. The zero value is not usable; create one with New or a
// tag constructor.
type Element struct {
	data data
}

// data holds the pending node state. It is only ever reshaped through
// modify, which snapshots every slice before the transform runs.
type data struct {
	tag       string
	id        string
	classes   []string
	styles    []vnode.Style
	attrs     []vnode.Attr
	listeners []vnode.Listener
	text      string
	children  []Child
	keys      []string
	namespace string
}

// Child is one entry of an element's child list: either a pending Element
// compiled during Render, or an already-compiled node passed through
// as-is.
type Child struct {
	Element Element      // pending child; used when Node is nil
	Node    *vnode.VNode // already-compiled child
}

// IsCompiled returns true if this entry carries an already-compiled node.
func (c Child) IsCompiled() bool {
	return c.Node != nil
}

// Data is a read-only snapshot of an Element's accumulated state, for
// inspection and testing. All slices are copies.
type Data struct {
	Tag       string
	ID        string
	Classes   []string
	Styles    []vnode.Style
	Attrs     []vnode.Attr
	Listeners []vnode.Listener
	Text      string
	Children  []Child
	Keys      []string
	Namespace string
}

// New creates an empty Element for the given tag.
func New(tag string) Element {
	return Element{data: data{tag: tag}}
}

// modify applies a transform to a snapshot of the element's data and
// wraps the result in a new Element. Every builder operation goes through
// this seam; the snapshot guarantees the receiver is never aliased by the
// result.
func (e Element) modify(f func(d *data)) Element {
	d := e.data
	d.classes = slices.Clone(d.classes)
	d.styles = slices.Clone(d.styles)
	d.attrs = slices.Clone(d.attrs)
	d.listeners = slices.Clone(d.listeners)
	d.children = slices.Clone(d.children)
	d.keys = slices.Clone(d.keys)
	f(&d)
	return Element{data: d}
}

// Data returns a snapshot of the element's accumulated state.
func (e Element) Data() Data {
	return Data{
		Tag:       e.data.tag,
		ID:        e.data.id,
		Classes:   slices.Clone(e.data.classes),
		Styles:    slices.Clone(e.data.styles),
		Attrs:     slices.Clone(e.data.attrs),
		Listeners: slices.Clone(e.data.listeners),
		Text:      e.data.text,
		Children:  slices.Clone(e.data.children),
		Keys:      slices.Clone(e.data.keys),
		Namespace: e.data.namespace,
	}
}

// SetTag replaces the element's tag.
func (e Element) SetTag(tag string) Element {
	return e.modify(func(d *data) { d.tag = tag })
}

// SetID replaces the element's id. Last write wins; there is no list.
func (e Element) SetID(id string) Element {
	return e.modify(func(d *data) { d.id = id })
}

// SetNamespace marks the element, and the subtree compiled from it, as
// belonging to the given namespace (e.g. SVGNamespace). Empty means the
// default HTML namespace.
func (e Element) SetNamespace(ns string) Element {
	return e.modify(func(d *data) { d.namespace = ns })
}

// SetText replaces the element's text. Non-empty text is always compiled
// as the first child of the node.
func (e Element) SetText(text string) Element {
	return e.modify(func(d *data) { d.text = text })
}

// SetTextIf is SetText when cond is true, identity otherwise.
func (e Element) SetTextIf(cond bool, text string) Element {
	if !cond {
		return e
	}
	return e.SetText(text)
}

// AppendText concatenates onto the element's text.
func (e Element) AppendText(text string) Element {
	return e.modify(func(d *data) { d.text += text })
}

// AppendTextIf is AppendText when cond is true, identity otherwise.
func (e Element) AppendTextIf(cond bool, text string) Element {
	if !cond {
		return e
	}
	return e.AppendText(text)
}
