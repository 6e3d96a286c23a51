package dom

import (
	"slices"
	"strings"

	"github.com/danielnarey/modular-ui/pkg/vnode"
)

// Common namespaces for SetNamespace.
const (
	SVGNamespace    = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
)

// Render compiles the element's accumulated state into a virtual node.
//
// The attribute list is assembled in a fixed order: the passthrough
// attributes as added, then an id attribute if one is set, then a single
// class attribute carrying the whole class list joined with spaces and
// trimmed. Style declarations pass through in insertion order, duplicates
// included. Listener bindings convert 1:1.
//
// The child list starts with a text node when the element has text. With
// keys installed, children are compiled as a keyed list, each child
// paired with its key by position; should the two lists disagree in
// length, the longer is truncated to the shorter. A non-empty namespace
// applies to the whole compiled subtree, except where a descendant set
// its own.
//
// Render is pure: it performs no I/O, never mutates the element, and
// equal element data always compiles to structurally equal nodes.
func (e Element) Render() *vnode.VNode {
	return e.render("")
}

func (e Element) render(inheritedNS string) *vnode.VNode {
	d := e.data

	ns := d.namespace
	if ns == "" {
		ns = inheritedNS
	}

	attrs := make([]vnode.Attr, 0, len(d.attrs)+2)
	attrs = append(attrs, d.attrs...)
	if d.id != "" {
		attrs = append(attrs, vnode.Attr{Key: "id", Value: d.id})
	}
	if len(d.classes) > 0 {
		attrs = append(attrs, vnode.Attr{
			Key:   "class",
			Value: strings.TrimSpace(strings.Join(d.classes, " ")),
		})
	}

	n := &vnode.VNode{
		Kind:      vnode.KindElement,
		Tag:       d.tag,
		Namespace: ns,
		Attrs:     attrs,
		Styles:    slices.Clone(d.styles),
		Listeners: slices.Clone(d.listeners),
	}

	var kids []*vnode.VNode
	if d.text != "" {
		kids = append(kids, vnode.NewText(d.text))
	}

	if len(d.keys) > 0 {
		n.Keyed = true
		pairs := len(d.keys)
		if len(d.children) < pairs {
			pairs = len(d.children)
		}
		for i := 0; i < pairs; i++ {
			c := renderChild(d.children[i], ns)
			keyed := *c
			keyed.Key = d.keys[i]
			kids = append(kids, &keyed)
		}
	} else {
		for _, ch := range d.children {
			kids = append(kids, renderChild(ch, ns))
		}
	}
	n.Children = kids

	return n
}

// renderChild compiles a pending child, or passes a compiled node through
// untouched.
func renderChild(c Child, inheritedNS string) *vnode.VNode {
	if c.Node != nil {
		return c.Node
	}
	return c.Element.render(inheritedNS)
}
