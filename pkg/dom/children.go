package dom

import "github.com/danielnarey/modular-ui/pkg/vnode"

// KeyedChild pairs a child with the stable identity string used for
// keyed reconciliation.
type KeyedChild struct {
	Key   string
	Child Element
}

// Child lists are either keyed or unkeyed, never both. The unkeyed
// mutators below drop any keys already installed, switching the element
// back to unkeyed mode; SetKeyedChildren replaces children and keys
// atomically so their lengths always agree.

// AppendChild adds a pending child element to the end of the child list.
func (e Element) AppendChild(child Element) Element {
	return e.modify(func(d *data) {
		d.keys = nil
		d.children = append(d.children, Child{Element: child})
	})
}

// AppendChildIf is AppendChild when cond is true, identity otherwise.
func (e Element) AppendChildIf(cond bool, child Element) Element {
	if !cond {
		return e
	}
	return e.AppendChild(child)
}

// AppendChildList adds pending child elements to the end of the child
// list, preserving their order.
func (e Element) AppendChildList(children []Element) Element {
	return e.modify(func(d *data) {
		d.keys = nil
		for _, c := range children {
			d.children = append(d.children, Child{Element: c})
		}
	})
}

// AppendChildListIf is AppendChildList when cond is true, identity
// otherwise.
func (e Element) AppendChildListIf(cond bool, children []Element) Element {
	if !cond {
		return e
	}
	return e.AppendChildList(children)
}

// PrependChild adds a pending child element to the front of the child
// list.
func (e Element) PrependChild(child Element) Element {
	return e.modify(func(d *data) {
		d.keys = nil
		d.children = append([]Child{{Element: child}}, d.children...)
	})
}

// PrependChildIf is PrependChild when cond is true, identity otherwise.
func (e Element) PrependChildIf(cond bool, child Element) Element {
	if !cond {
		return e
	}
	return e.PrependChild(child)
}

// PrependChildList adds pending child elements to the front of the child
// list, preserving their order.
func (e Element) PrependChildList(children []Element) Element {
	return e.modify(func(d *data) {
		d.keys = nil
		front := make([]Child, 0, len(children)+len(d.children))
		for _, c := range children {
			front = append(front, Child{Element: c})
		}
		d.children = append(front, d.children...)
	})
}

// ReplaceChildList discards the current child list (and any keys) and
// installs children verbatim.
func (e Element) ReplaceChildList(children []Element) Element {
	return e.modify(func(d *data) {
		d.keys = nil
		d.children = make([]Child, 0, len(children))
		for _, c := range children {
			d.children = append(d.children, Child{Element: c})
		}
	})
}

// AppendNode adds an already-compiled node to the end of the child list.
func (e Element) AppendNode(node *vnode.VNode) Element {
	if node == nil {
		return e
	}
	return e.modify(func(d *data) {
		d.keys = nil
		d.children = append(d.children, Child{Node: node})
	})
}

// AppendNodeList adds already-compiled nodes to the end of the child
// list, preserving their order and skipping nils.
func (e Element) AppendNodeList(nodes []*vnode.VNode) Element {
	return e.modify(func(d *data) {
		d.keys = nil
		for _, n := range nodes {
			if n != nil {
				d.children = append(d.children, Child{Node: n})
			}
		}
	})
}

// SetKeyedChildren replaces the child list and the key list atomically,
// switching the element to keyed mode. Each child is paired with its key
// by position. An empty list switches back to unkeyed mode.
func (e Element) SetKeyedChildren(children []KeyedChild) Element {
	return e.modify(func(d *data) {
		d.children = make([]Child, 0, len(children))
		d.keys = make([]string, 0, len(children))
		for _, kc := range children {
			d.children = append(d.children, Child{Element: kc.Child})
			d.keys = append(d.keys, kc.Key)
		}
		if len(children) == 0 {
			d.keys = nil
		}
	})
}

// SetKeyedChildrenIf is SetKeyedChildren when cond is true, identity
// otherwise.
func (e Element) SetKeyedChildrenIf(cond bool, children []KeyedChild) Element {
	if !cond {
		return e
	}
	return e.SetKeyedChildren(children)
}
