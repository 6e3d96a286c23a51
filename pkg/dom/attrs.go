package dom

import "github.com/danielnarey/modular-ui/pkg/vnode"

// AddAttr appends one attribute descriptor. Attributes are passthrough:
// the builder does not interpret them. Empty attributes are ignored.
func (e Element) AddAttr(a vnode.Attr) Element {
	if a.IsEmpty() {
		return e
	}
	return e.modify(func(d *data) { d.attrs = append(d.attrs, a) })
}

// AddAttrIf is AddAttr when cond is true, identity otherwise.
func (e Element) AddAttrIf(cond bool, a vnode.Attr) Element {
	if !cond {
		return e
	}
	return e.AddAttr(a)
}

// AddAttrList appends a whole attribute list, preserving its order and
// skipping empty entries.
func (e Element) AddAttrList(attrs []vnode.Attr) Element {
	return e.modify(func(d *data) {
		for _, a := range attrs {
			if !a.IsEmpty() {
				d.attrs = append(d.attrs, a)
			}
		}
	})
}

// AddAttrListIf is AddAttrList when cond is true, identity otherwise.
func (e Element) AddAttrListIf(cond bool, attrs []vnode.Attr) Element {
	if !cond {
		return e
	}
	return e.AddAttrList(attrs)
}

// PrependAttr adds one attribute to the front of the attribute list.
func (e Element) PrependAttr(a vnode.Attr) Element {
	if a.IsEmpty() {
		return e
	}
	return e.modify(func(d *data) {
		d.attrs = append([]vnode.Attr{a}, d.attrs...)
	})
}

// PrependAttrList adds a whole attribute list to the front, preserving
// its order.
func (e Element) PrependAttrList(attrs []vnode.Attr) Element {
	return e.modify(func(d *data) {
		front := make([]vnode.Attr, 0, len(attrs)+len(d.attrs))
		for _, a := range attrs {
			if !a.IsEmpty() {
				front = append(front, a)
			}
		}
		d.attrs = append(front, d.attrs...)
	})
}

// ReplaceAttrList discards the current attribute list and installs attrs
// verbatim (minus empty entries).
func (e Element) ReplaceAttrList(attrs []vnode.Attr) Element {
	return e.modify(func(d *data) {
		d.attrs = d.attrs[:0]
		for _, a := range attrs {
			if !a.IsEmpty() {
				d.attrs = append(d.attrs, a)
			}
		}
	})
}
