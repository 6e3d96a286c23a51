package dom

import "github.com/danielnarey/modular-ui/pkg/vnode"

// AddStyle appends one style declaration. Duplicate keys are kept as
// distinct declarations in insertion order; a later key never overrides
// an earlier one here (cascade rules of the rendering target decide).
func (e Element) AddStyle(key, value string) Element {
	return e.modify(func(d *data) {
		d.styles = append(d.styles, vnode.Style{Key: key, Value: value})
	})
}

// AddStyleIf is AddStyle when cond is true, identity otherwise.
func (e Element) AddStyleIf(cond bool, key, value string) Element {
	if !cond {
		return e
	}
	return e.AddStyle(key, value)
}

// AddStyleList appends a whole declaration list, preserving its order.
func (e Element) AddStyleList(styles []vnode.Style) Element {
	return e.modify(func(d *data) { d.styles = append(d.styles, styles...) })
}

// AddStyleListIf is AddStyleList when cond is true, identity otherwise.
func (e Element) AddStyleListIf(cond bool, styles []vnode.Style) Element {
	if !cond {
		return e
	}
	return e.AddStyleList(styles)
}

// RemoveStyle deletes every declaration whose key matches, regardless of
// value, preserving the relative order of the remainder.
func (e Element) RemoveStyle(key string) Element {
	return e.modify(func(d *data) {
		kept := d.styles[:0]
		for _, s := range d.styles {
			if s.Key != key {
				kept = append(kept, s)
			}
		}
		d.styles = kept
	})
}

// ReplaceStyleList discards the current declaration list and installs
// styles verbatim.
func (e Element) ReplaceStyleList(styles []vnode.Style) Element {
	return e.modify(func(d *data) {
		d.styles = append([]vnode.Style(nil), styles...)
	})
}
