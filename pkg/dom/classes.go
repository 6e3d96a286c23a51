package dom

// AddClass appends one class to the end of the class list. Duplicates are
// kept; there is no implicit dedup.
func (e Element) AddClass(class string) Element {
	return e.modify(func(d *data) { d.classes = append(d.classes, class) })
}

// AddClassIf is AddClass when cond is true, identity otherwise.
func (e Element) AddClassIf(cond bool, class string) Element {
	if !cond {
		return e
	}
	return e.AddClass(class)
}

// AddClassList appends a whole class list, preserving its order.
func (e Element) AddClassList(classes []string) Element {
	return e.modify(func(d *data) { d.classes = append(d.classes, classes...) })
}

// AddClassListIf is AddClassList when cond is true, identity otherwise.
func (e Element) AddClassListIf(cond bool, classes []string) Element {
	if !cond {
		return e
	}
	return e.AddClassList(classes)
}

// RemoveClass deletes every occurrence of class, preserving the relative
// order of the remainder.
func (e Element) RemoveClass(class string) Element {
	return e.modify(func(d *data) {
		kept := d.classes[:0]
		for _, c := range d.classes {
			if c != class {
				kept = append(kept, c)
			}
		}
		d.classes = kept
	})
}

// ReplaceClassList discards the current class list and installs classes
// verbatim.
func (e Element) ReplaceClassList(classes []string) Element {
	return e.modify(func(d *data) {
		d.classes = append([]string(nil), classes...)
	})
}
