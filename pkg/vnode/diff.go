package vnode

// Diff compares two trees and returns the patches needed to transform
// prev into next.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches. parentHID is the
// HID of the enclosing element, used for text patches that don't carry
// their own HID.
func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by the parent via InsertNode).
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentHID, patches)
	case KindElement:
		diffElement(prev, next, patches)
	}
}

// diffText compares text nodes. parentHID is used because text nodes
// don't carry their own HID; the host updates the parent's text content.
func diffText(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		targetHID := prev.HID
		if targetHID == "" {
			targetHID = parentHID
		}
		if targetHID != "" {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				HID:   targetHID,
				Value: next.Text,
			})
		}
	}
}

// diffElement compares element nodes.
func diffElement(prev, next *VNode, patches *[]Patch) {
	// A tag or namespace change replaces the entire node.
	if prev.Tag != next.Tag || prev.Namespace != next.Namespace {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID

	diffAttrs(prev, next, patches)
	diffStyles(prev, next, patches)
	diffChildren(prev, next, prev.HID, patches)
}

// diffAttrs compares and patches attribute lists. Attribute order matters
// for rendering, but for patching both lists collapse to key -> effective
// value, where a later duplicate wins.
func diffAttrs(prev, next *VNode, patches *[]Patch) {
	prevMap := attrMap(prev.Attrs)
	nextMap := attrMap(next.Attrs)

	for key, prevVal := range prevMap {
		nextVal, exists := nextMap[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		} else if prevVal != nextVal {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: nextVal,
			})
		}
	}

	for key, nextVal := range nextMap {
		if _, exists := prevMap[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: nextVal,
			})
		}
	}
}

// diffStyles compares and patches style declarations. Duplicate keys are
// preserved at render time, but the effective value of a key is the last
// declaration, which is what a patch targets.
func diffStyles(prev, next *VNode, patches *[]Patch) {
	prevMap := styleMap(prev.Styles)
	nextMap := styleMap(next.Styles)

	for key, prevVal := range prevMap {
		nextVal, exists := nextMap[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveStyle,
				HID: prev.HID,
				Key: key,
			})
		} else if prevVal != nextVal {
			*patches = append(*patches, Patch{
				Op:    PatchSetStyle,
				HID:   prev.HID,
				Key:   key,
				Value: nextVal,
			})
		}
	}

	for key, nextVal := range nextMap {
		if _, exists := prevMap[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetStyle,
				HID:   prev.HID,
				Key:   key,
				Value: nextVal,
			})
		}
	}
}

func attrMap(attrs []Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func styleMap(styles []Style) map[string]string {
	m := make(map[string]string, len(styles))
	for _, s := range styles {
		m[s.Key] = s.Value
	}
	return m
}

// diffChildren compares and patches child lists. Keyed reconciliation is
// used when either side carries keys.
func diffChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev.Keyed || next.Keyed {
		diffKeyedChildren(prev, prev.Children, next.Children, parentHID, patches)
	} else {
		diffPositionalChildren(prev, prev.Children, next.Children, parentHID, patches)
	}
}

// diffPositionalChildren matches children by index.
func diffPositionalChildren(parent *VNode, prev, next []*VNode, parentHID string, patches *[]Patch) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    i,
				Node:     nextChild,
			})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		default:
			diff(prevChild, nextChild, parentHID, patches)
		}
	}
}

// diffKeyedChildren matches children by key so reorders preserve node
// identity.
func diffKeyedChildren(parent *VNode, prev, next []*VNode, parentHID string, patches *[]Patch) {
	prevKeyIdx := make(map[string]int)
	for i, child := range prev {
		if child != nil && child.Key != "" {
			prevKeyIdx[child.Key] = i
		}
	}

	matched := make(map[int]bool)

	for nextIdx, nextChild := range next {
		if nextChild == nil {
			continue
		}
		key := nextChild.Key

		if key == "" {
			// Unkeyed node in a keyed list is always an insert.
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			continue
		}

		prevIdx, exists := prevKeyIdx[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			continue
		}

		matched[prevIdx] = true
		prevChild := prev[prevIdx]

		if prevIdx != nextIdx {
			*patches = append(*patches, Patch{
				Op:       PatchMoveNode,
				HID:      prevChild.HID,
				ParentID: parent.HID,
				Index:    nextIdx,
			})
		}

		diff(prevChild, nextChild, parentHID, patches)
	}

	for i, prevChild := range prev {
		if prevChild != nil && !matched[i] {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		}
	}
}
