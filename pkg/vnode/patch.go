package vnode

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = iota + 1 // update text content
	PatchSetAttr                        // set/update attribute
	PatchRemoveAttr                     // remove attribute
	PatchSetStyle                       // set/update style declaration
	PatchRemoveStyle                    // remove style declaration
	PatchInsertNode                     // insert new node
	PatchRemoveNode                     // remove node
	PatchMoveNode                       // move node to new position
	PatchReplaceNode                    // replace node entirely
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchSetStyle:
		return "SetStyle"
	case PatchRemoveStyle:
		return "RemoveStyle"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// Patch represents a single tree operation to apply.
type Patch struct {
	Op       PatchOp
	HID      string // target node's hydration ID
	Key      string // attribute or style key
	Value    string // new value
	Node     *VNode // for InsertNode/ReplaceNode
	Index    int    // insert position
	ParentID string // parent for InsertNode/MoveNode
}
