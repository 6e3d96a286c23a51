package vnode

import "github.com/danielnarey/modular-ui/pkg/decode"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// DispatchMode is the propagation policy of one listener binding.
type DispatchMode uint8

const (
	DispatchNormal          DispatchMode = iota // invoke handler, no propagation control
	DispatchStopPropagation                     // invoke handler, stop bubbling
	DispatchPreventDefault                      // invoke handler, suppress default action
	DispatchStopAndPrevent                      // both of the above
	DispatchCustom                              // handler decides per invocation
)

// String returns the string representation of the DispatchMode.
func (m DispatchMode) String() string {
	switch m {
	case DispatchNormal:
		return "Normal"
	case DispatchStopPropagation:
		return "StopPropagation"
	case DispatchPreventDefault:
		return "PreventDefault"
	case DispatchStopAndPrevent:
		return "StopAndPrevent"
	case DispatchCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute. Order within a VNode's attribute list is
// significant and preserved by the diff and the renderer.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Style is one inline style declaration. Duplicate keys are not merged;
// each declaration is emitted in source order.
type Style struct {
	Key   string
	Value string
}

// Listener is one compiled event binding.
type Listener struct {
	// Event is the event name without any "on" prefix (e.g. "click").
	Event string

	// Mode is the propagation policy applied when the event fires.
	Mode DispatchMode

	// Msg is the static message delivered for non-custom modes.
	Msg any

	// Custom computes the message and propagation flags at dispatch
	// time. Set only when Mode is DispatchCustom.
	Custom decode.Handler
}

// VNode is one node of the compiled tree.
type VNode struct {
	Kind      Kind
	Tag       string     // element tag name (e.g. "div")
	Namespace string     // empty means the default HTML namespace
	Attrs     []Attr     // ordered attribute list
	Styles    []Style    // ordered style declarations
	Listeners []Listener // ordered event bindings
	Children  []*VNode   // child nodes
	Keyed     bool       // children carry reconciliation keys
	Key       string     // this node's key within a keyed list
	Text      string     // for KindText
	HID       string     // hydration ID (assigned during HTML rendering)
}

// NewElement creates an element node.
func NewElement(tag string) *VNode {
	return &VNode{Kind: KindElement, Tag: tag}
}

// NewText creates a text node.
func NewText(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// IsInteractive returns true if this node has listener bindings and needs
// a HID when rendered.
func (v *VNode) IsInteractive() bool {
	return v != nil && v.Kind == KindElement && len(v.Listeners) > 0
}

// Equal reports structural equality of two trees under the renderer's
// rule: kind, tag, namespace, attribute and style lists (in order),
// listener bindings (event name and mode; handlers are not comparable),
// keys, text, and children must all match. HIDs are ignored.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Namespace != b.Namespace ||
		a.Text != b.Text || a.Keyed != b.Keyed || a.Key != b.Key {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Styles) != len(b.Styles) ||
		len(a.Listeners) != len(b.Listeners) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Styles {
		if a.Styles[i] != b.Styles[i] {
			return false
		}
	}
	for i := range a.Listeners {
		if a.Listeners[i].Event != b.Listeners[i].Event ||
			a.Listeners[i].Mode != b.Listeners[i].Mode {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
