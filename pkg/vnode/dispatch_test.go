package vnode

import (
	"errors"
	"testing"

	"github.com/danielnarey/modular-ui/pkg/decode"
)

func TestDispatchModes(t *testing.T) {
	tests := []struct {
		name        string
		mode        DispatchMode
		wantStop    bool
		wantPrevent bool
	}{
		{"normal", DispatchNormal, false, false},
		{"stop propagation", DispatchStopPropagation, true, false},
		{"prevent default", DispatchPreventDefault, false, true},
		{"stop and prevent", DispatchStopAndPrevent, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &VNode{Kind: KindElement, Tag: "button",
				Listeners: []Listener{{Event: "click", Mode: tt.mode, Msg: "clicked"}}}

			d, err := n.Dispatch("click", nil)
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if len(d.Msgs) != 1 || d.Msgs[0] != "clicked" {
				t.Errorf("Msgs = %v, want [clicked]", d.Msgs)
			}
			if d.StopPropagation != tt.wantStop {
				t.Errorf("StopPropagation = %v, want %v", d.StopPropagation, tt.wantStop)
			}
			if d.PreventDefault != tt.wantPrevent {
				t.Errorf("PreventDefault = %v, want %v", d.PreventDefault, tt.wantPrevent)
			}
		})
	}
}

func TestDispatchCustom(t *testing.T) {
	n := &VNode{Kind: KindElement, Tag: "input",
		Listeners: []Listener{{
			Event:  "input",
			Mode:   DispatchCustom,
			Custom: decode.Value(func(s string) any { return "got:" + s }),
		}}}

	d, err := n.Dispatch("input", decode.Target{"value": "abc123"})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(d.Msgs) != 1 || d.Msgs[0] != "got:abc123" {
		t.Errorf("Msgs = %v, want [got:abc123]", d.Msgs)
	}
	if !d.StopPropagation {
		t.Error("input binding should stop propagation")
	}
}

func TestDispatchCustomDecodeFailure(t *testing.T) {
	n := &VNode{Kind: KindElement, Tag: "input",
		Listeners: []Listener{{
			Event:  "input",
			Mode:   DispatchCustom,
			Custom: decode.Value(func(s string) any { return s }),
		}}}

	_, err := n.Dispatch("input", decode.Target{})
	if !errors.Is(err, decode.ErrMissingField) {
		t.Errorf("Dispatch() error = %v, want ErrMissingField", err)
	}
}

func TestDispatchMultipleListenersAllFire(t *testing.T) {
	n := &VNode{Kind: KindElement, Tag: "div",
		Listeners: []Listener{
			{Event: "click", Mode: DispatchNormal, Msg: "first"},
			{Event: "mouseover", Mode: DispatchNormal, Msg: "other"},
			{Event: "click", Mode: DispatchStopPropagation, Msg: "second"},
		}}

	d, err := n.Dispatch("click", nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(d.Msgs) != 2 || d.Msgs[0] != "first" || d.Msgs[1] != "second" {
		t.Errorf("Msgs = %v, want [first second] in registration order", d.Msgs)
	}
	if !d.StopPropagation {
		t.Error("flags should accumulate across listeners")
	}
}

func TestDispatchNoMatch(t *testing.T) {
	n := &VNode{Kind: KindElement, Tag: "div",
		Listeners: []Listener{{Event: "click", Mode: DispatchNormal, Msg: "x"}}}

	d, err := n.Dispatch("keydown", nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(d.Msgs) != 0 {
		t.Errorf("Msgs = %v, want none", d.Msgs)
	}
}

func TestDispatchNilNode(t *testing.T) {
	var n *VNode
	d, err := n.Dispatch("click", nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(d.Msgs) != 0 {
		t.Errorf("Msgs = %v, want none", d.Msgs)
	}
}
