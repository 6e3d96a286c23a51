package dom

import (
	"github.com/danielnarey/modular-ui/pkg/decode"
	"github.com/danielnarey/modular-ui/pkg/vnode"
)

// modifiedMsg wraps a message with propagation flags set at bind time.
// Modifiers compose: PreventDefault(StopPropagation(msg)).
type modifiedMsg struct {
	msg     any
	stop    bool
	prevent bool
}

// StopPropagation marks a message so its binding stops the event from
// bubbling further.
//
//	el.On("click", dom.StopPropagation(Clicked{}))
func StopPropagation(msg any) any {
	if m, ok := msg.(modifiedMsg); ok {
		m.stop = true
		return m
	}
	return modifiedMsg{msg: msg, stop: true}
}

// PreventDefault marks a message so its binding suppresses the browser's
// default action for the event.
//
//	el.On("submit", dom.PreventDefault(Submitted{}))
func PreventDefault(msg any) any {
	if m, ok := msg.(modifiedMsg); ok {
		m.prevent = true
		return m
	}
	return modifiedMsg{msg: msg, prevent: true}
}

// bindingFor resolves a possibly-modified message into a listener.
func bindingFor(event string, msg any) vnode.Listener {
	m, ok := msg.(modifiedMsg)
	if !ok {
		return vnode.Listener{Event: event, Mode: vnode.DispatchNormal, Msg: msg}
	}
	mode := vnode.DispatchNormal
	switch {
	case m.stop && m.prevent:
		mode = vnode.DispatchStopAndPrevent
	case m.stop:
		mode = vnode.DispatchStopPropagation
	case m.prevent:
		mode = vnode.DispatchPreventDefault
	}
	return vnode.Listener{Event: event, Mode: mode, Msg: m.msg}
}

// EventBinding pairs an event name with the message its listener
// delivers, for the list variants of On.
type EventBinding struct {
	Event string
	Msg   any
}

// On registers a listener for the event name, delivering msg when the
// event fires. Wrap msg with StopPropagation or PreventDefault to control
// propagation at bind time. Registering the same event name repeatedly
// retains every binding; all of them fire, in registration order.
func (e Element) On(event string, msg any) Element {
	return e.modify(func(d *data) {
		d.listeners = append(d.listeners, bindingFor(event, msg))
	})
}

// OnIf is On when cond is true, identity otherwise.
func (e Element) OnIf(cond bool, event string, msg any) Element {
	if !cond {
		return e
	}
	return e.On(event, msg)
}

// OnList registers a whole list of bindings, preserving their order.
func (e Element) OnList(bindings []EventBinding) Element {
	return e.modify(func(d *data) {
		for _, b := range bindings {
			d.listeners = append(d.listeners, bindingFor(b.Event, b.Msg))
		}
	})
}

// OnListIf is OnList when cond is true, identity otherwise.
func (e Element) OnListIf(cond bool, bindings []EventBinding) Element {
	if !cond {
		return e
	}
	return e.OnList(bindings)
}

// OnCustom registers a custom listener whose handler computes the message
// and the propagation flags at dispatch time, from the event target
// snapshot.
func (e Element) OnCustom(event string, h decode.Handler) Element {
	return e.modify(func(d *data) {
		d.listeners = append(d.listeners, vnode.Listener{
			Event:  event,
			Mode:   vnode.DispatchCustom,
			Custom: h,
		})
	})
}

// OnInput registers a handler for "input" events that reads target.value
// and maps it through f. The binding stops propagation.
func (e Element) OnInput(f func(string) any) Element {
	return e.OnCustom("input", decode.Value(f))
}

// OnChange registers a handler for "change" events that reads
// target.value and maps it through f. The binding stops propagation.
func (e Element) OnChange(f func(string) any) Element {
	return e.OnCustom("change", decode.Value(f))
}

// OnCheck registers a handler for "change" events that reads
// target.checked and maps it through f. The binding stops propagation.
func (e Element) OnCheck(f func(bool) any) Element {
	return e.OnCustom("change", decode.Checked(f))
}

// RemoveListener deletes every binding for the event name, preserving the
// relative order of the remainder.
func (e Element) RemoveListener(event string) Element {
	return e.modify(func(d *data) {
		kept := d.listeners[:0]
		for _, l := range d.listeners {
			if l.Event != event {
				kept = append(kept, l)
			}
		}
		d.listeners = kept
	})
}
