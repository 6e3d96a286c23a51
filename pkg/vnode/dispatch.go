package vnode

import "github.com/danielnarey/modular-ui/pkg/decode"

// Dispatch is the aggregate outcome of delivering one event to a node:
// the messages produced by every matching listener, in registration
// order, and the accumulated propagation flags.
type Dispatch struct {
	Msgs            []any
	StopPropagation bool
	PreventDefault  bool
}

// Dispatch delivers an event to this node's listeners. Every listener
// registered for the event name fires, in registration order; there is no
// last-wins override. Propagation flags accumulate across listeners: one
// listener asking to stop propagation stops it for the whole dispatch.
//
// For custom bindings the handler is invoked with the target snapshot; a
// handler error (decode failure) aborts the dispatch and is returned to
// the host.
func (v *VNode) Dispatch(event string, target decode.Target) (Dispatch, error) {
	var d Dispatch
	if v == nil {
		return d, nil
	}
	for _, l := range v.Listeners {
		if l.Event != event {
			continue
		}
		switch l.Mode {
		case DispatchNormal:
			d.Msgs = append(d.Msgs, l.Msg)
		case DispatchStopPropagation:
			d.Msgs = append(d.Msgs, l.Msg)
			d.StopPropagation = true
		case DispatchPreventDefault:
			d.Msgs = append(d.Msgs, l.Msg)
			d.PreventDefault = true
		case DispatchStopAndPrevent:
			d.Msgs = append(d.Msgs, l.Msg)
			d.StopPropagation = true
			d.PreventDefault = true
		case DispatchCustom:
			r, err := l.Custom(target)
			if err != nil {
				return Dispatch{}, err
			}
			d.Msgs = append(d.Msgs, r.Msg)
			d.StopPropagation = d.StopPropagation || r.StopPropagation
			d.PreventDefault = d.PreventDefault || r.PreventDefault
		}
	}
	return d, nil
}
