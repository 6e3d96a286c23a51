package preview

import (
	"github.com/cockroachdb/errors"

	"github.com/danielnarey/modular-ui/pkg/decode"
	"github.com/danielnarey/modular-ui/pkg/render"
	"github.com/danielnarey/modular-ui/pkg/vnode"
)

// Frame types exchanged over the preview WebSocket.
const (
	frameEvent  = "event"
	frameRender = "render"
	frameError  = "error"
)

// eventFrame is sent by the browser when a bound DOM event fires.
type eventFrame struct {
	Type   string        `json:"type"`
	HID    string        `json:"hid"`
	Event  string        `json:"event"`
	Target decode.Target `json:"target,omitempty"`
}

// renderFrame carries re-rendered HTML plus the binding table the client
// script needs to intercept the next round of events.
type renderFrame struct {
	Type     string               `json:"type"`
	HTML     string               `json:"html"`
	Bindings map[string][]binding `json:"bindings"`
}

// binding tells the client which events to forward for an element and
// which propagation controls to apply locally before forwarding.
type binding struct {
	Event           string `json:"event"`
	StopPropagation bool   `json:"stop,omitempty"`
	PreventDefault  bool   `json:"prevent,omitempty"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// session holds the per-connection state: the program's current model and
// the renderer whose binding registry maps hids back to listeners.
type session struct {
	program  Program
	renderer *render.Renderer
	model    any
}

func newSession(p Program) *session {
	s := &session{
		program:  p,
		renderer: render.New(render.Config{}),
	}
	if p.Init != nil {
		s.model = p.Init()
	}
	return s
}

// render compiles the current view, serializes it, and snapshots the
// binding registry for the client.
func (s *session) render() (renderFrame, error) {
	s.renderer.Reset()
	node := s.program.View(s.model).Render()
	html, err := s.renderer.ToString(node)
	if err != nil {
		return renderFrame{}, errors.Wrap(err, "rendering view")
	}
	return renderFrame{
		Type:     frameRender,
		HTML:     html,
		Bindings: bindingSummary(s.renderer.Bindings()),
	}, nil
}

// handleEvent dispatches one browser event through the bound listeners,
// folds every produced message into the model, and re-renders.
func (s *session) handleEvent(ev eventFrame) (renderFrame, vnode.Dispatch, error) {
	listeners, ok := s.renderer.Lookup(ev.HID)
	if !ok {
		return renderFrame{}, vnode.Dispatch{}, errors.Newf("no bindings registered for target %q", ev.HID)
	}

	node := &vnode.VNode{Kind: vnode.KindElement, Listeners: listeners}
	d, err := node.Dispatch(ev.Event, ev.Target)
	if err != nil {
		return renderFrame{}, vnode.Dispatch{}, errors.Wrapf(err, "dispatching %q to %q", ev.Event, ev.HID)
	}

	if s.program.Update != nil {
		for _, msg := range d.Msgs {
			s.model = s.program.Update(s.model, msg)
		}
	}

	frame, err := s.render()
	return frame, d, err
}

// bindingSummary flattens the renderer's listener registry into the wire
// form the client script consumes. Propagation flags for input decoders
// follow the canonical form bindings, which stop propagation once the
// event has been captured.
func bindingSummary(registry map[string][]vnode.Listener) map[string][]binding {
	out := make(map[string][]binding, len(registry))
	for hid, listeners := range registry {
		bs := make([]binding, 0, len(listeners))
		for _, l := range listeners {
			b := binding{Event: l.Event}
			switch l.Mode {
			case vnode.DispatchStopPropagation:
				b.StopPropagation = true
			case vnode.DispatchPreventDefault:
				b.PreventDefault = true
			case vnode.DispatchStopAndPrevent:
				b.StopPropagation = true
				b.PreventDefault = true
			case vnode.DispatchCustom:
				b.StopPropagation = true
			}
			bs = append(bs, b)
		}
		out[hid] = bs
	}
	return out
}
