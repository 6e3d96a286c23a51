package preview

import "github.com/danielnarey/modular-ui/pkg/dom"

// Program is an update/view application hosted by the preview server.
// Init produces the starting model, Update folds one dispatched message
// into the model, and View builds the element tree for a model. View must
// be pure: the server calls it after every update and renders the result.
type Program struct {
	Init   func() any
	Update func(model, msg any) any
	View   func(model any) dom.Element
}
