package decode

import "github.com/cockroachdb/errors"

// Sentinel errors for extraction failures. Callers can test for them with
// errors.Is after a dispatch fails.
var (
	ErrMissingField = errors.New("decode: target field missing")
	ErrWrongType    = errors.New("decode: target field has wrong type")
)

// Target is a snapshot of an event target's fields at dispatch time,
// as supplied by the host environment (e.g. {"value": "abc", "checked": true}).
type Target map[string]any

// String extracts a string field from the target.
func (t Target) String(field string) (string, error) {
	v, ok := t[field]
	if !ok {
		return "", errors.Wrapf(ErrMissingField, "%q", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrWrongType, "%q: want string, got %T", field, v)
	}
	return s, nil
}

// Bool extracts a boolean field from the target.
func (t Target) Bool(field string) (bool, error) {
	v, ok := t[field]
	if !ok {
		return false, errors.Wrapf(ErrMissingField, "%q", field)
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Wrapf(ErrWrongType, "%q: want bool, got %T", field, v)
	}
	return b, nil
}

// Result is the outcome of invoking a Handler: the message to deliver to
// the application, plus propagation control decided at invocation time.
type Result struct {
	Msg             any
	StopPropagation bool
	PreventDefault  bool
}

// Handler extracts a value from an event target and produces a Result.
// It is the custom-dispatch capability injected into listeners.
type Handler func(Target) (Result, error)

// Value returns a Handler that reads target.value as a string and maps it
// through f. The event is stopped from propagating, matching the behavior
// of input and change bindings.
func Value(f func(string) any) Handler {
	return Field("value", f)
}

// Checked returns a Handler that reads target.checked as a bool and maps
// it through f, stopping propagation.
func Checked(f func(bool) any) Handler {
	return func(t Target) (Result, error) {
		b, err := t.Bool("checked")
		if err != nil {
			return Result{}, err
		}
		return Result{Msg: f(b), StopPropagation: true}, nil
	}
}

// Field returns a Handler that reads the named string field and maps it
// through f, stopping propagation.
func Field(name string, f func(string) any) Handler {
	return func(t Target) (Result, error) {
		s, err := t.String(name)
		if err != nil {
			return Result{}, err
		}
		return Result{Msg: f(s), StopPropagation: true}, nil
	}
}

// Map wraps a Handler, transforming the message it produces. Propagation
// flags pass through unchanged.
func Map(h Handler, f func(any) any) Handler {
	return func(t Target) (Result, error) {
		r, err := h(t)
		if err != nil {
			return Result{}, err
		}
		r.Msg = f(r.Msg)
		return r, nil
	}
}
