// Package decode provides the value-extraction capability used by event
// listeners.
//
// When an event is dispatched, the host supplies a snapshot of the event
// target's fields as a Target. A Handler reads one field off that target
// (typically "value" or "checked"), maps it through a caller-supplied
// transform into an application message, and decides whether the event
// should stop propagating or suppress its default action.
//
// Handlers are wired into element listeners at build time; extraction
// failures surface only at dispatch time, as errors marked with
// ErrMissingField or ErrWrongType.
package decode
