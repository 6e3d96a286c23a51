// Package preview hosts a live preview server for element trees.
//
// The server renders a program's view to HTML, serves it over HTTP, and
// keeps a WebSocket session per browser tab. DOM events captured in the
// browser are sent to the server as JSON frames, dispatched through the
// tree's listener bindings, folded into the program's model, and the
// re-rendered HTML is pushed back.
package preview
