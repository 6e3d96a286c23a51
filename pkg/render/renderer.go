package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/danielnarey/modular-ui/pkg/vnode"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation. Intended
	// for development; increases output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes virtual node trees to HTML.
type Renderer struct {
	config     Config
	hidCounter uint32
	bindings   map[string][]vnode.Listener
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		bindings: make(map[string][]vnode.Listener),
	}
}

// ToString renders a node tree to an HTML string.
func (r *Renderer) ToString(node *vnode.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a node tree to the given writer.
func (r *Renderer) ToWriter(w io.Writer, node *vnode.VNode) error {
	return r.renderNode(w, node, 0)
}

// Bindings returns the listener registry collected during rendering,
// keyed by hydration ID.
func (r *Renderer) Bindings() map[string][]vnode.Listener {
	return r.bindings
}

// Lookup returns the node bindings registered under a hydration ID.
func (r *Renderer) Lookup(hid string) ([]vnode.Listener, bool) {
	ls, ok := r.bindings[hid]
	return ls, ok
}

// Reset clears the HID counter and listener registry for reuse.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.bindings = make(map[string][]vnode.Listener)
}

func (r *Renderer) nextHID() string {
	r.hidCounter++
	return fmt.Sprintf("h%d", r.hidCounter)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vnode.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vnode.KindElement:
		return r.renderElement(w, node, depth)
	case vnode.KindText:
		return r.renderText(w, node)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vnode.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}

	if node.Namespace != "" {
		if _, err := fmt.Fprintf(w, ` xmlns="%s"`, escapeAttr(node.Namespace)); err != nil {
			return err
		}
	}

	for _, a := range node.Attrs {
		if a.IsEmpty() {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, escapeAttr(a.Value)); err != nil {
			return err
		}
	}

	// Style declarations merge into one attribute, source order kept,
	// duplicates included; the cascade decides which declaration wins.
	if len(node.Styles) > 0 {
		var sb strings.Builder
		for i, s := range node.Styles {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(s.Key)
			sb.WriteString(": ")
			sb.WriteString(s.Value)
		}
		if _, err := fmt.Fprintf(w, ` style="%s"`, escapeAttr(sb.String())); err != nil {
			return err
		}
	}

	if node.IsInteractive() {
		hid := r.nextHID()
		node.HID = hid
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, hid); err != nil {
			return err
		}
		r.bindings[hid] = node.Listeners
	}

	if isVoidElement(tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		return r.newline(w)
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	inline := r.inlineChildren(node)
	if !inline {
		if err := r.newline(w); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		childDepth := depth + 1
		if inline {
			childDepth = 0
		}
		if err := r.renderNode(w, child, childDepth); err != nil {
			return err
		}
	}

	if r.config.Pretty && !inline {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	return r.newline(w)
}

// renderText renders an escaped text node.
func (r *Renderer) renderText(w io.Writer, node *vnode.VNode) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// inlineChildren reports whether an element's children render on the
// same line (text-only content, or compact mode).
func (r *Renderer) inlineChildren(node *vnode.VNode) bool {
	if !r.config.Pretty {
		return true
	}
	for _, child := range node.Children {
		if child != nil && child.Kind != vnode.KindText {
			return false
		}
	}
	return true
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}

func (r *Renderer) newline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
