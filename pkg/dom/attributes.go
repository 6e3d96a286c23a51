package dom

import (
	"strconv"

	"github.com/danielnarey/modular-ui/pkg/vnode"
)

// attr creates an Attr with the given key and value.
func attr(key, value string) vnode.Attr {
	return vnode.Attr{Key: key, Value: value}
}

// Identity and accessibility

// Title sets the title attribute.
func Title(title string) vnode.Attr { return attr("title", title) }

// Role sets the role attribute.
func Role(role string) vnode.Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) vnode.Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) vnode.Attr { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) vnode.Attr { return attr("tabindex", strconv.Itoa(index)) }

// DataAttr creates a data-* attribute.
// Example: DataAttr("id", "123") → data-id="123"
func DataAttr(key, value string) vnode.Attr { return attr("data-"+key, value) }

// Links and media

// Href sets the href attribute.
func Href(url string) vnode.Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) vnode.Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) vnode.Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) vnode.Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) vnode.Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) vnode.Attr { return attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) vnode.Attr { return attr("height", strconv.Itoa(h)) }

// Form inputs

// Name sets the name attribute.
func Name(name string) vnode.Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) vnode.Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) vnode.Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) vnode.Attr { return attr("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) vnode.Attr { return attr("for", id) }

// Disabled sets the disabled attribute.
func Disabled() vnode.Attr { return attr("disabled", "disabled") }

// Required sets the required attribute.
func Required() vnode.Attr { return attr("required", "required") }

// Checked sets the checked attribute.
func Checked() vnode.Attr { return attr("checked", "checked") }

// Autofocus sets the autofocus attribute.
func Autofocus() vnode.Attr { return attr("autofocus", "autofocus") }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) vnode.Attr { return attr("maxlength", strconv.Itoa(n)) }

// Action sets the action attribute.
func Action(url string) vnode.Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) vnode.Attr { return attr("method", method) }

// AttrIf returns the attribute when cond is true and an empty attribute
// otherwise; empty attributes are ignored by the builder.
func AttrIf(cond bool, a vnode.Attr) vnode.Attr {
	if cond {
		return a
	}
	return vnode.Attr{}
}
