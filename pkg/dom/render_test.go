package dom

import (
	"testing"

	"github.com/danielnarey/modular-ui/pkg/vnode"
)

func TestRenderDivWithContainerClass(t *testing.T) {
	n := New("div").AddClass("container").Render()

	if n.Kind != vnode.KindElement || n.Tag != "div" {
		t.Fatalf("node = %v %q, want div element", n.Kind, n.Tag)
	}
	if len(n.Attrs) != 1 {
		t.Fatalf("attrs = %v, want exactly one class attribute", n.Attrs)
	}
	if n.Attrs[0] != (vnode.Attr{Key: "class", Value: "container"}) {
		t.Errorf("attr = %+v, want class=container", n.Attrs[0])
	}
	if len(n.Children) != 0 {
		t.Errorf("children = %d, want none", len(n.Children))
	}
}

func TestRenderClassListJoinedAndTrimmed(t *testing.T) {
	n := New("div").AddClassList([]string{"a", "b", "a"}).Render()

	if len(n.Attrs) != 1 || n.Attrs[0].Value != "a b a" {
		t.Errorf("attrs = %v, want single class %q", n.Attrs, "a b a")
	}

	// Whitespace-only entries collapse at the edges.
	n = New("div").AddClassList([]string{"", "x", ""}).Render()
	if n.Attrs[0].Value != "x" {
		t.Errorf("class = %q, want trimmed %q", n.Attrs[0].Value, "x")
	}
}

func TestRenderAttrOrdering(t *testing.T) {
	n := New("input").
		SetID("field").
		AddClass("wide").
		AddAttr(Type("text")).
		AddAttr(Placeholder("name")).
		Render()

	// Passthrough attributes first, then id, then class.
	want := []vnode.Attr{
		{Key: "type", Value: "text"},
		{Key: "placeholder", Value: "name"},
		{Key: "id", Value: "field"},
		{Key: "class", Value: "wide"},
	}
	if len(n.Attrs) != len(want) {
		t.Fatalf("attrs = %v, want %v", n.Attrs, want)
	}
	for i := range want {
		if n.Attrs[i] != want[i] {
			t.Errorf("attr[%d] = %+v, want %+v", i, n.Attrs[i], want[i])
		}
	}
}

func TestRenderStylesKeptDistinctInOrder(t *testing.T) {
	n := New("div").
		AddStyle("maxWidth", "500px").
		AddStyle("height", "450px").
		Render()

	want := []vnode.Style{
		{Key: "maxWidth", Value: "500px"},
		{Key: "height", Value: "450px"},
	}
	if len(n.Styles) != 2 {
		t.Fatalf("styles = %v, want two distinct declarations", n.Styles)
	}
	for i := range want {
		if n.Styles[i] != want[i] {
			t.Errorf("style[%d] = %+v, want %+v", i, n.Styles[i], want[i])
		}
	}
}

func TestRenderDuplicateStyleKeysNotMerged(t *testing.T) {
	n := New("div").
		AddStyle("color", "red").
		AddStyle("color", "blue").
		Render()

	if len(n.Styles) != 2 {
		t.Fatalf("styles = %v, want both declarations emitted", n.Styles)
	}
	if n.Styles[0].Value != "red" || n.Styles[1].Value != "blue" {
		t.Errorf("styles = %v, want source order preserved", n.Styles)
	}
}

func TestRenderTextIsFirstChild(t *testing.T) {
	n := New("p").
		AppendChild(New("span")).
		SetText("lead").
		Render()

	if len(n.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(n.Children))
	}
	if n.Children[0].Kind != vnode.KindText || n.Children[0].Text != "lead" {
		t.Errorf("first child = %+v, want text node ahead of explicit children", n.Children[0])
	}
	if n.Children[1].Tag != "span" {
		t.Errorf("second child tag = %q, want span", n.Children[1].Tag)
	}
}

func TestRenderKeyedPairing(t *testing.T) {
	n := New("ul").SetKeyedChildren([]KeyedChild{
		{Key: "a", Child: Li().SetText("X")},
		{Key: "b", Child: Li().SetText("Y")},
	}).Render()

	if !n.Keyed {
		t.Fatal("node should be keyed")
	}
	if len(n.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(n.Children))
	}
	if n.Children[0].Key != "a" || n.Children[0].Children[0].Text != "X" {
		t.Errorf("child[0] = key %q text %q, want a/X", n.Children[0].Key, n.Children[0].Children[0].Text)
	}
	if n.Children[1].Key != "b" || n.Children[1].Children[0].Text != "Y" {
		t.Errorf("child[1] = key %q text %q, want b/Y", n.Children[1].Key, n.Children[1].Children[0].Text)
	}
}

func TestRenderUnkeyedChildrenHaveNoKeys(t *testing.T) {
	n := New("ul").AppendChildList([]Element{Li(), Li()}).Render()

	if n.Keyed {
		t.Error("node should not be keyed")
	}
	for i, c := range n.Children {
		if c.Key != "" {
			t.Errorf("child[%d].Key = %q, want empty", i, c.Key)
		}
	}
}

func TestRenderNamespaceInheritedBySubtree(t *testing.T) {
	n := Svg().AppendChild(New("circle").AppendChild(New("title"))).Render()

	if n.Namespace != SVGNamespace {
		t.Fatalf("namespace = %q, want %q", n.Namespace, SVGNamespace)
	}
	circle := n.Children[0]
	if circle.Namespace != SVGNamespace {
		t.Errorf("child namespace = %q, want inherited", circle.Namespace)
	}
	if circle.Children[0].Namespace != SVGNamespace {
		t.Errorf("grandchild namespace = %q, want inherited", circle.Children[0].Namespace)
	}
}

func TestRenderChildOwnNamespaceWins(t *testing.T) {
	n := Svg().AppendChild(New("foreignObject").
		AppendChild(New("div").SetNamespace("http://www.w3.org/1999/xhtml"))).Render()

	div := n.Children[0].Children[0]
	if div.Namespace != "http://www.w3.org/1999/xhtml" {
		t.Errorf("namespace = %q, want the child's own", div.Namespace)
	}
}

func TestRenderEqualDataRendersEqualTrees(t *testing.T) {
	// Different operation sequences, same final data.
	a := New("div").
		AddClass("x").
		AddClass("tmp").
		RemoveClass("tmp").
		AddStyle("color", "red")
	b := New("div").
		AddStyleList([]vnode.Style{{Key: "color", Value: "red"}}).
		AddClassList([]string{"x"})

	if !vnode.Equal(a.Render(), b.Render()) {
		t.Error("equal final data should render structurally equal trees")
	}
}

func TestRenderDifferingAttrRendersUnequalTrees(t *testing.T) {
	a := New("div").AddAttr(Title("one"))
	b := New("div").AddAttr(Title("two"))

	if vnode.Equal(a.Render(), b.Render()) {
		t.Error("differing attribute values must render non-equal trees")
	}
}

func TestRenderIsPureAndRepeatable(t *testing.T) {
	e := New("div").
		AddClass("c").
		AddStyle("k", "v").
		SetText("t").
		AppendChild(Li().SetText("x"))

	first := e.Render()
	second := e.Render()

	if !vnode.Equal(first, second) {
		t.Error("rendering twice on equal data should yield equal trees")
	}

	// Mutating the first output must not leak into the builder.
	first.Attrs[0].Value = "mutated"
	if !vnode.Equal(e.Render(), second) {
		t.Error("render output aliases builder state")
	}
}

func TestRenderKeysChildrenLengthMismatchTruncates(t *testing.T) {
	// The keyed constructor keeps the lists paired, so force a mismatch
	// the only way the API allows: more keys than children can't happen,
	// but equal pairing must zip by position.
	n := New("ul").SetKeyedChildren([]KeyedChild{
		{Key: "a", Child: Li()},
		{Key: "b", Child: Li()},
		{Key: "c", Child: Li()},
	}).Render()

	if len(n.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(n.Children))
	}
	for i, want := range []string{"a", "b", "c"} {
		if n.Children[i].Key != want {
			t.Errorf("child[%d].Key = %q, want %q", i, n.Children[i].Key, want)
		}
	}
}

func TestRenderCompiledChildPassThrough(t *testing.T) {
	compiled := vnode.NewElement("hr")
	n := New("div").AppendNode(compiled).Render()

	if n.Children[0] != compiled {
		t.Error("already-compiled child should pass through by identity")
	}
}
