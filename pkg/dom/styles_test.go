package dom

import (
	"slices"
	"testing"

	"github.com/danielnarey/modular-ui/pkg/vnode"
)

func TestAddStyleOrderAndDuplicates(t *testing.T) {
	e := New("div").
		AddStyle("color", "red").
		AddStyle("height", "10px").
		AddStyle("color", "blue")

	want := []vnode.Style{
		{Key: "color", Value: "red"},
		{Key: "height", Value: "10px"},
		{Key: "color", Value: "blue"},
	}
	if got := e.Data().Styles; !slices.Equal(got, want) {
		t.Errorf("Styles = %v, want %v (duplicates kept, no override)", got, want)
	}
}

func TestAddStyleListEqualsSequentialAppends(t *testing.T) {
	styles := []vnode.Style{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

	byList := New("div").AddStyleList(styles)
	bySingles := New("div").AddStyle("a", "1").AddStyle("b", "2")

	if !slices.Equal(byList.Data().Styles, bySingles.Data().Styles) {
		t.Errorf("AddStyleList = %v, sequential AddStyle = %v",
			byList.Data().Styles, bySingles.Data().Styles)
	}
}

func TestAddStyleIf(t *testing.T) {
	e := New("div").AddStyleIf(false, "color", "red")
	if len(e.Data().Styles) != 0 {
		t.Errorf("Styles = %v, want empty", e.Data().Styles)
	}

	e = e.AddStyleIf(true, "color", "red")
	if got := e.Data().Styles; len(got) != 1 || got[0] != (vnode.Style{Key: "color", Value: "red"}) {
		t.Errorf("Styles = %v, want [color:red]", got)
	}
}

func TestAddStyleListIf(t *testing.T) {
	styles := []vnode.Style{{Key: "a", Value: "1"}}

	if got := New("div").AddStyleListIf(false, styles).Data().Styles; len(got) != 0 {
		t.Errorf("Styles = %v, want empty", got)
	}
	if got := New("div").AddStyleListIf(true, styles).Data().Styles; !slices.Equal(got, styles) {
		t.Errorf("Styles = %v, want %v", got, styles)
	}
}

func TestRemoveStyleRemovesEveryMatchingKey(t *testing.T) {
	e := New("div").
		AddStyleList([]vnode.Style{
			{Key: "color", Value: "red"},
			{Key: "height", Value: "10px"},
			{Key: "color", Value: "blue"},
		}).
		RemoveStyle("color")

	want := []vnode.Style{{Key: "height", Value: "10px"}}
	if got := e.Data().Styles; !slices.Equal(got, want) {
		t.Errorf("Styles = %v, want %v", got, want)
	}
}

func TestRemoveStyleAfterDuplicateAdds(t *testing.T) {
	e := New("div").
		AddStyleList([]vnode.Style{
			{Key: "k", Value: "v1"},
			{Key: "k", Value: "v2"},
		}).
		RemoveStyle("k")

	for _, s := range e.Data().Styles {
		if s.Key == "k" {
			t.Fatalf("Styles still contains key k: %v", e.Data().Styles)
		}
	}
}

func TestReplaceStyleList(t *testing.T) {
	e := New("div").
		AddStyle("old", "1").
		ReplaceStyleList([]vnode.Style{{Key: "new", Value: "2"}})

	want := []vnode.Style{{Key: "new", Value: "2"}}
	if got := e.Data().Styles; !slices.Equal(got, want) {
		t.Errorf("Styles = %v, want %v", got, want)
	}
}
