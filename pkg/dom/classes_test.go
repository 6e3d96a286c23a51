package dom

import (
	"slices"
	"testing"
)

func TestAddClassOrderAndDuplicates(t *testing.T) {
	e := New("div").AddClass("a").AddClass("b").AddClass("a")

	want := []string{"a", "b", "a"}
	if got := e.Data().Classes; !slices.Equal(got, want) {
		t.Errorf("Classes = %v, want %v", got, want)
	}
}

func TestAddClassListEqualsSequentialAppends(t *testing.T) {
	byList := New("div").AddClassList([]string{"a", "b"})
	bySingles := New("div").AddClass("a").AddClass("b")

	if !slices.Equal(byList.Data().Classes, bySingles.Data().Classes) {
		t.Errorf("AddClassList = %v, sequential AddClass = %v",
			byList.Data().Classes, bySingles.Data().Classes)
	}
}

func TestAddClassIf(t *testing.T) {
	e := New("div")

	withTrue := e.AddClassIf(true, "c")
	if !slices.Equal(withTrue.Data().Classes, e.AddClass("c").Data().Classes) {
		t.Error("AddClassIf(true) should equal AddClass")
	}

	withFalse := e.AddClassIf(false, "c")
	if !slices.Equal(withFalse.Data().Classes, e.Data().Classes) {
		t.Error("AddClassIf(false) should be the identity transform")
	}
}

func TestAddClassListIf(t *testing.T) {
	e := New("div").AddClassListIf(false, []string{"a", "b"})
	if len(e.Data().Classes) != 0 {
		t.Errorf("Classes = %v, want empty", e.Data().Classes)
	}

	e = e.AddClassListIf(true, []string{"a", "b"})
	if got := e.Data().Classes; !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Classes = %v, want [a b]", got)
	}
}

func TestRemoveClassRemovesEveryOccurrence(t *testing.T) {
	e := New("div").AddClassList([]string{"a", "b", "a", "c", "a"}).RemoveClass("a")

	want := []string{"b", "c"}
	if got := e.Data().Classes; !slices.Equal(got, want) {
		t.Errorf("Classes = %v, want %v", got, want)
	}
}

func TestRemoveClassRoundTrip(t *testing.T) {
	base := New("div").AddClass("keep")

	roundTripped := base.AddClass("tmp").RemoveClass("tmp")
	if !slices.Equal(roundTripped.Data().Classes, base.Data().Classes) {
		t.Errorf("round trip Classes = %v, want %v",
			roundTripped.Data().Classes, base.Data().Classes)
	}
}

func TestRemoveClassIdempotent(t *testing.T) {
	e := New("div").AddClassList([]string{"a", "b", "a"})

	once := e.RemoveClass("a")
	twice := once.RemoveClass("a")
	if !slices.Equal(once.Data().Classes, twice.Data().Classes) {
		t.Errorf("RemoveClass not idempotent: once %v, twice %v",
			once.Data().Classes, twice.Data().Classes)
	}
}

func TestReplaceClassList(t *testing.T) {
	e := New("div").AddClassList([]string{"old1", "old2"}).
		ReplaceClassList([]string{"new1", "new2"})

	want := []string{"new1", "new2"}
	if got := e.Data().Classes; !slices.Equal(got, want) {
		t.Errorf("Classes = %v, want %v (full replace, no merge)", got, want)
	}
}
