package main

import (
	"fmt"

	"github.com/danielnarey/modular-ui/pkg/dom"
	"github.com/danielnarey/modular-ui/pkg/preview"
)

// The built-in demo is a small todo list. It exercises most of the
// builder surface: classes, inline styles, conditionals, keyed children,
// input decoding, and propagation modifiers.

type demoItem struct {
	id   int
	text string
	done bool
}

type demoModel struct {
	items  []demoItem
	draft  string
	nextID int
}

type draftChanged struct{ value string }

type itemAdded struct{}

type itemToggled struct {
	id   int
	done bool
}

type itemRemoved struct{ id int }

func demoProgram() preview.Program {
	return preview.Program{
		Init: func() any {
			return demoModel{
				items: []demoItem{
					{id: 1, text: "compose an element"},
					{id: 2, text: "compile it", done: true},
				},
				nextID: 3,
			}
		},
		Update: demoUpdate,
		View:   demoView,
	}
}

func demoUpdate(model, msg any) any {
	m := model.(demoModel)
	switch msg := msg.(type) {
	case draftChanged:
		m.draft = msg.value

	case itemAdded:
		if m.draft == "" {
			break
		}
		m.items = append(m.items, demoItem{id: m.nextID, text: m.draft})
		m.nextID++
		m.draft = ""

	case itemToggled:
		for i := range m.items {
			if m.items[i].id == msg.id {
				m.items[i].done = msg.done
			}
		}

	case itemRemoved:
		kept := m.items[:0]
		for _, item := range m.items {
			if item.id != msg.id {
				kept = append(kept, item)
			}
		}
		m.items = kept
	}
	return m
}

func demoView(model any) dom.Element {
	m := model.(demoModel)

	entry := dom.Div().
		AddClass("entry").
		AppendChild(dom.Input().
			AddAttr(dom.Type("text")).
			AddAttr(dom.Placeholder("What needs doing?")).
			AddAttr(dom.Value(m.draft)).
			OnInput(func(v string) any { return draftChanged{value: v} })).
		AppendChild(dom.Button().
			SetText("Add").
			On("click", dom.PreventDefault(itemAdded{})))

	items := make([]dom.KeyedChild, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, dom.KeyedChild{
			Key:   fmt.Sprintf("item-%d", item.id),
			Child: demoItemView(item),
		})
	}

	remaining := 0
	for _, item := range m.items {
		if !item.done {
			remaining++
		}
	}

	return dom.Div().
		AddClass("demo").
		AddStyle("max-width", "32rem").
		AddStyle("margin", "2rem auto").
		AppendChild(dom.H1().SetText("modui demo")).
		AppendChild(entry).
		AppendChild(dom.Ul().AddClass("items").SetKeyedChildren(items)).
		AppendChildIf(len(m.items) > 0,
			dom.P().SetText(fmt.Sprintf("%d remaining", remaining)))
}

func demoItemView(item demoItem) dom.Element {
	return dom.Li().
		AddClass("item").
		AddClassIf(item.done, "done").
		AddStyleIf(item.done, "text-decoration", "line-through").
		AppendChild(dom.Input().
			AddAttr(dom.Type("checkbox")).
			AddAttrIf(item.done, dom.Checked()).
			OnCheck(func(done bool) any { return itemToggled{id: item.id, done: done} })).
		AppendText(item.text).
		AppendChild(dom.Button().
			SetText("×").
			On("click", dom.StopPropagation(itemRemoved{id: item.id})))
}
