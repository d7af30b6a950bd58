package event_test

import (
	"reflect"
	"testing"

	"github.com/torao/terp/event"
)

func TestEmitter_NoCoalesce(t *testing.T) {
	var got []event.Event[rune, string]
	e := event.NewEmitter[rune, string](func(ev event.Event[rune, string]) { got = append(got, ev) }, false)

	e.EmitAll([]event.Event[rune, string]{
		event.Begin[rune, string](event.Location{}, "X"),
		event.Fragments[rune, string](event.Location{}, []rune("a")),
		event.Fragments[rune, string](event.Location{}, []rune("b")),
		event.End[rune, string](event.Location{}, "X"),
	})
	e.Flush()

	if len(got) != 4 {
		t.Fatalf("got %d events, want 4 (no coalescing): %+v", len(got), got)
	}
}

func TestEmitter_CoalesceAdjacentFragments(t *testing.T) {
	var got []event.Event[rune, string]
	e := event.NewEmitter[rune, string](func(ev event.Event[rune, string]) { got = append(got, ev) }, true)

	e.EmitAll([]event.Event[rune, string]{
		event.Begin[rune, string](event.Location{Index: 0}, "X"),
		event.Fragments[rune, string](event.Location{Index: 0}, []rune("a")),
		event.Fragments[rune, string](event.Location{Index: 1}, []rune("b")),
		event.End[rune, string](event.Location{Index: 2}, "X"),
	})
	e.Flush()

	want := []event.Event[rune, string]{
		event.Begin[rune, string](event.Location{Index: 0}, "X"),
		event.Fragments[rune, string](event.Location{Index: 0}, []rune("ab")),
		event.End[rune, string](event.Location{Index: 2}, "X"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestEmitter_FlushWithoutPendingIsNoOp(t *testing.T) {
	called := false
	e := event.NewEmitter[rune, string](func(event.Event[rune, string]) { called = true }, true)
	e.Flush()
	if called {
		t.Error("Flush invoked the sink with nothing pending")
	}
}

func TestEmitter_FlushedRunsDoNotCoalesce(t *testing.T) {
	var got []event.Event[rune, string]
	e := event.NewEmitter[rune, string](func(ev event.Event[rune, string]) { got = append(got, ev) }, true)

	e.Emit(event.Fragments[rune, string](event.Location{Index: 0}, []rune("a")))
	e.Flush() // a Flush between the two runs keeps them apart
	e.Emit(event.Fragments[rune, string](event.Location{Index: 1}, []rune("b")))
	e.Flush()

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2 separate Fragments runs: %+v", len(got), got)
	}
}
