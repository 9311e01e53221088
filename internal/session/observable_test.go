package session

import (
	"reflect"
	"testing"
)

func TestObservableGetSet(t *testing.T) {
	var obs Observable[int]
	if got := obs.Get(); got != 0 {
		t.Fatalf("zero Get() = %d, want 0", got)
	}
	obs.Set(5)
	if got := obs.Get(); got != 5 {
		t.Fatalf("Get() = %d, want 5", got)
	}
}

func TestObservableNotifiesWithPrev(t *testing.T) {
	var obs Observable[string]
	obs.Set("a")

	var gotNext, gotPrev string
	calls := 0
	obs.Subscribe(func(next, prev string) {
		calls++
		gotNext, gotPrev = next, prev
	})

	obs.Set("b")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if gotNext != "b" || gotPrev != "a" {
		t.Fatalf("notification = (%q, %q), want (b, a)", gotNext, gotPrev)
	}
}

func TestObservableSkipsEqualValue(t *testing.T) {
	var obs Observable[int]
	obs.Set(3)

	calls := 0
	obs.Subscribe(func(_, _ int) { calls++ })

	obs.Set(3)
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 for unchanged value", calls)
	}
	obs.Set(4)
	obs.Set(4)
	if calls != 1 {
		t.Fatalf("calls = %d, want exactly 1", calls)
	}
}

func TestObservableListenerOrder(t *testing.T) {
	var obs Observable[int]
	var order []string
	obs.Subscribe(func(_, _ int) { order = append(order, "first") })
	obs.Subscribe(func(_, _ int) { order = append(order, "second") })
	obs.Subscribe(func(_, _ int) { order = append(order, "third") })

	obs.Set(1)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestObservableUnsubscribe(t *testing.T) {
	var obs Observable[int]
	kept := 0
	cancelled := 0
	obs.Subscribe(func(_, _ int) { kept++ })
	cancel := obs.Subscribe(func(_, _ int) { cancelled++ })

	obs.Set(1)
	cancel()
	obs.Set(2)

	if kept != 2 {
		t.Errorf("kept listener calls = %d, want 2", kept)
	}
	if cancelled != 1 {
		t.Errorf("cancelled listener calls = %d, want 1", cancelled)
	}

	// Cancelling twice must not remove another listener.
	cancel()
	obs.Set(3)
	if kept != 3 {
		t.Errorf("kept listener calls after double cancel = %d, want 3", kept)
	}
}
