package events

import "testing"

func TestEmitter_DispatchOrder(t *testing.T) {
	em := NewEmitter("w")
	var order []int
	em.AddListener("ping", func(*Event) { order = append(order, 1) })
	em.AddListener("ping", func(*Event) { order = append(order, 2) })
	em.Emit("ping")

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("Expected listeners in registration order, got %v", order)
	}
}

func TestEmitter_Unsubscribe(t *testing.T) {
	em := NewEmitter("w")
	calls := 0
	remove := em.AddListener("ping", func(*Event) { calls++ })
	em.Emit("ping")
	remove()
	em.Emit("ping")

	if calls != 1 {
		t.Fatalf("Expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestEmitter_CancelableEvent(t *testing.T) {
	em := NewEmitter("w")
	em.AddListener("will", func(e *Event) {
		if !e.Cancelable() {
			t.Error("Expected cancelable event")
		}
		e.PreventDefault()
	})

	if !em.EmitCancelable("will") {
		t.Fatal("Expected cancellation to be reported")
	}
}

func TestEmitter_NonCancelableIgnoresPreventDefault(t *testing.T) {
	em := NewEmitter("w")
	var prevented bool
	em.AddListener("after", func(e *Event) {
		e.PreventDefault()
		prevented = e.DefaultPrevented()
	})
	em.Emit("after")

	if prevented {
		t.Fatal("PreventDefault should be a no-op on non-cancelable events")
	}
}

func TestEmitter_EventCarriesTarget(t *testing.T) {
	em := NewEmitter("details-1")
	var target string
	em.AddListener("ping", func(e *Event) { target = e.Target })
	em.Emit("ping")

	if target != "details-1" {
		t.Fatalf("Expected target details-1, got %q", target)
	}
}

func TestEmitter_ListenerMayUnsubscribeDuringDispatch(t *testing.T) {
	em := NewEmitter("w")
	var removeSelf func()
	calls := 0
	removeSelf = em.AddListener("ping", func(*Event) {
		calls++
		removeSelf()
	})
	em.Emit("ping")
	em.Emit("ping")

	if calls != 1 {
		t.Fatalf("Expected self-removing listener to fire once, got %d", calls)
	}
}

func TestEmitter_RemoveAll(t *testing.T) {
	em := NewEmitter("w")
	calls := 0
	em.AddListener("ping", func(*Event) { calls++ })
	em.RemoveAll()
	em.Emit("ping")

	if calls != 0 {
		t.Fatalf("Expected no calls after RemoveAll, got %d", calls)
	}
}
