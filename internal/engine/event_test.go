package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event
	var order []int
	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(nil)
	e.AddListener(func() { order = append(order, 2) })

	e.Invoke()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected [1 2], got %v", order)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}

	e.RemoveAllListeners()
	e.Invoke()
	if len(order) != 2 {
		t.Error("Listeners should be gone after RemoveAllListeners")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })

	e.Invoke(3)

	if sum != 33 {
		t.Errorf("Expected 33, got %d", sum)
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event
	var order []string
	e.AddListener(func() { order = append(order, "a") })
	removeB := e.AddListener(func() { order = append(order, "b") })
	e.AddListener(func() { order = append(order, "c") })
	e.AddListener(nil)()

	removeB()
	removeB()
	e.Invoke()

	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("Expected [a c], got %v", order)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}
}

func TestEventListenerRemovesItselfDuringInvoke(t *testing.T) {
	var e EventWithArg[int]
	var seen []int
	var remove func()
	remove = e.AddListener(func(v int) {
		seen = append(seen, v)
		remove()
	})
	e.AddListener(func(v int) { seen = append(seen, v*10) })

	e.Invoke(1)
	e.Invoke(2)

	want := []int{1, 10, 20}
	if len(seen) != len(want) {
		t.Fatalf("Expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, seen)
			break
		}
	}
}
