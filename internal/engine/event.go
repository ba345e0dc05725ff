package engine

// listenerSet keeps callbacks in subscription order. Each one gets an id so
// it can be dropped later; funcs are not comparable.
type listenerSet[F any] struct {
	next      int
	listeners []listener[F]
}

type listener[F any] struct {
	id int
	fn F
}

func (s *listenerSet[F]) add(fn F) func() {
	s.next++
	id := s.next
	s.listeners = append(s.listeners, listener[F]{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *listenerSet[F]) remove(id int) {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// snapshot lets a callback unsubscribe itself mid-invoke.
func (s *listenerSet[F]) snapshot() []listener[F] {
	return s.listeners
}

// Event is a payload-free signal components expose for others to hook,
// e.g. Locomotion.OnJumped.
type Event struct {
	set listenerSet[func()]
}

// AddListener subscribes callback and returns a func that unsubscribes it.
// A nil callback is ignored.
func (e *Event) AddListener(callback func()) (remove func()) {
	if callback == nil {
		return func() {}
	}
	return e.set.add(callback)
}

func (e *Event) RemoveAllListeners() {
	e.set.listeners = nil
}

func (e *Event) Invoke() {
	for _, l := range e.set.snapshot() {
		l.fn()
	}
}

func (e *Event) GetListenerCount() int {
	return len(e.set.listeners)
}

// EventWithArg carries one value to every listener, such as a HealthEvent
// or a fired Shot.
type EventWithArg[T any] struct {
	set listenerSet[func(T)]
}

func (e *EventWithArg[T]) AddListener(callback func(T)) (remove func()) {
	if callback == nil {
		return func() {}
	}
	return e.set.add(callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.set.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.set.snapshot() {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.set.listeners)
}
