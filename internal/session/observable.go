// Package session holds the per-run state shared by scenes and policies.
package session

// Observable is a single-slot value with synchronous change
// notification. Listeners run in registration order, and only when the
// new value differs from the current one. It is not a general event
// bus: one value, one change event.
type Observable[T comparable] struct {
	value     T
	nextID    int
	listeners []listener[T]
}

type listener[T comparable] struct {
	id int
	fn func(next, prev T)
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	return o.value
}

// Set stores a new value and notifies listeners. Setting the current
// value again is a no-op with no notification.
func (o *Observable[T]) Set(next T) {
	if next == o.value {
		return
	}
	prev := o.value
	o.value = next
	for _, l := range o.listeners {
		l.fn(next, prev)
	}
}

// Subscribe registers a change listener and returns its cancel
// function. Every scene that subscribes on entry must cancel on exit,
// otherwise stale listeners pile up across scene constructions.
func (o *Observable[T]) Subscribe(fn func(next, prev T)) (cancel func()) {
	id := o.nextID
	o.nextID++
	o.listeners = append(o.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range o.listeners {
			if l.id == id {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}
