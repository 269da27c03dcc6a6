package input

import (
	"sort"
	"sync"
)

// Dispatcher is an in-process PointerSource that fans events out to its subscribers in subscription order.
// Safe for concurrent use. Handlers are invoked without the dispatcher lock held, so a handler may
// subscribe or unsubscribe while being called.
type Dispatcher struct {
	mu       *sync.Mutex
	nextID   uint64
	handlers map[uint64]PointerHandler
}

var _ PointerSource = &Dispatcher{}

// NewDispatcher creates an empty Dispatcher.
//
// Returns:
//   - *Dispatcher: the dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		mu:       &sync.Mutex{},
		nextID:   1,
		handlers: make(map[uint64]PointerHandler),
	}
}

// SubscribePointer registers h and returns a subscription that removes it.
func (d *Dispatcher) SubscribePointer(h PointerHandler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.handlers[id] = h
	return &dispatcherSubscription{
		once: &sync.Once{},
		release: func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.handlers, id)
		},
	}
}

// Emit delivers ev to every current subscriber.
//
// Parameters:
//   - ev: the event to deliver
func (d *Dispatcher) Emit(ev PointerEvent) {
	for _, h := range d.snapshot() {
		h(ev)
	}
}

// Len returns the number of live subscriptions.
//
// Returns:
//   - int: the subscriber count
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}

// snapshot copies the handlers in subscription order so Emit can run them unlocked.
func (d *Dispatcher) snapshot() []PointerHandler {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]uint64, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]PointerHandler, len(ids))
	for i, id := range ids {
		out[i] = d.handlers[id]
	}
	return out
}

type dispatcherSubscription struct {
	once    *sync.Once
	release func()
}

func (s *dispatcherSubscription) Close() error {
	s.once.Do(s.release)
	return nil
}
