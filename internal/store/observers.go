package store

import "sync"

// observers keeps listeners in subscription order. Unsubscribing twice is harmless.
//
// Every mutation takes a ticket while the store lock is held and deliveries
// run strictly in ticket order, so listeners see snapshots in the order the
// mutations were applied even when mutations race.
type observers[T any] struct {
	mu        sync.Mutex
	turn      *sync.Cond
	issued    uint64
	delivered uint64
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func (o *observers[T]) subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, listener[T]{id: id, fn: fn})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		for i, l := range o.listeners {
			if l.id == id {
				o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}

// publish must be called with the store lock held. It releases that lock
// through unlock and delivers v after every earlier snapshot. Listeners may
// read the store but must not mutate it.
func (o *observers[T]) publish(v T, unlock func()) {
	o.mu.Lock()
	o.issued++
	ticket := o.issued
	o.mu.Unlock()

	unlock()
	o.deliver(ticket, v)
}

func (o *observers[T]) deliver(ticket uint64, v T) {
	o.mu.Lock()
	if o.turn == nil {
		o.turn = sync.NewCond(&o.mu)
	}
	for o.delivered != ticket-1 {
		o.turn.Wait()
	}
	fns := make([]func(T), 0, len(o.listeners))
	for _, l := range o.listeners {
		fns = append(fns, l.fn)
	}
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.delivered = ticket
		o.turn.Broadcast()
		o.mu.Unlock()
	}()

	for _, fn := range fns {
		fn(v)
	}
}
