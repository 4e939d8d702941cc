package application

import "sync"

// LogoutBus fans a logout signal out to independent stores. Cart and
// wishlist subscribe to it instead of referencing the session store
// directly, which keeps the dependency graph acyclic: the session side
// publishes, the synchronizers listen, neither imports the other.
type LogoutBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func NewLogoutBus() *LogoutBus {
	return &LogoutBus{subs: map[int]func(){}}
}

// Subscribe registers fn and returns an unsubscribe function. Unsubscribing
// twice is a no-op.
func (b *LogoutBus) Subscribe(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish invokes every subscriber. Subscribers are called outside the bus
// lock so they may subscribe or unsubscribe from within the callback.
func (b *LogoutBus) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
