package event

// Publisher is the sending side of a typed channel.
type Publisher[T any] interface {
	Publish(msg T)
}

// Subscriber is the receiving side of a typed channel.
type Subscriber[T any] interface {
	Subscribe(fn func(T)) Subscription
}

// Subscription detaches a handler. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// Channel is a multi-subscriber channel for one message type.
type Channel[T any] struct {
	d      *Dispatcher
	subs   []*subscription[T]
	nextID uint64
}

// NewChannel binds a new channel to d.
func NewChannel[T any](d *Dispatcher) *Channel[T] {
	if d == nil {
		d = NewDispatcher()
	}
	return &Channel[T]{d: d}
}

// Publish queues msg for every handler subscribed at delivery time.
func (c *Channel[T]) Publish(msg T) {
	c.d.enqueue(func() { c.deliver(msg) })
}

func (c *Channel[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return noopSubscription{}
	}
	c.nextID++
	s := &subscription[T]{id: c.nextID, ch: c, fn: fn, active: true}
	c.subs = append(c.subs, s)
	return s
}

// Subscribers returns the number of live handlers.
func (c *Channel[T]) Subscribers() int { return len(c.subs) }

func (c *Channel[T]) deliver(msg T) {
	snapshot := append([]*subscription[T](nil), c.subs...)
	for _, s := range snapshot {
		// A handler earlier in this delivery may have unsubscribed s.
		if !s.active {
			continue
		}
		s.fn(msg)
	}
}

func (c *Channel[T]) remove(id uint64) {
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

type subscription[T any] struct {
	id     uint64
	ch     *Channel[T]
	fn     func(T)
	active bool
}

func (s *subscription[T]) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	s.ch.remove(s.id)
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}
