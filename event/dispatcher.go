package event

// Dispatcher owns the FIFO queue shared by all channels bound to it.
//
// It is not safe for concurrent use.
type Dispatcher struct {
	queue    []func()
	flushing bool
}

func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Pending returns the number of queued deliveries.
func (d *Dispatcher) Pending() int { return len(d.queue) }

// Flush delivers queued messages in publish order, including messages
// published by handlers while flushing. It returns the number of messages
// delivered. Nested calls from inside a handler return 0.
func (d *Dispatcher) Flush() int {
	if d.flushing {
		return 0
	}
	d.flushing = true
	defer func() { d.flushing = false }()

	n := 0
	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		next()
		n++
	}
	d.queue = nil
	return n
}

func (d *Dispatcher) enqueue(fn func()) {
	d.queue = append(d.queue, fn)
}
