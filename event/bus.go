package event

import tea "github.com/charmbracelet/bubbletea"

// FlushMsg tells a Bubble Tea host to call Bus.Flush.
type FlushMsg struct{}

// Bus bundles the channels used by one form editor over a shared dispatcher,
// so that drop, remove, request and response messages keep a global order.
type Bus struct {
	d *Dispatcher

	Dropped   *Channel[FieldDropped]
	Removed   *Channel[FieldRemoved]
	Requests  *Channel[FormContextRequest]
	Responses *Channel[FormContextResponse]
}

func NewBus() *Bus {
	d := NewDispatcher()
	return &Bus{
		d:         d,
		Dropped:   NewChannel[FieldDropped](d),
		Removed:   NewChannel[FieldRemoved](d),
		Requests:  NewChannel[FormContextRequest](d),
		Responses: NewChannel[FormContextResponse](d),
	}
}

func (b *Bus) Dispatcher() *Dispatcher { return b.d }

func (b *Bus) Flush() int { return b.d.Flush() }

func (b *Bus) Pending() int { return b.d.Pending() }

// Cmd returns a command yielding FlushMsg, or nil when nothing is queued.
func (b *Bus) Cmd() tea.Cmd {
	if b.d.Pending() == 0 {
		return nil
	}
	return func() tea.Msg { return FlushMsg{} }
}
