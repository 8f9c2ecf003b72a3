package field

import "time"

// Stamps hands out millisecond timestamps for unbound field names. Each
// stamp is the clock reading, moved forward just enough to stay after the
// previous stamp, so placeholders dropped within the same millisecond still
// get distinct names. Components placed on one canvas share one Stamps.
//
// Stamps is not safe for concurrent use.
type Stamps struct {
	last int64
}

func NewStamps() *Stamps { return &Stamps{} }

// Next returns now, or the millisecond after the previous stamp when now
// does not move past it.
func (s *Stamps) Next(now time.Time) time.Time {
	ms := now.UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return time.UnixMilli(ms)
}
