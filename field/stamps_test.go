package field_test

import (
	"testing"
	"time"

	"github.com/iw2rmb/formslot/field"
)

func TestStamps_Next(t *testing.T) {
	s := field.NewStamps()
	base := time.UnixMilli(1_700_000_000_000)

	steps := []struct {
		now  time.Time
		want int64
	}{
		{base, 1_700_000_000_000},
		{base, 1_700_000_000_001},
		{base.Add(-time.Second), 1_700_000_000_002},
		{base.Add(time.Second), 1_700_000_001_000},
	}
	for i, st := range steps {
		if got := s.Next(st.now).UnixMilli(); got != st.want {
			t.Fatalf("step %d: got %d, want %d", i, got, st.want)
		}
	}
}
