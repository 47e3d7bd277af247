package spin

import (
	"testing"
	"time"
)

func TestManualScheduler_FiresInOrder(t *testing.T) {
	m := NewManualScheduler(time.Unix(0, 0))
	var order []int
	m.Schedule(30*time.Millisecond, func() { order = append(order, 3) })
	m.Schedule(10*time.Millisecond, func() { order = append(order, 1) })
	m.Schedule(10*time.Millisecond, func() { order = append(order, 2) })

	if fired := m.Advance(20 * time.Millisecond); fired != 2 {
		t.Errorf("fired %d, want 2", fired)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order %v, want [1 2]", order)
	}
	if got := m.Now(); !got.Equal(time.Unix(0, 0).Add(20 * time.Millisecond)) {
		t.Errorf("now %v", got)
	}
	m.Advance(time.Second)
	if len(order) != 3 {
		t.Errorf("order %v, want 3 entries", order)
	}
}

func TestManualScheduler_Cancel(t *testing.T) {
	m := NewManualScheduler(time.Unix(0, 0))
	fired := false
	h := m.Schedule(time.Millisecond, func() { fired = true })

	if !h.Cancel() {
		t.Error("first Cancel should succeed")
	}
	if h.Cancel() {
		t.Error("second Cancel should report false")
	}
	m.Advance(time.Second)
	if fired {
		t.Error("cancelled task fired")
	}
}

func TestManualScheduler_TaskSchedulesTask(t *testing.T) {
	m := NewManualScheduler(time.Unix(0, 0))
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			m.Schedule(10*time.Millisecond, tick)
		}
	}
	m.Schedule(0, tick)

	if fired := m.RunUntilIdle(100); fired != 5 {
		t.Errorf("fired %d, want 5", fired)
	}
	if got := m.Now().Sub(time.Unix(0, 0)); got != 40*time.Millisecond {
		t.Errorf("virtual time %v, want 40ms", got)
	}
}
