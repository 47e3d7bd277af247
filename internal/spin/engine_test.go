package spin

import (
	"sync"
	"testing"
	"time"
)

var letters = []string{"A", "B", "C", "D", "E"}

type recorder[T any] struct {
	mu        sync.Mutex
	frames    []Frame[T]
	settled   []T
	cancelled []uint64
}

func (r *recorder[T]) hooks() Hooks[T] {
	return Hooks[T]{
		OnFrame: func(f Frame[T]) {
			r.mu.Lock()
			r.frames = append(r.frames, f)
			r.mu.Unlock()
		},
		OnSettled: func(v T) {
			r.mu.Lock()
			r.settled = append(r.settled, v)
			r.mu.Unlock()
		},
		OnCancelled: func(id uint64) {
			r.mu.Lock()
			r.cancelled = append(r.cancelled, id)
			r.mu.Unlock()
		},
	}
}

func fixedPicker(i int) Picker {
	return func(int) int { return i }
}

func newManualEngine[T any](t *testing.T, rec *recorder[T], opts ...Option) (*Engine[T], *ManualScheduler) {
	t.Helper()
	m := NewManualScheduler(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e, err := NewEngine(rec.hooks(), append([]Option{WithManual(m)}, opts...)...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, m
}

func TestEngine_SettlesOnTraceIndex(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec, WithPicker(fixedPicker(2)))
	e.SetItems(letters)
	start := m.Now()

	if !e.Press() {
		t.Fatal("Press should start a session")
	}
	if e.State() != Spinning {
		t.Fatalf("state %v, want spinning", e.State())
	}
	m.RunUntilIdle(10000)

	if len(rec.settled) != 1 {
		t.Fatalf("settled %d times, want 1", len(rec.settled))
	}
	if rec.settled[0] != "B" {
		t.Errorf("settled on %q, want B", rec.settled[0])
	}

	trace := Trace(len(letters), 2, DefaultTiming())
	if len(trace.Steps) != 100 {
		t.Fatalf("trace has %d steps, want 100", len(trace.Steps))
	}
	if trace.Settled != 1 {
		t.Errorf("trace settled %d, want 1", trace.Settled)
	}
	// Каждый шаг публикует кадр, плюс финальный кадр
	if len(rec.frames) != len(trace.Steps)+1 {
		t.Fatalf("got %d frames, want %d", len(rec.frames), len(trace.Steps)+1)
	}
	for i, step := range trace.Steps {
		f := rec.frames[i]
		if f.Index != step.Index || f.Elapsed != step.At || f.Speed != step.Speed {
			t.Fatalf("frame %d = {%d %v %v}, trace {%d %v %v}", i, f.Index, f.Elapsed, f.Speed, step.Index, step.At, step.Speed)
		}
	}

	final := rec.frames[len(rec.frames)-1]
	if !final.Settled || final.Spinning || final.Index != 1 {
		t.Errorf("final frame %+v, want settled on index 1", final)
	}
	if got := m.Now().Sub(start); got != trace.Duration || got != 10745542021*time.Nanosecond {
		t.Errorf("settled after %v, want %v", got, trace.Duration)
	}
	if e.State() != Idle {
		t.Errorf("state %v after settle, want idle", e.State())
	}
}

func TestEngine_SingleItemAlwaysWins(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec, WithSeed(7))
	e.SetItems([]string{"only"})
	e.Press()
	m.RunUntilIdle(10000)

	if len(rec.settled) != 1 || rec.settled[0] != "only" {
		t.Fatalf("settled %v, want [only]", rec.settled)
	}
}

func TestEngine_IndexInRangeAndSpeedMonotonic(t *testing.T) {
	timing := DefaultTiming()
	for n := 1; n <= 8; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i * 10
		}
		rec := &recorder[int]{}
		e, m := newManualEngine(t, rec, WithSeed(uint64(n)))
		e.SetItems(items)
		e.Press()
		m.RunUntilIdle(10000)

		if len(rec.settled) != 1 {
			t.Fatalf("n=%d: settled %d times", n, len(rec.settled))
		}
		prev := timing.InitialSpeed
		for _, f := range rec.frames {
			if f.Index < 0 || f.Index >= n {
				t.Fatalf("n=%d: index %d out of range", n, f.Index)
			}
			if len(f.Window) != WindowSize {
				t.Fatalf("n=%d: window size %d", n, len(f.Window))
			}
			if f.Window[WindowSize/2] != items[f.Index] {
				t.Fatalf("n=%d: window center %d, want %d", n, f.Window[WindowSize/2], items[f.Index])
			}
			if f.Speed < prev || f.Speed > timing.MaxSpeed {
				t.Fatalf("n=%d: speed %v after %v", n, f.Speed, prev)
			}
			prev = f.Speed
		}
		last := rec.frames[len(rec.frames)-1]
		if rec.settled[0] != items[last.Index] {
			t.Errorf("n=%d: settled %d, last frame shows %d", n, rec.settled[0], items[last.Index])
		}
	}
}

func TestEngine_HeldStartDoesNotRestart(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec, WithPicker(fixedPicker(0)))
	e.SetItems(letters)

	if !e.SetStart(true) {
		t.Fatal("rising edge should start")
	}
	m.Advance(2 * time.Second)
	if e.SetStart(true) {
		t.Error("held start must not start a second session")
	}
	// Новый фронт во время спина тоже игнорируется
	e.SetStart(false)
	if e.SetStart(true) {
		t.Error("edge during an active session must be ignored")
	}
	if e.Press() {
		t.Error("Press during an active session must be ignored")
	}
	m.RunUntilIdle(10000)

	if len(rec.settled) != 1 {
		t.Fatalf("settled %d times, want 1", len(rec.settled))
	}
	want := Trace(len(letters), 0, DefaultTiming())
	if len(rec.frames) != len(want.Steps)+1 {
		t.Errorf("got %d frames, want %d: extra presses changed the schedule", len(rec.frames), len(want.Steps)+1)
	}
}

func TestEngine_SetItemsCancelsActiveSession(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec)
	e.SetItems(letters)
	e.Press()
	m.Advance(time.Second)

	e.SetItems([]string{"X", "Y"})
	if e.State() != Idle {
		t.Fatalf("state %v, want idle after list replacement", e.State())
	}
	if m.Pending() != 0 {
		t.Errorf("pending timers %d, want 0", m.Pending())
	}
	framesBefore := len(rec.frames)
	m.RunUntilIdle(10000)
	m.Advance(time.Minute)

	if len(rec.settled) != 0 {
		t.Errorf("abandoned session settled %v", rec.settled)
	}
	if len(rec.frames) != framesBefore {
		t.Errorf("abandoned session published %d more frames", len(rec.frames)-framesBefore)
	}
	if len(rec.cancelled) != 1 {
		t.Errorf("cancelled %d times, want 1", len(rec.cancelled))
	}

	snap := e.Snapshot()
	if snap.Spinning || snap.Index != 0 || snap.Window[2] != "X" {
		t.Errorf("snapshot after replacement %+v", snap)
	}
}

func TestEngine_CloseStopsEverything(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec)
	e.SetItems(letters)
	e.Press()
	m.Advance(500 * time.Millisecond)

	e.Close()
	m.RunUntilIdle(10000)

	if len(rec.settled) != 0 {
		t.Errorf("closed engine settled %v", rec.settled)
	}
	if e.Press() {
		t.Error("Press after Close must not start")
	}
	if m.Pending() != 0 {
		t.Errorf("pending timers %d after Close", m.Pending())
	}
}

func TestEngine_StaleTaskIsIgnored(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec, WithPicker(fixedPicker(0)))
	e.SetItems(letters)
	e.Press()
	m.Advance(0)

	// Задача, которую таймер успел запустить до отмены
	e.step(e.seq + 41)
	if len(rec.frames) != 1 {
		t.Errorf("stale task published a frame: %d frames", len(rec.frames))
	}
}

func TestEngine_EmptyListNeverStarts(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec)
	e.SetItems(nil)

	if e.Press() {
		t.Error("Press on empty list must not start")
	}
	if e.SetStart(true) {
		t.Error("SetStart on empty list must not start")
	}
	if m.Pending() != 0 {
		t.Errorf("empty list scheduled %d timers", m.Pending())
	}
	m.RunUntilIdle(100)
	if len(rec.settled) != 0 || len(rec.frames) != 0 {
		t.Errorf("empty list produced frames=%d settled=%d", len(rec.frames), len(rec.settled))
	}
	if !e.Snapshot().Empty {
		t.Error("snapshot should report the empty state")
	}
}

func TestEngine_ListIsSnapshottedAtStart(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec, WithPicker(fixedPicker(2)))
	items := append([]string(nil), letters...)
	e.SetItems(items)
	e.Press()

	items[1] = "mutated"
	m.RunUntilIdle(10000)

	if len(rec.settled) != 1 || rec.settled[0] != "B" {
		t.Errorf("settled %v, want [B]", rec.settled)
	}
}

func TestEngine_SecondSpinAfterSettle(t *testing.T) {
	rec := &recorder[string]{}
	e, m := newManualEngine(t, rec, WithSeed(3))
	e.SetItems(letters)

	e.Press()
	m.RunUntilIdle(10000)
	if !e.Press() {
		t.Fatal("Press after settle should start a new session")
	}
	m.RunUntilIdle(10000)

	if len(rec.settled) != 2 {
		t.Errorf("settled %d times, want 2", len(rec.settled))
	}
}

func TestEngine_PressFromSettleHook(t *testing.T) {
	m := NewManualScheduler(time.Unix(0, 0))
	var (
		e     *Engine[string]
		count int
	)
	e, err := NewEngine(Hooks[string]{
		OnSettled: func(string) {
			count++
			if count == 1 {
				e.Press()
			}
		},
	}, WithManual(m))
	if err != nil {
		t.Fatal(err)
	}
	e.SetItems(letters)
	e.Press()
	m.RunUntilIdle(10000)

	if count != 2 {
		t.Errorf("settled %d times, want 2", count)
	}
}

func TestEngine_TimerScheduler(t *testing.T) {
	timing := Timing{
		InitialSpeed:  time.Millisecond,
		MaxSpeed:      5 * time.Millisecond,
		Duration:      30 * time.Millisecond,
		SlowdownStart: 10 * time.Millisecond,
		FinalSlowdown: 10 * time.Millisecond,
		MidStep:       time.Millisecond,
		FinalStep:     2 * time.Millisecond,
	}
	done := make(chan string, 1)
	e, err := NewEngine(Hooks[string]{
		OnSettled: func(s string) { done <- s },
	}, WithTiming(timing))
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()
	e.SetItems(letters)
	e.Press()

	select {
	case got := <-done:
		found := false
		for _, l := range letters {
			found = found || l == got
		}
		if !found {
			t.Errorf("settled on %q, not in list", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("spin did not settle")
	}
}

func TestNewEngine_InvalidTiming(t *testing.T) {
	timing := DefaultTiming()
	timing.InitialSpeed = 0
	if _, err := NewEngine(Hooks[int]{}, WithTiming(timing)); err == nil {
		t.Error("expected error for zero initial speed")
	}
}

func TestEngine_SnapshotSpinningRightAfterPress(t *testing.T) {
	rec := &recorder[string]{}
	e, _ := newManualEngine(t, rec, WithPicker(fixedPicker(3)))
	e.SetItems(letters)
	e.Press()

	snap := e.Snapshot()
	if !snap.Spinning || snap.Index != 3 || snap.Window[2] != "D" {
		t.Errorf("snapshot before the first step %+v", snap)
	}
	if len(rec.frames) != 0 {
		t.Errorf("frames published before the scheduler ran: %d", len(rec.frames))
	}
}
