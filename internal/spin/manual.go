package spin

import (
	"sync"
	"time"
)

// ManualScheduler - планировщик с виртуальным временем.
// Задачи срабатывают только при Advance/RunUntilIdle, часы двигаются ровно на момент срабатывания задачи.
// Одновременно является Clock.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner *ManualScheduler
	due   time.Time
	seq   uint64
	fn    func()
	done  bool
}

func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualScheduler) Schedule(delay time.Duration, task func()) Handle {
	if delay < 0 {
		delay = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{owner: m, due: m.now.Add(delay), seq: m.seq, fn: task}
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Cancel() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	m.removeLocked(t)
	return true
}

// Pending - количество задач, ожидающих срабатывания
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance сдвигает время на d и запускает все задачи, срок которых наступил, в порядке срока.
// Задачи, запланированные во время Advance, тоже запускаются, если укладываются в окно.
// Возвращает количество запущенных задач.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		t := m.nextLocked()
		if t == nil || t.due.After(target) {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		m.popLocked(t)
		m.mu.Unlock()

		t.fn()
		fired++
	}
}

// RunUntilIdle запускает задачи, перескакивая время к ближайшей, пока очередь не опустеет
// или не будет запущено limit задач.
func (m *ManualScheduler) RunUntilIdle(limit int) int {
	fired := 0
	for fired < limit {
		m.mu.Lock()
		t := m.nextLocked()
		if t == nil {
			m.mu.Unlock()
			return fired
		}
		m.popLocked(t)
		m.mu.Unlock()

		t.fn()
		fired++
	}
	return fired
}

func (m *ManualScheduler) nextLocked() *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *ManualScheduler) popLocked(t *manualTask) {
	t.done = true
	if t.due.After(m.now) {
		m.now = t.due
	}
	m.removeLocked(t)
}

func (m *ManualScheduler) removeLocked(t *manualTask) {
	for i, cur := range m.tasks {
		if cur == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}
