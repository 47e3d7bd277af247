package spin

import "time"

// Clock - источник текущего времени для сессии спина
type Clock interface {
	Now() time.Time
}

// Handle - ручка отложенной задачи, позволяет отменить ее до срабатывания
type Handle interface {
	// Cancel возвращает true, если задача была отменена до запуска
	Cancel() bool
}

// Scheduler - планировщик одноразовых отложенных задач
type Scheduler interface {
	Schedule(delay time.Duration, task func()) Handle
}

// SystemClock - реальные часы
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimerScheduler - планировщик на time.AfterFunc
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, task func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return timerHandle{t: time.AfterFunc(delay, task)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.t.Stop()
}
