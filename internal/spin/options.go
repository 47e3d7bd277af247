package spin

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Picker выбирает стартовый индекс в [0, n)
type Picker func(n int) int

type settings struct {
	clock  Clock
	sched  Scheduler
	pick   Picker
	timing Timing
	log    zerolog.Logger
}

type Option func(*settings)

func defaultSettings() settings {
	return settings{
		clock:  SystemClock{},
		sched:  TimerScheduler{},
		pick:   rand.IntN,
		timing: DefaultTiming(),
		log:    zerolog.Nop(),
	}
}

func WithClock(c Clock) Option {
	return func(s *settings) { s.clock = c }
}

func WithScheduler(sched Scheduler) Option {
	return func(s *settings) { s.sched = sched }
}

// WithManual - виртуальное время для тестов и симуляций, планировщик служит и часами
func WithManual(m *ManualScheduler) Option {
	return func(s *settings) {
		s.clock = m
		s.sched = m
	}
}

func WithPicker(p Picker) Option {
	return func(s *settings) { s.pick = p }
}

// WithSeed - воспроизводимый выбор стартового индекса
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		s.pick = r.IntN
	}
}

func WithTiming(t Timing) Option {
	return func(s *settings) { s.timing = t }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.log = l }
}
