package spin

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultInitialSpeed Пауза между шагами в начале спина (чем меньше, тем быстрее)
	DefaultInitialSpeed = 40 * time.Millisecond
	// DefaultMaxSpeed Максимальная пауза между шагами
	DefaultMaxSpeed = 800 * time.Millisecond
	// DefaultDuration Общая длительность спина
	DefaultDuration = 10 * time.Second
	// DefaultSlowdownStart Через сколько после старта начинаем замедляться
	DefaultSlowdownStart = 3 * time.Second
	// DefaultFinalSlowdown Длина финального резкого замедления
	DefaultFinalSlowdown = 3 * time.Second
)

var ErrInvalidTiming = errors.New("invalid spin timing")

// Timing - параметры кривой замедления колеса.
// Все значения в одних единицах (time.Duration), Speed - это пауза до следующего шага.
type Timing struct {
	InitialSpeed  time.Duration `yaml:"initial_speed"`
	MaxSpeed      time.Duration `yaml:"max_speed"`
	Duration      time.Duration `yaml:"duration"`
	SlowdownStart time.Duration `yaml:"slowdown_start"`
	FinalSlowdown time.Duration `yaml:"final_slowdown"`

	// Прирост паузы на среднем участке: MidStep + MidRamp*p
	MidStep time.Duration `yaml:"mid_step"`
	MidRamp time.Duration `yaml:"mid_ramp"`
	// Прирост паузы на финальном участке: FinalStep + FinalRamp*q
	FinalStep time.Duration `yaml:"final_step"`
	FinalRamp time.Duration `yaml:"final_ramp"`
}

// DefaultTiming - стандартная кривая: 10 секунд, плавное замедление после 3-й секунды
// и резкое в последние 3 секунды.
func DefaultTiming() Timing {
	return Timing{
		InitialSpeed:  DefaultInitialSpeed,
		MaxSpeed:      DefaultMaxSpeed,
		Duration:      DefaultDuration,
		SlowdownStart: DefaultSlowdownStart,
		FinalSlowdown: DefaultFinalSlowdown,
		MidStep:       15 * time.Millisecond,
		MidRamp:       50 * time.Millisecond,
		FinalStep:     30 * time.Millisecond,
		FinalRamp:     200 * time.Millisecond,
	}
}

// Validate - проверка согласованности параметров
func (t Timing) Validate() error {
	if t.InitialSpeed <= 0 || t.MaxSpeed <= 0 || t.Duration <= 0 {
		return fmt.Errorf("%w: speeds and duration must be positive", ErrInvalidTiming)
	}
	if t.InitialSpeed > t.MaxSpeed {
		return fmt.Errorf("%w: initial speed %v exceeds max speed %v", ErrInvalidTiming, t.InitialSpeed, t.MaxSpeed)
	}
	if t.SlowdownStart < 0 || t.FinalSlowdown <= 0 {
		return fmt.Errorf("%w: slowdown windows must be non-negative", ErrInvalidTiming)
	}
	if t.SlowdownStart+t.FinalSlowdown > t.Duration {
		return fmt.Errorf("%w: slowdown windows overlap (%v + %v > %v)", ErrInvalidTiming, t.SlowdownStart, t.FinalSlowdown, t.Duration)
	}
	if t.MidStep < 0 || t.MidRamp < 0 || t.FinalStep < 0 || t.FinalRamp < 0 {
		return fmt.Errorf("%w: ramp steps must be non-negative", ErrInvalidTiming)
	}
	return nil
}

// NextSpeed - пауза до следующего шага после шага на отметке elapsed.
// Никогда не уменьшает скорость и не превышает MaxSpeed.
func (t Timing) NextSpeed(speed, elapsed time.Duration) time.Duration {
	// Крейсерский участок
	if elapsed <= t.SlowdownStart {
		return speed
	}

	var next time.Duration
	if elapsed <= t.Duration-t.FinalSlowdown {
		// Плавное замедление
		p := float64(elapsed-t.SlowdownStart) / float64(t.Duration-t.SlowdownStart)
		p = min(max(p, 0), 1)
		next = speed + t.MidStep + time.Duration(p*float64(t.MidRamp))
	} else {
		// Финальное резкое замедление, q растет от 0 до 1
		q := 1 - float64(t.Duration-elapsed)/float64(t.FinalSlowdown)
		next = speed + t.FinalStep + time.Duration(q*float64(t.FinalRamp))
	}

	if next < speed {
		return speed
	}
	return min(next, t.MaxSpeed)
}
