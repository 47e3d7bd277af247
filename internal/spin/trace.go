package spin

import "time"

// TraceStep - один шаг симуляции
type TraceStep struct {
	At    time.Duration // Время шага от старта
	Index int           // Подсвеченный индекс
	Speed time.Duration // Пауза до следующего шага
}

// TraceResult - полный прогон спина в симулированном времени
type TraceResult struct {
	Steps    []TraceStep
	Settled  int
	Duration time.Duration
}

// Trace прогоняет кривую замедления без таймеров: каждый следующий шаг
// происходит ровно через Speed после предыдущего.
// Результат совпадает с тем, что выдаст Engine на ManualScheduler с тем же стартовым индексом.
func Trace(n, start int, timing Timing) TraceResult {
	if n <= 0 || timing.Validate() != nil {
		return TraceResult{Settled: -1}
	}
	var (
		res   TraceResult
		at    time.Duration
		speed = timing.InitialSpeed
		next  = wrap(start, n)
	)
	for {
		current := next
		next = (next + 1) % n
		speed = timing.NextSpeed(speed, at)
		res.Steps = append(res.Steps, TraceStep{At: at, Index: current, Speed: speed})

		if at >= timing.Duration {
			res.Settled = current
			res.Duration = at
			return res
		}
		at += speed
	}
}
