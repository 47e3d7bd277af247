package spin

import (
	"sync"
	"time"
)

// State - состояние колеса
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	if s == Spinning {
		return "spinning"
	}
	return "idle"
}

// Frame - то, что нужно отрисовать на текущем шаге
type Frame[T any] struct {
	Session  uint64
	Index    int
	Window   []T
	Speed    time.Duration
	Elapsed  time.Duration
	Spinning bool
	Settled  bool
	Empty    bool
}

// Hooks - обработчики событий колеса.
// Вызываются вне основной блокировки: из них можно звать Press, SetStart, Snapshot и State,
// но не Close и SetItems.
type Hooks[T any] struct {
	OnFrame     func(Frame[T])
	OnSettled   func(T)
	OnCancelled func(session uint64)
}

type session[T any] struct {
	id        uint64
	items     []T
	startedAt time.Time
	next      int
	last      int
	speed     time.Duration
	handle    Handle
}

// Engine - колесо случайного выбора с замедлением.
// Одновременно живет не больше одной сессии спина.
type Engine[T any] struct {
	// emitMu сериализует вызовы хуков с Close/SetItems,
	// чтобы после их возврата брошенная сессия не могла ничего опубликовать
	emitMu sync.Mutex
	mu     sync.Mutex

	cfg   settings
	hooks Hooks[T]

	items  []T
	level  bool
	closed bool
	seq    uint64
	sess   *session[T]
	frame  Frame[T]
}

// NewEngine создает колесо. Возвращает ошибку, если параметры замедления несогласованы.
func NewEngine[T any](hooks Hooks[T], opts ...Option) (*Engine[T], error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.timing.Validate(); err != nil {
		return nil, err
	}
	return &Engine[T]{
		cfg:   cfg,
		hooks: hooks,
		frame: Frame[T]{Empty: true},
	}, nil
}

// SetItems заменяет список. Если колесо крутится, сессия отменяется без результата.
func (e *Engine[T]) SetItems(items []T) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	cancelled, ok := e.cancelLocked()
	e.items = append([]T(nil), items...)
	if len(e.items) == 0 {
		e.frame = Frame[T]{Empty: true}
	} else {
		e.frame = Frame[T]{Index: 0, Window: Window(e.items, 0)}
	}
	e.mu.Unlock()

	if ok {
		e.emitCancelled(cancelled)
	}
}

// SetStart - сигнал старта по фронту: сессия начинается только при переходе false -> true.
// Удержание true, как и повторный фронт во время спина, ничего не делает.
// Возвращает true, если сессия началась.
func (e *Engine[T]) SetStart(start bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setStartLocked(start)
}

// Press - полный импульс false -> true, как нажатие кнопки
func (e *Engine[T]) Press() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.level = false
	return e.setStartLocked(true)
}

// State - текущее состояние колеса
func (e *Engine[T]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess != nil {
		return Spinning
	}
	return Idle
}

// Snapshot - последний опубликованный кадр
func (e *Engine[T]) Snapshot() Frame[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	f := e.frame
	f.Window = append([]T(nil), e.frame.Window...)
	return f
}

// Close останавливает колесо. После возврата хуки больше не вызываются.
func (e *Engine[T]) Close() {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	cancelled, ok := e.cancelLocked()
	e.closed = true
	e.mu.Unlock()

	if ok {
		e.emitCancelled(cancelled)
	}
}

func (e *Engine[T]) setStartLocked(start bool) bool {
	rising := start && !e.level
	e.level = start
	if !rising || e.closed || e.sess != nil {
		return false
	}
	if len(e.items) == 0 {
		e.frame = Frame[T]{Empty: true}
		e.cfg.log.Debug().Msg("spin skipped: nothing to select")
		return false
	}

	n := len(e.items)
	start0 := wrap(e.cfg.pick(n), n)

	e.seq++
	id := e.seq
	s := &session[T]{
		id:        id,
		items:     append([]T(nil), e.items...),
		startedAt: e.cfg.clock.Now(),
		next:      start0,
		last:      start0,
		speed:     e.cfg.timing.InitialSpeed,
	}
	// Первый шаг тоже идет через планировщик, чтобы хуки не вызывались под блокировкой вызывающего
	s.handle = e.cfg.sched.Schedule(0, func() { e.step(id) })
	e.sess = s
	e.frame = Frame[T]{
		Session:  id,
		Index:    start0,
		Window:   Window(s.items, start0),
		Speed:    s.speed,
		Spinning: true,
	}

	e.cfg.log.Debug().
		Uint64("session", id).
		Int("items", n).
		Int("start_index", start0).
		Msg("spin started")
	return true
}

func (e *Engine[T]) step(id uint64) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	s := e.sess
	// Задача от отмененной или завершенной сессии
	if s == nil || s.id != id {
		e.mu.Unlock()
		return
	}

	elapsed := e.cfg.clock.Now().Sub(s.startedAt)

	// Публикуем текущий индекс и двигаемся дальше
	s.last = s.next
	s.next = (s.next + 1) % len(s.items)
	s.speed = e.cfg.timing.NextSpeed(s.speed, elapsed)

	frame := Frame[T]{
		Session:  id,
		Index:    s.last,
		Window:   Window(s.items, s.last),
		Speed:    s.speed,
		Elapsed:  elapsed,
		Spinning: true,
	}

	if elapsed < e.cfg.timing.Duration {
		s.handle = e.cfg.sched.Schedule(s.speed, func() { e.step(id) })
		e.frame = frame
		e.mu.Unlock()

		e.emitFrame(frame)
		return
	}

	// Время вышло: результат - последний показанный индекс, а не следующий
	settled := s.items[s.last]
	final := frame
	final.Window = Window(s.items, s.last)
	final.Spinning = false
	final.Settled = true
	e.sess = nil
	e.frame = final
	e.mu.Unlock()

	e.cfg.log.Debug().
		Uint64("session", id).
		Int("index", final.Index).
		Dur("elapsed", elapsed).
		Msg("spin settled")

	e.emitFrame(frame)
	e.emitFrame(final)
	if e.hooks.OnSettled != nil {
		e.hooks.OnSettled(settled)
	}
}

// cancelLocked снимает активную сессию вместе с ее таймером
func (e *Engine[T]) cancelLocked() (uint64, bool) {
	s := e.sess
	if s == nil {
		return 0, false
	}
	if s.handle != nil {
		s.handle.Cancel()
	}
	e.sess = nil
	e.frame.Spinning = false
	e.cfg.log.Debug().Uint64("session", s.id).Msg("spin cancelled")
	return s.id, true
}

func (e *Engine[T]) emitFrame(f Frame[T]) {
	if e.hooks.OnFrame != nil {
		e.hooks.OnFrame(f)
	}
}

func (e *Engine[T]) emitCancelled(id uint64) {
	if e.hooks.OnCancelled != nil {
		e.hooks.OnCancelled(id)
	}
}
