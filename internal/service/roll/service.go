package roll

import (
	"context"
	"errors"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	"game_roulette/internal/service"
	"game_roulette/internal/spin"
	"game_roulette/pkg/realtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrBusy          = errors.New("wheel is already spinning")
	ErrNothingToRoll = errors.New("nothing to roll")
	ErrNoCategory    = errors.New("no category selected")
)

// WheelProvider - откуда брать пользовательское колесо по ID
type WheelProvider interface {
	Get(ctx context.Context, id string) (*model.Wheel, error)
}

// Deps - зависимости сервиса бросков
type Deps struct {
	Categories repository.CategoryRepository
	Wheels     WheelProvider
	// OnRollRecorded вызывается один раз на каждый завершенный бросок
	OnRollRecorded func(model.RollEntry)
	// EngineOptions - общие настройки колес: тайминг, планировщик, выбор старта
	EngineOptions []spin.Option
	Logger        *zerolog.Logger
	BusBuffer     int
}

type serv struct {
	// rollMu сериализует запросы на бросок.
	// stateMu защищает состояние, которое меняют обработчики колес.
	// Порядок: rollMu, затем stateMu; под stateMu не вызываем методы колес
	rollMu  sync.Mutex
	stateMu sync.Mutex

	categories repository.CategoryRepository
	wheels     WheelProvider
	onRecorded func(model.RollEntry)
	bus        *realtime.Broadcaster[model.RollEvent]
	log        zerolog.Logger

	categoryWheel *spin.Engine[model.Category]
	gameWheel     *spin.Engine[model.Game]
	customWheel   *spin.Engine[model.WheelOption]

	selected     *model.Category
	disabled     map[string]struct{}
	gameResult   string
	gameCategory *model.Category
	custom       *model.Wheel
	customResult *model.WheelOption
}

// NewRollService - три колеса рулетки: категории, игры и пользовательские варианты
func NewRollService(deps Deps) (service.RollService, error) {
	logger := log.Logger
	if deps.Logger != nil {
		logger = *deps.Logger
	}
	onRecorded := deps.OnRollRecorded
	if onRecorded == nil {
		onRecorded = func(model.RollEntry) {}
	}

	s := &serv{
		categories: deps.Categories,
		wheels:     deps.Wheels,
		onRecorded: onRecorded,
		bus:        realtime.NewBroadcaster[model.RollEvent](deps.BusBuffer),
		log:        logger,
		disabled:   make(map[string]struct{}),
	}

	var err error
	s.categoryWheel, err = spin.NewEngine(s.categoryHooks(), s.engineOptions(deps, model.WheelCategory)...)
	if err != nil {
		return nil, err
	}
	s.gameWheel, err = spin.NewEngine(s.gameHooks(), s.engineOptions(deps, model.WheelGame)...)
	if err != nil {
		return nil, err
	}
	s.customWheel, err = spin.NewEngine(s.customHooks(), s.engineOptions(deps, model.WheelCustom)...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *serv) engineOptions(deps Deps, kind model.WheelKind) []spin.Option {
	opts := append([]spin.Option(nil), deps.EngineOptions...)
	return append(opts, spin.WithLogger(s.log.With().Str("wheel", string(kind)).Logger()))
}

func (s *serv) Subscribe() chan model.RollEvent {
	return s.bus.Subscribe()
}

func (s *serv) Unsubscribe(ch chan model.RollEvent) {
	s.bus.Unsubscribe(ch)
}

// Close останавливает все колеса, незавершенные броски не записываются
func (s *serv) Close() {
	s.rollMu.Lock()
	defer s.rollMu.Unlock()

	s.categoryWheel.Close()
	s.gameWheel.Close()
	s.customWheel.Close()
	s.bus.Close()
}

func (s *serv) isDisabled(id string) bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	_, ok := s.disabled[id]
	return ok
}
