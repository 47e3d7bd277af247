package model

import "time"

// RollType - какое колесо крутили
type RollType string

const (
	RollCategory     RollType = "category"
	RollGame         RollType = "game"
	RollCustomOption RollType = "custom-option"
)

// RollEntry - запись истории бросков
type RollEntry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Type         RollType  `json:"type"`
	Category     string    `json:"category,omitempty"`
	CategoryIcon string    `json:"category_icon,omitempty"`
	Game         string    `json:"game,omitempty"`
}

// WheelKind - одно из трех колес рулетки
type WheelKind string

const (
	WheelCategory WheelKind = "category"
	WheelGame     WheelKind = "game"
	WheelCustom   WheelKind = "custom"
)

// RollEventType - тип события колеса для подписчиков
type RollEventType string

const (
	EventFrame     RollEventType = "frame"
	EventSettled   RollEventType = "settled"
	EventCancelled RollEventType = "cancelled"
)

// WheelEntry - элемент колеса в общем виде для отрисовки
type WheelEntry struct {
	ID   string
	Name string
	Icon string
}

// WheelFrame - снимок колеса
type WheelFrame struct {
	Session  uint64
	Index    int
	Window   []WheelEntry
	Speed    time.Duration
	Elapsed  time.Duration
	Spinning bool
	Settled  bool
	Empty    bool
}

// RollEvent - событие колеса для подписчиков
type RollEvent struct {
	Wheel WheelKind
	Type  RollEventType
	Frame WheelFrame
	Item  *WheelEntry
}

// RouletteState - состояние рулетки целиком
type RouletteState struct {
	Category           WheelFrame
	Game               WheelFrame
	Custom             WheelFrame
	SelectedCategory   *Category
	DisabledCategories []string
	CustomWheelID      string
	GameResult         string
	CustomResult       *WheelOption
}
