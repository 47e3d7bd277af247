package roll

type WheelEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// WheelFrame - кадр колеса: подсвеченный индекс и окно из 5 элементов вокруг него
type WheelFrame struct {
	Session   uint64       `json:"session"`
	Index     int          `json:"index"`
	Window    []WheelEntry `json:"window"`
	SpeedMs   int64        `json:"speed_ms"`   // Пауза до следующего шага
	ElapsedMs int64        `json:"elapsed_ms"` // Время от начала броска
	Spinning  bool         `json:"spinning"`
	Settled   bool         `json:"settled"`
	Empty     bool         `json:"empty"`
}

// RollEvent - сообщение потока /roll/stream
type RollEvent struct {
	Wheel     string       `json:"wheel"` // category | game | custom
	Type      string       `json:"type"`  // frame | settled | cancelled
	Session   uint64       `json:"session"`
	Index     int          `json:"index"`
	Window    []WheelEntry `json:"window"`
	SpeedMs   int64        `json:"speed_ms"`
	ElapsedMs int64        `json:"elapsed_ms"`
	Spinning  bool         `json:"spinning"`
	Settled   bool         `json:"settled"`
	Item      *WheelEntry  `json:"item,omitempty"` // Результат, только для settled
}

type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Games    []string `json:"games"`
	Disabled bool     `json:"disabled"`
}

type Game struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
}

type ToggleResponse struct {
	ID       string `json:"id"`
	Disabled bool   `json:"disabled"`
}

type StateResponse struct {
	Category           WheelFrame  `json:"category"`
	Game               WheelFrame  `json:"game"`
	Custom             WheelFrame  `json:"custom"`
	SelectedCategory   *Category   `json:"selected_category"`
	DisabledCategories []string    `json:"disabled_categories"`
	CustomWheelID      string      `json:"custom_wheel_id,omitempty"`
	GameResult         string      `json:"game_result,omitempty"`
	CustomResult       *WheelEntry `json:"custom_result,omitempty"`
}

// StateMessage - первое сообщение потока после подключения
type StateMessage struct {
	Type  string        `json:"type"` // всегда "state"
	State StateResponse `json:"state"`
}
