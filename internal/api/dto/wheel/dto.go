package wheel

type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Wheel struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Icon    string   `json:"icon"`
	Options []Option `json:"options"`
}

// PatchRequest - незаданные поля не меняются, пустой options очищает колесо
type PatchRequest struct {
	Name    *string   `json:"name"`
	Icon    *string   `json:"icon"`
	Options *[]Option `json:"options"`
}
