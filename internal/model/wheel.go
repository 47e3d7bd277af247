package model

// Wheel - пользовательское колесо с вариантами
type Wheel struct {
	ID      string
	Name    string
	Icon    string
	Options []WheelOption
}

// WheelOption - вариант на пользовательском колесе, порядок в Wheel.Options сохраняется в БД
type WheelOption struct {
	ID   string
	Name string
	Icon string
}

// WheelPatch - частичное обновление колеса, nil поля не меняются
type WheelPatch struct {
	Name    *string
	Icon    *string
	Options []WheelOption
}
