package spin

// WindowSize - сколько элементов видно на колесе: 2 до, центр, 2 после
const WindowSize = 5

// Window возвращает окно отображения вокруг center с круговым переходом.
// Для пустого списка возвращает nil.
func Window[T any](items []T, center int) []T {
	n := len(items)
	if n == 0 {
		return nil
	}
	half := WindowSize / 2
	out := make([]T, 0, WindowSize)
	for off := -half; off <= half; off++ {
		out = append(out, items[wrap(center+off, n)])
	}
	return out
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
