package wheel

import (
	"fmt"
	"game_roulette/internal/model"
	"strings"

	"github.com/google/uuid"
)

// normalize - проверяет набор колес и выдает недостающие ID.
// Входной слайс не меняется
func normalize(wheels []model.Wheel) ([]model.Wheel, error) {
	out := make([]model.Wheel, len(wheels))
	seen := make(map[string]struct{}, len(wheels))

	for i, w := range wheels {
		w.Name = strings.TrimSpace(w.Name)
		if w.Name == "" {
			return nil, fmt.Errorf("%w: wheel #%d has no name", ErrInvalidWheel, i+1)
		}
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if _, ok := seen[w.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate wheel id %q", ErrInvalidWheel, w.ID)
		}
		seen[w.ID] = struct{}{}

		options := make([]model.WheelOption, len(w.Options))
		optSeen := make(map[string]struct{}, len(w.Options))
		for j, o := range w.Options {
			o.Name = strings.TrimSpace(o.Name)
			if o.Name == "" {
				return nil, fmt.Errorf("%w: option #%d of %q has no name", ErrInvalidWheel, j+1, w.Name)
			}
			if o.ID == "" {
				o.ID = uuid.NewString()
			}
			if _, ok := optSeen[o.ID]; ok {
				return nil, fmt.Errorf("%w: duplicate option id %q in %q", ErrInvalidWheel, o.ID, w.Name)
			}
			optSeen[o.ID] = struct{}{}
			options[j] = o
		}
		w.Options = options
		out[i] = w
	}

	return out, nil
}
