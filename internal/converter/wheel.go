package converter

import (
	dto "game_roulette/internal/api/dto/wheel"
	"game_roulette/internal/model"
)

func ToWheelModel(w dto.Wheel) model.Wheel {
	return model.Wheel{
		ID:      w.ID,
		Name:    w.Name,
		Icon:    w.Icon,
		Options: toOptionModels(w.Options),
	}
}

func ToWheelModels(wheels []dto.Wheel) []model.Wheel {
	result := make([]model.Wheel, len(wheels))
	for i, w := range wheels {
		result[i] = ToWheelModel(w)
	}
	return result
}

// ToWheelPatch - nil в options значит "не менять", пустой список очищает варианты
func ToWheelPatch(req dto.PatchRequest) model.WheelPatch {
	patch := model.WheelPatch{
		Name: req.Name,
		Icon: req.Icon,
	}
	if req.Options != nil {
		patch.Options = toOptionModels(*req.Options)
		if patch.Options == nil {
			patch.Options = []model.WheelOption{}
		}
	}
	return patch
}

func ToWheelResponse(w model.Wheel) dto.Wheel {
	options := make([]dto.Option, len(w.Options))
	for i, o := range w.Options {
		options[i] = dto.Option{ID: o.ID, Name: o.Name, Icon: o.Icon}
	}
	return dto.Wheel{
		ID:      w.ID,
		Name:    w.Name,
		Icon:    w.Icon,
		Options: options,
	}
}

func ToWheelsResponse(wheels []model.Wheel) []dto.Wheel {
	result := make([]dto.Wheel, len(wheels))
	for i, w := range wheels {
		result[i] = ToWheelResponse(w)
	}
	return result
}

func toOptionModels(options []dto.Option) []model.WheelOption {
	if options == nil {
		return nil
	}
	result := make([]model.WheelOption, len(options))
	for i, o := range options {
		result[i] = model.WheelOption{ID: o.ID, Name: o.Name, Icon: o.Icon}
	}
	return result
}
