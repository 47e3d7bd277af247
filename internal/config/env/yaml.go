package env

import (
	"errors"
	"fmt"
	"game_roulette/internal/config"
	"game_roulette/internal/model"
	"game_roulette/internal/spin"
	"io/fs"
	"maps"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Spin       *spin.Timing   `yaml:"spin"`
	Wheels     []yamlWheel    `yaml:"wheels"`
	Categories yamlCategories `yaml:"categories"`
}

type yamlCategories struct {
	DefaultIcon string            `yaml:"default_icon"`
	Valid       []string          `yaml:"valid"`
	Aliases     map[string]string `yaml:"aliases"`
	Groups      map[string]string `yaml:"groups"`
	Icons       map[string]string `yaml:"icons"`
}

type yamlWheel struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Icon    string       `yaml:"icon"`
	Options []yamlOption `yaml:"options"`
}

type yamlOption struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type spinConfig struct {
	timing spin.Timing
}

type wheelDefaults struct {
	wheels []model.Wheel
}

// readYAML - читает config.yaml. Отсутствующий файл не ошибка: работаем на значениях по умолчанию
func readYAML(path string) (*yamlFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("config file not found, using defaults")
			return &yamlFile{}, nil
		}
		return nil, err
	}

	var f yamlFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// NewSpinConfigFromYAML - параметры замедления колеса. Незаданные поля берутся из spin.DefaultTiming
func NewSpinConfigFromYAML(path string) (config.SpinConfig, error) {
	f, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	timing := spin.DefaultTiming()
	if f.Spin != nil {
		timing = mergeTiming(timing, *f.Spin)
	}
	if err = timing.Validate(); err != nil {
		return nil, err
	}

	return &spinConfig{timing: timing}, nil
}

func (c *spinConfig) Timing() spin.Timing {
	return c.timing
}

// NewWheelDefaultsFromYAML - колеса, которые показываются при пустом хранилище и после сброса
func NewWheelDefaultsFromYAML(path string) (config.WheelDefaults, error) {
	f, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	wheels := make([]model.Wheel, 0, len(f.Wheels))
	for _, w := range f.Wheels {
		if w.ID == "" || w.Name == "" {
			return nil, fmt.Errorf("default wheel without id or name in %s", path)
		}
		wheel := model.Wheel{ID: w.ID, Name: w.Name, Icon: w.Icon}
		for _, o := range w.Options {
			wheel.Options = append(wheel.Options, model.WheelOption{ID: o.ID, Name: o.Name, Icon: o.Icon})
		}
		wheels = append(wheels, wheel)
	}

	return &wheelDefaults{wheels: wheels}, nil
}

// Wheels - копия, чтобы сервис мог спокойно ее менять
func (d *wheelDefaults) Wheels() []model.Wheel {
	out := make([]model.Wheel, len(d.wheels))
	for i, w := range d.wheels {
		out[i] = w
		out[i].Options = append([]model.WheelOption(nil), w.Options...)
	}
	return out
}

// defaultCategoryIcon - иконка категории, для которой в файле ничего не задано
const defaultCategoryIcon = "🎮"

type importRules struct {
	valid       []string
	aliases     map[string]string
	groups      map[string]string
	icons       map[string]string
	defaultIcon string
}

// NewImportRulesFromYAML - правила для импорта таблицы игр из секции categories
func NewImportRulesFromYAML(path string) (config.ImportRules, error) {
	f, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	c := f.Categories
	rules := &importRules{
		valid:       append([]string(nil), c.Valid...),
		aliases:     maps.Clone(c.Aliases),
		groups:      maps.Clone(c.Groups),
		icons:       maps.Clone(c.Icons),
		defaultIcon: c.DefaultIcon,
	}
	if rules.defaultIcon == "" {
		rules.defaultIcon = defaultCategoryIcon
	}
	if len(rules.valid) == 0 {
		log.Warn().Str("path", path).Msg("no valid categories configured, csv import will reject every row")
	}

	return rules, nil
}

func (r *importRules) ValidCategories() []string {
	return r.valid
}

func (r *importRules) Aliases() map[string]string {
	return r.aliases
}

func (r *importRules) Groups() map[string]string {
	return r.groups
}

// Icon - иконка итоговой категории или значение по умолчанию
func (r *importRules) Icon(category string) string {
	if icon, ok := r.icons[category]; ok {
		return icon
	}
	return r.defaultIcon
}

// mergeTiming - поверх значений по умолчанию накладываем заданные в файле
func mergeTiming(base, over spin.Timing) spin.Timing {
	set := func(dst *time.Duration, v time.Duration) {
		if v != 0 {
			*dst = v
		}
	}
	set(&base.InitialSpeed, over.InitialSpeed)
	set(&base.MaxSpeed, over.MaxSpeed)
	set(&base.Duration, over.Duration)
	set(&base.SlowdownStart, over.SlowdownStart)
	set(&base.FinalSlowdown, over.FinalSlowdown)
	set(&base.MidStep, over.MidStep)
	set(&base.MidRamp, over.MidRamp)
	set(&base.FinalStep, over.FinalStep)
	set(&base.FinalRamp, over.FinalRamp)
	return base
}
