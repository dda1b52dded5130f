package difficulty

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/engine"
)

// ErrUnknown is returned for a difficulty ID that is neither a preset nor CustomID.
var ErrUnknown = errors.New("unknown difficulty")

// Registry holds the loaded presets and the hint palette.
type Registry struct {
	defs    []Def
	byID    map[string]*Def
	palette []tcell.Color
}

// NewRegistry creates a registry from a loaded file. Every hint colour must parse.
func NewRegistry(file File) (*Registry, error) {
	r := &Registry{
		defs: file.Difficulties,
		byID: make(map[string]*Def, len(file.Difficulties)),
	}
	for i := range r.defs {
		r.byID[r.defs[i].ID] = &r.defs[i]
	}
	for i, hex := range file.HintColors {
		color, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("hint colour %d: %w", i+1, err)
		}
		r.palette = append(r.palette, color)
	}
	return r, nil
}

// LoadRegistry loads and creates a registry from the embedded difficulties.json.
func LoadRegistry() (*Registry, error) {
	file, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if len(file.Difficulties) == 0 {
		return nil, errors.New("no difficulties loaded from difficulties.json")
	}
	return NewRegistry(file)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	return r.byID[id]
}

// GetByKey returns the preset bound to key, or nil.
func (r *Registry) GetByKey(key rune) *Def {
	for i := range r.defs {
		if r.defs[i].KeyRune() == key {
			return &r.defs[i]
		}
	}
	return nil
}

// All returns all presets in file order.
func (r *Registry) All() []Def {
	return r.defs
}

// Count returns the number of presets.
func (r *Registry) Count() int {
	return len(r.defs)
}

// HintColor returns the colour for hint n (1-8). Unknown hints are white.
func (r *Registry) HintColor(n int) tcell.Color {
	if n < 1 || n > len(r.palette) {
		return tcell.ColorWhite
	}
	return r.palette[n-1]
}

// Resolve builds a validated game config for a difficulty.
// For presets a positive custom.Mines overrides the preset's mine count;
// CustomID takes all three values from custom.
func (r *Registry) Resolve(id string, custom Custom) (engine.Config, error) {
	var cfg engine.Config

	if id == CustomID {
		cfg = engine.Config{Width: custom.Width, Height: custom.Height, MineCount: custom.Mines}
	} else {
		def := r.GetByID(id)
		if def == nil {
			return engine.Config{}, fmt.Errorf("%w: %q", ErrUnknown, id)
		}
		cfg = engine.Config{Width: def.Width, Height: def.Height, MineCount: def.Mines}
		if custom.Mines > 0 {
			cfg.MineCount = custom.Mines
		}
	}

	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}
