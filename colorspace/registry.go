package colorspace

import "math/rand"

// Registry maps palette names to ordered hex color lists. It replaces the
// global palette singleton with an explicit value: construct one with
// NewRegistry and pass it to whatever owns palette lookups. Not safe for
// concurrent mutation; callers sharing a Registry across goroutines must
// synchronize writes themselves.
type Registry struct {
	palettes map[string][]string
	order    []string
}

// Built-in palettes available in every new Registry.
var builtinPalettes = map[string][]string{
	"galaxy":  {"#0b0c2a", "#1b1f5e", "#3f3fbf", "#7b61ff", "#c9b8ff", "#f5f3ff"},
	"nebula":  {"#2d0b45", "#6a0dad", "#b84dff", "#ff5ce1", "#ffb3ec"},
	"sunset":  {"#ff5e62", "#ff9966", "#ffc371", "#ffd985"},
	"ocean":   {"#003049", "#1b6f8a", "#3aa6b9", "#9bd4e4", "#e0fbfc"},
	"forest":  {"#1b4332", "#2d6a4f", "#52b788", "#95d5b2", "#d8f3dc"},
	"neutral": {"#212529", "#495057", "#868e96", "#ced4da", "#f1f3f5"},
}

// NewRegistry returns a registry seeded with the built-in palettes.
func NewRegistry() *Registry {
	reg := &Registry{palettes: make(map[string][]string)}
	for _, name := range []string{"galaxy", "nebula", "sunset", "ocean", "forest", "neutral"} {
		colors := builtinPalettes[name]
		reg.palettes[name] = append([]string(nil), colors...)
		reg.order = append(reg.order, name)
	}
	return reg
}

// Register validates and stores a palette under a name, replacing any
// existing palette with that name.
func (reg *Registry) Register(name string, colors []string) error {
	validated := make([]string, 0, len(colors))
	for _, c := range colors {
		rgb, err := HexToRGB(c)
		if err != nil {
			return err
		}
		validated = append(validated, RGBToHex(rgb))
	}
	if _, exists := reg.palettes[name]; !exists {
		reg.order = append(reg.order, name)
	}
	reg.palettes[name] = validated
	return nil
}

// Get returns a copy of the named palette, or UnknownPaletteError when no
// palette has that name.
func (reg *Registry) Get(name string) ([]string, error) {
	colors, ok := reg.palettes[name]
	if !ok {
		return nil, UnknownPaletteError{Name: name}
	}
	return append([]string(nil), colors...), nil
}

// Names lists registered palette names in insertion order.
func (reg *Registry) Names() []string {
	return append([]string(nil), reg.order...)
}

// Pick returns a uniformly random color from the named palette. Insertion
// order of the palette is what makes the index draw meaningful.
func (reg *Registry) Pick(name string) (string, error) {
	colors, ok := reg.palettes[name]
	if !ok || len(colors) == 0 {
		return "", UnknownPaletteError{Name: name}
	}
	return colors[rand.Intn(len(colors))], nil
}
