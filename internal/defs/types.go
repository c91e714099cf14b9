// internal/defs/types.go
package defs

import (
	"image"
	"image/color"
)

// FrameRect is the crop rectangle of a frame inside its atlas, in pixels.
type FrameRect struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
	W int `json:"w" toml:"w"`
	H int `json:"h" toml:"h"`
}

// Rect converts the frame to an image rectangle. A nil frame gives the
// empty rectangle, which means the whole atlas.
func (f *FrameRect) Rect() image.Rectangle {
	if f == nil {
		return image.Rectangle{}
	}
	return image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
}

// BorderDefinition describes one image border placed in the scene.
// Optional fields left out of the file fall back to the component defaults.
type BorderDefinition struct {
	ID          string     `json:"id" toml:"id"`
	Atlas       string     `json:"atlas,omitempty" toml:"atlas,omitempty"`
	Frame       *FrameRect `json:"frame,omitempty" toml:"frame,omitempty"`
	Width       *int       `json:"width,omitempty" toml:"width,omitempty"`
	Height      *int       `json:"height,omitempty" toml:"height,omitempty"`
	Radius      *float64   `json:"radius,omitempty" toml:"radius,omitempty"`
	Circle      bool       `json:"circle,omitempty" toml:"circle,omitempty"`
	BorderWidth float64    `json:"border_width,omitempty" toml:"border_width,omitempty"`
	BorderColor string     `json:"border_color,omitempty" toml:"border_color,omitempty"`
	X           float64    `json:"x,omitempty" toml:"x,omitempty"`
	Y           float64    `json:"y,omitempty" toml:"y,omitempty"`

	// Resolved values, filled in by the loader.
	Color color.RGBA `json:"-" toml:"-"`
}

// Library holds definitions keyed by ID, remembering file order.
type Library struct {
	Order []string
	ByID  map[string]BorderDefinition
}

// Get returns the definition with the given ID.
func (l *Library) Get(id string) (BorderDefinition, bool) {
	if l == nil {
		return BorderDefinition{}, false
	}
	def, ok := l.ByID[id]
	return def, ok
}

// All returns definitions in file order.
func (l *Library) All() []BorderDefinition {
	if l == nil {
		return nil
	}
	out := make([]BorderDefinition, 0, len(l.Order))
	for _, id := range l.Order {
		out = append(out, l.ByID[id])
	}
	return out
}

// Len returns the number of definitions.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Order)
}
