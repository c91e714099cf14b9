// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"go-image-border/internal/config"
)

// ErrUnknownFormat is returned for definition files that are neither JSON
// nor TOML.
var ErrUnknownFormat = errors.New("unknown definitions format")

// Supported formats, named after the file extension.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// tomlFile is the TOML layout: a list of [[border]] tables.
type tomlFile struct {
	Borders []BorderDefinition `toml:"border"`
}

// LoadBorderDefinitions reads a definitions file; the format is picked by
// extension.
func LoadBorderDefinitions(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read border definitions file: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	lib, err := ParseBorderDefinitions(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// ParseBorderDefinitions decodes definitions, applies defaults and resolves
// colors. JSON is a top-level array, TOML a list of [[border]] tables.
func ParseBorderDefinitions(data []byte, format string) (*Library, error) {
	var borderDefs []BorderDefinition
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &borderDefs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal border definitions: %w", err)
		}
	case FormatTOML:
		var f tomlFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal border definitions: %w", err)
		}
		borderDefs = f.Borders
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	lib := &Library{ByID: make(map[string]BorderDefinition, len(borderDefs))}
	for i, def := range borderDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("border definition #%d has no id", i)
		}
		if _, dup := lib.ByID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate border definition %q", def.ID)
		}
		if err := def.resolve(); err != nil {
			return nil, fmt.Errorf("border definition %q: %w", def.ID, err)
		}
		lib.ByID[def.ID] = def
		lib.Order = append(lib.Order, def.ID)
	}
	return lib, nil
}

// resolve fills in defaults and parses the border color.
func (d *BorderDefinition) resolve() error {
	if d.Width == nil {
		w := config.DefaultWidth
		d.Width = &w
	}
	if d.Height == nil {
		h := config.DefaultHeight
		d.Height = &h
	}
	if d.Radius == nil {
		r := config.DefaultRadius
		d.Radius = &r
	}
	d.Color = config.DefaultBorderColor
	if d.BorderColor != "" {
		c, err := ParseColor(d.BorderColor)
		if err != nil {
			return err
		}
		d.Color = c
	}
	return nil
}
