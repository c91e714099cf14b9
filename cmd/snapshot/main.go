// cmd/snapshot/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"go-image-border/internal/app"
	"go-image-border/internal/assets"
	"go-image-border/internal/component"
	"go-image-border/internal/config"
	"go-image-border/internal/defs"
	"go-image-border/pkg/render"

	"github.com/disintegration/imaging"
)

// snapshot рисует одну картинку в рамке из файла определений в PNG без окна.
func main() {
	defsPath := flag.String("defs", config.DefinitionsPath, "border definitions file (.json or .toml)")
	atlasDir := flag.String("atlases", config.AtlasDir, "directory with atlas images")
	id := flag.String("id", "", "definition id; empty means the first one")
	out := flag.String("o", "", "output file; defaults to <id>.png")
	flag.Parse()

	lib, err := defs.LoadBorderDefinitions(*defsPath)
	if err != nil {
		log.Fatalf("Failed to load border definitions: %v", err)
	}
	def, err := pick(lib, *id)
	if err != nil {
		log.Fatal(err)
	}

	var frame *component.SpriteFrame
	if def.Atlas != "" {
		frame, err = assets.NewAtlasManager(*atlasDir).Frame(def.Atlas, def.Frame.Rect())
		if err != nil {
			log.Fatal(err)
		}
	}

	img, err := render.Snapshot(app.ConfigFor(def, frame).SnapshotOptions(nil))
	if err != nil {
		log.Fatalf("Failed to render %s: %v", def.ID, err)
	}

	path := *out
	if path == "" {
		path = def.ID + ".png"
	}
	if err := imaging.Save(img, path); err != nil {
		log.Fatalf("Failed to save %s: %v", path, err)
	}
	log.Printf("Saved %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
}

func pick(lib *defs.Library, id string) (defs.BorderDefinition, error) {
	if id == "" {
		all := lib.All()
		if len(all) == 0 {
			return defs.BorderDefinition{}, fmt.Errorf("no definitions")
		}
		return all[0], nil
	}
	def, ok := lib.Get(id)
	if !ok {
		return defs.BorderDefinition{}, fmt.Errorf("unknown definition %q", id)
	}
	return def, nil
}
