package assets

import (
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"

	"go-image-border/internal/component"
	"go-image-border/internal/config"
)

// ErrNoFrame — прямоугольник кадра не пересекается с атласом
var ErrNoFrame = errors.New("frame is outside the atlas")

// AtlasManager управляет загрузкой и кэшированием атласов-картинок.
type AtlasManager struct {
	dir          string
	atlases      map[string]image.Image
	placeholders map[string]bool
}

// NewAtlasManager создает менеджер, который ищет атласы в каталоге dir.
func NewAtlasManager(dir string) *AtlasManager {
	return &AtlasManager{
		dir:          dir,
		atlases:      make(map[string]image.Image),
		placeholders: make(map[string]bool),
	}
}

// Load возвращает атлас по имени файла, загружая его при первом обращении.
// Если файл не читается, вместо него подставляется клетчатая заглушка,
// чтобы сцена продолжала работать.
func (m *AtlasManager) Load(name string) image.Image {
	if img, ok := m.atlases[name]; ok {
		return img
	}
	path := filepath.Join(m.dir, name)
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("WARNING: Failed to load atlas %s: %v. Using placeholder.", path, err)
		img = Placeholder(config.PlaceholderSize, config.PlaceholderCell)
		m.placeholders[name] = true
	} else {
		delete(m.placeholders, name)
		log.Printf("Loaded atlas %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	m.atlases[name] = img
	return img
}

// Frame вырезает кадр rect из атласа. Пустой rect — весь атлас.
// Для заглушки прямоугольник игнорируется: она отдаётся целиком.
func (m *AtlasManager) Frame(name string, rect image.Rectangle) (*component.SpriteFrame, error) {
	atlas := m.Load(name)
	bounds := atlas.Bounds()
	if rect.Empty() || m.placeholders[name] {
		rect = bounds
	}
	if !rect.In(bounds) {
		return nil, fmt.Errorf("%w: %s %v not in %v", ErrNoFrame, name, rect, bounds)
	}
	return &component.SpriteFrame{
		Name:    fmt.Sprintf("%s@%d,%d", name, rect.Min.X, rect.Min.Y),
		Texture: atlas,
		Rect:    rect,
	}, nil
}

// IsPlaceholder сообщает, что атлас не загрузился и заменён заглушкой.
func (m *AtlasManager) IsPlaceholder(name string) bool {
	return m.placeholders[name]
}

// Loaded возвращает имена закэшированных атласов по алфавиту.
func (m *AtlasManager) Loaded() []string {
	names := make([]string, 0, len(m.atlases))
	for name := range m.atlases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cleanup забывает все атласы. Память освободит сборщик мусора, как только
// на картинки перестанут ссылаться кадры.
func (m *AtlasManager) Cleanup() {
	m.atlases = make(map[string]image.Image)
	m.placeholders = make(map[string]bool)
	log.Println("All atlases unloaded.")
}

// Reload перечитывает с диска все атласы, которые уже были загружены.
func (m *AtlasManager) Reload() {
	log.Println("Reloading all atlases...")
	names := m.Loaded()
	m.Cleanup()
	for _, name := range names {
		m.Load(name)
	}
	log.Println("All atlases reloaded.")
}

// Placeholder рисует шахматную доску size x size из клеток cell x cell.
func Placeholder(size, cell int) *image.NRGBA {
	colors := config.PlaceholderColors
	board := imaging.New(size, size, colors[1])
	tile := imaging.New(cell, cell, colors[0])
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			if (x/cell+y/cell)%2 == 0 {
				board = imaging.Paste(board, tile, image.Pt(x, y))
			}
		}
	}
	return board
}
