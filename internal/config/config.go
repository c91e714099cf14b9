// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	MaxDeltaTime = 0.06

	// Значения компонента по умолчанию
	DefaultWidth       = 95
	DefaultHeight      = 95
	DefaultRadius      = 10.0
	DefaultBorderWidth = 0.0

	OutlineCacheSize = 64 // Сколько контуров держит кэш геометрии

	// Галерея
	GalleryColumns = 4
	GalleryCellW   = 200
	GalleryCellH   = 220
	GalleryMarginX = 120
	GalleryMarginY = 130

	RadiusStep = 2.0 // Шаг изменения радиуса с клавиатуры
	SizeStep   = 5   // Шаг изменения размера
	MinSize    = 10
	MaxSize    = 400

	DefinitionsPath = "assets/borders.json"
	AtlasDir        = "assets/atlases"

	PlaceholderSize  = 64 // Размер клетчатой заглушки для отсутствующего атласа
	PlaceholderCell  = 8
	TextOffsetY      = 16
	SelectionPadding = 6
	SelectionStroke  = 1.0
)

var (
	DefaultBorderColor = color.RGBA{255, 255, 255, 255}
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	SelectionColor     = color.RGBA{255, 215, 0, 255}
	PlaceholderColors  = []color.RGBA{
		{255, 0, 255, 255}, // Маджента — «нет текстуры»
		{30, 30, 30, 255},
	}
)
