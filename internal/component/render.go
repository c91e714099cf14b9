// component/render.go
package component

import (
	"image/color"

	"go-image-border/pkg/shape"
)

// Graphics — векторный контур, который обводится линией поверх сцены.
// Outline задан в локальных координатах узла.
type Graphics struct {
	Outline     shape.Path
	LineWidth   float64
	StrokeColor color.RGBA
}
