// internal/component/sprite.go
package component

import "image"

// SizeMode определяет, каким размером спрайт выводится на экран
type SizeMode int

const (
	SizeModeTrimmed SizeMode = iota // Размер прямоугольника кадра
	SizeModeCustom                  // Размер содержимого узла
)

// SpriteFrame — кадр текстуры: картинка плюс прямоугольник обрезки в ней
// (для атласов). Пустой Rect означает всю картинку.
type SpriteFrame struct {
	Name    string
	Texture image.Image
	Rect    image.Rectangle
}

// NewSpriteFrame оборачивает готовую картинку целиком.
func NewSpriteFrame(name string, texture image.Image) *SpriteFrame {
	f := &SpriteFrame{Name: name, Texture: texture}
	if texture != nil {
		f.Rect = texture.Bounds()
	}
	return f
}

// Loaded сообщает, доступны ли пиксели кадра.
func (f *SpriteFrame) Loaded() bool {
	return f != nil && f.Texture != nil
}

// Size возвращает размер прямоугольника кадра.
func (f *SpriteFrame) Size() (int, int) {
	if f == nil {
		return 0, 0
	}
	r := f.Rect
	if r.Empty() && f.Texture != nil {
		r = f.Texture.Bounds()
	}
	return r.Dx(), r.Dy()
}

// Sprite — компонент отображения кадра
type Sprite struct {
	Frame    *SpriteFrame
	Enabled  bool
	SizeMode SizeMode
}
