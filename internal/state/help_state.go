// internal/state/help_state.go
package state

import (
	"image/color"

	"go-image-border/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*HelpState)(nil)

var helpLines = []string{
	"Tab / Right   next image",
	"Left          previous image",
	"Up / Down     radius +/-",
	"= / -         size +/-",
	"N             next atlas frame",
	"R             reload atlases and definitions",
	"F1 / Esc      close help",
}

// HelpState — оверлей со списком клавиш поверх экрана под ним в стеке.
// Экран под ним в это время не обновляется.
type HelpState struct {
	sm *StateMachine
}

func NewHelpState(sm *StateMachine) *HelpState {
	return &HelpState{sm: sm}
}

func (s *HelpState) Enter() {}

func (s *HelpState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.Pop()
	}
}

func (s *HelpState) Draw(screen *ebiten.Image) {
	if below := s.sm.Below(); below != nil {
		below.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)

	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(helpLines)*config.TextOffsetY/2
	for _, line := range helpLines {
		text.Draw(screen, line, face, config.ScreenWidth/2-150, y, config.TextLightColor)
		y += config.TextOffsetY
	}
}

func (s *HelpState) Exit() {}
