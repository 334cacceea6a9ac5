package segslider

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	ShowFPS    bool

	// ExitOnScriptDone ends the loop once an attached TestRunner finishes.
	ExitOnScriptDone bool
}

// game adapts a Slider to ebiten.Game.
type game struct {
	slider *Slider
	cfg    RunConfig
}

func (g *game) Update() error {
	g.slider.Update()
	if g.cfg.ExitOnScriptDone && g.slider.testRunner != nil && g.slider.testRunner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor.RGBA())
	}
	g.slider.Draw(screen)
	if g.cfg.ShowFPS {
		drawFPS(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives s until the window is closed. A slider with
// an empty frame is laid out across the middle of the window.
func Run(s *Slider, cfg RunConfig) error {
	if s == nil {
		return errors.New("segslider: run: nil slider")
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if s.Frame().Empty() {
		margin := float64(cfg.Width) / 8
		s.SetFrame(Rect{X: margin, Y: float64(cfg.Height)/2 - 20, Width: float64(cfg.Width) - 2*margin, Height: 40})
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{slider: s, cfg: cfg}); err != nil {
		return fmt.Errorf("segslider: run: %w", err)
	}
	return nil
}
