package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/slate2d/slate/surface"
)

func init() {
	RegisterDriver("ebiten", func() Driver { return &ebitenDriver{} })
}

// ebitenDriver runs the scene inside an Ebitengine window. The scene draws
// into a CPU frame surface whose pixels are uploaded to the screen each
// frame.
type ebitenDriver struct{}

func (d *ebitenDriver) Name() string { return "ebiten" }

func (d *ebitenDriver) Run(cfg Config, scene Scene) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := &ebitenGame{
		scene: scene,
		frame: surface.New(cfg.Width, cfg.Height),
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type ebitenGame struct {
	scene Scene
	frame *surface.Surface
}

func (g *ebitenGame) Update() error {
	err := g.scene.Update()
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(g.frame)
	screen.WritePixels(g.frame.RGBA().Pix)
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.Width(), g.frame.Height()
}
