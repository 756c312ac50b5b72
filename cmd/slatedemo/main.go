// Command slatedemo demonstrates the slate 2D framework: a procedurally
// drawn sprite orbits the window center while spinning about its own.
package main

import (
	"errors"
	"flag"
	"image/color"
	"log"
	"os"

	"github.com/slate2d/slate"
	"github.com/slate2d/slate/app"
	"github.com/slate2d/slate/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		driver     = flag.String("driver", "", "driver name (default: best available)")
		frames     = flag.Int("frames", 0, "quit after this many frames (0 = run until closed)")
	)
	flag.Parse()

	cfg := app.DefaultConfig()
	cfg.Title = "slate demo"
	if *configPath != "" {
		var err error
		cfg, err = app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	scene := newDemoScene(cfg.Width, cfg.Height, *frames)

	var err error
	if *driver != "" {
		err = app.RunWith(*driver, cfg, scene)
	} else {
		err = app.Run(cfg, scene)
	}
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

type demoScene struct {
	sprite *surface.Sprite
	orbit  slate.Point
	frame  int
	limit  int
}

func newDemoScene(w, h, limit int) *demoScene {
	tile := surface.New(48, 32)
	tile.Fill(color.RGBA{R: 220, G: 80, B: 40, A: 255})
	for x := 0; x < 48; x++ {
		tile.Set(x, 0, color.RGBA{R: 255, G: 230, B: 180, A: 255})
		tile.Set(x, 31, color.RGBA{R: 255, G: 230, B: 180, A: 255})
	}

	sp := surface.NewSprite(tile)
	sp.Transform().SetCenter(slate.Pt(float64(w)/2, float64(h)/2))
	return &demoScene{
		sprite: sp,
		orbit:  slate.Pt(float64(w)/2, float64(h)/2),
		limit:  limit,
	}
}

func (s *demoScene) Update() error {
	s.frame++
	if s.limit > 0 && s.frame > s.limit {
		return app.ErrQuit
	}

	tr := s.sprite.Transform()
	if err := tr.Rotate(2, nil); err != nil {
		if errors.Is(err, slate.ErrRotationUnsupported) {
			return nil
		}
		return err
	}
	return tr.RotateAroundPoint(1, slate.PivotAt(s.orbit))
}

func (s *demoScene) Draw(frame *surface.Surface) {
	frame.Fill(color.RGBA{R: 24, G: 26, B: 33, A: 255})
	s.sprite.Draw(frame)
}
