package app

import (
	"errors"

	"github.com/slate2d/slate/surface"
)

func init() {
	RegisterDriver("headless", func() Driver { return &headlessDriver{} })
}

// headlessDriver runs the scene without a window: tick after tick on the
// calling goroutine until the scene quits or fails. Useful for tests,
// tools, and server-side rendering.
type headlessDriver struct{}

func (d *headlessDriver) Name() string { return "headless" }

func (d *headlessDriver) Run(cfg Config, scene Scene) error {
	frame := surface.New(cfg.Width, cfg.Height)
	for {
		if err := scene.Update(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		scene.Draw(frame)
	}
}
