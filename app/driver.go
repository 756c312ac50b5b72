package app

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/slate2d/slate"
	"github.com/slate2d/slate/surface"
)

// ErrQuit can be returned from Scene.Update to stop the run loop cleanly.
var ErrQuit = errors.New("app: quit")

// ErrNoDriver is returned by Run when no driver is registered.
var ErrNoDriver = errors.New("app: no driver available")

// Scene is the application callback pair: Update advances the state,
// Draw renders one frame into the logical surface.
type Scene interface {
	// Update advances the scene by one tick. Returning ErrQuit ends the
	// run loop without an error; any other error aborts it.
	Update() error

	// Draw renders the scene into the frame surface.
	Draw(frame *surface.Surface)
}

// Driver runs the window loop for a scene. Drivers are registered from
// init functions; importing a driver package makes it available.
type Driver interface {
	// Name returns the driver identifier (e.g. "ebiten", "headless").
	Name() string

	// Run opens the window per cfg and drives the scene until it quits
	// or fails. Run blocks; it must be called from the main goroutine.
	Run(cfg Config, scene Scene) error
}

// DriverFactory creates a driver instance.
type DriverFactory func() Driver

var (
	driverMu sync.RWMutex
	drivers  = make(map[string]DriverFactory)
	// Priority order for driver selection (first registered wins).
	driverPriority = []string{"ebiten", "headless"}
)

// RegisterDriver registers a driver factory under the given name,
// replacing any previous registration with the same name. It is typically
// called from an init function in the driver's package.
func RegisterDriver(name string, factory DriverFactory) {
	driverMu.Lock()
	defer driverMu.Unlock()
	drivers[name] = factory
}

// Drivers returns the registered driver names in sorted order.
func Drivers() []string {
	driverMu.RLock()
	defer driverMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a driver instance by name, or nil if none is registered.
func Get(name string) Driver {
	driverMu.RLock()
	defer driverMu.RUnlock()
	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// DefaultDriver returns the best registered driver: the first hit in the
// priority order, then any other registration. Returns nil when nothing
// is registered.
func DefaultDriver() Driver {
	driverMu.RLock()
	defer driverMu.RUnlock()
	for _, name := range driverPriority {
		if factory, ok := drivers[name]; ok {
			return factory()
		}
	}
	for _, factory := range drivers {
		return factory()
	}
	return nil
}

// Run drives scene with the default driver.
func Run(cfg Config, scene Scene) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	d := DefaultDriver()
	if d == nil {
		return ErrNoDriver
	}
	slate.Logger().Info("app: starting run loop",
		slog.String("driver", d.Name()),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height))
	return d.Run(cfg, scene)
}

// RunWith drives scene with a named driver.
func RunWith(name string, cfg Config, scene Scene) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	d := Get(name)
	if d == nil {
		return ErrNoDriver
	}
	return d.Run(cfg, scene)
}
