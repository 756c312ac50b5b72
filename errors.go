package slate

import (
	"errors"
	"fmt"
)

// Package errors for the transform core.
var (
	// ErrRotationUnsupported is reported by a provider whose geometry
	// cannot be rotated or scaled at all. SetRotation and SetScale roll
	// back their state change and propagate this error.
	ErrRotationUnsupported = errors.New("slate: rotation not supported by provider")

	// ErrBackendTransient is reported by a provider whose geometry could
	// not be recomputed right now (e.g. a lazily-initialized surface that
	// is not ready yet). The transform keeps the state change and expects
	// the geometry to come out right on the next query.
	ErrBackendTransient = errors.New("slate: transient backend failure")
)

// UnknownAttributeError is returned when an anchor name is not one of the
// recognized rectangle anchors, or when a pivot name does not resolve to a
// point-valued anchor.
type UnknownAttributeError struct {
	// Name is the offending attribute name.
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("slate: unknown anchor %q", e.Name)
}
