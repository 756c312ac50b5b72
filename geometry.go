package slate

// SizeProvider supplies the unscaled, unrotated local size of an object.
// A Transform borrows its provider: the size is queried per operation and
// never cached across operations.
//
// Implementations must return non-negative dimensions.
type SizeProvider interface {
	LocalSize() (w, h float64)
}

// RotationScaler is optionally implemented by providers that keep derived
// rotated/scaled geometry (for example a sprite with a pre-transformed
// raster). The Transform calls ApplyRotationScale after every angle or
// scale change.
//
// The returned error controls the transform's behavior:
//   - an error matching ErrRotationUnsupported rolls the state change back
//     and propagates to the caller
//   - an error matching ErrBackendTransient is swallowed; the geometry is
//     expected to come out right on the next query
//   - any other error propagates unmodified with the state change kept
//
// Providers without this interface get correct bounding-box queries anyway:
// the transform derives them analytically.
type RotationScaler interface {
	ApplyRotationScale() error
}

// StaticSize is a fixed-size SizeProvider for objects whose local geometry
// never changes.
type StaticSize struct {
	W, H float64
}

// LocalSize implements SizeProvider.
func (s StaticSize) LocalSize() (w, h float64) {
	return s.W, s.H
}

// Pivot selects the fixed point of a rotation. A nil *Pivot means the
// object's current center.
type Pivot struct {
	anchor string
	point  Point
	named  bool
}

// PivotAt creates a pivot at an explicit world-space point.
func PivotAt(p Point) *Pivot {
	return &Pivot{point: p}
}

// PivotAnchor creates a pivot at a named point anchor (e.g. "topleft",
// "midbottom"). The anchor is read after the angle change is applied.
// Scalar anchor names (e.g. "left") are rejected at resolution time with
// *UnknownAttributeError.
func PivotAnchor(name string) *Pivot {
	return &Pivot{anchor: name, named: true}
}

// resolve returns the pivot point. view is the rect the named anchors are
// read from; fallback is used for a nil pivot.
func (p *Pivot) resolve(view Rect, fallback Point) (Point, error) {
	if p == nil {
		return fallback, nil
	}
	if p.named {
		pt, ok := view.PointAnchor(p.anchor)
		if !ok {
			return Point{}, &UnknownAttributeError{Name: p.anchor}
		}
		return pt, nil
	}
	return p.point, nil
}
