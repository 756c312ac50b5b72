package slate

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Transform tracks the placement of a 2D object: world-space position of
// the top-left reference point, rotation angle in degrees, and a uniform
// scale factor. Everything else — world size, the named anchors — is
// derived on demand from those three values and the provider's local size,
// so any two anchors read without an intervening mutation always describe
// the same rectangle.
//
// Mutations funnel through a small set of primitive state changes; the
// optional change hook fires exactly once per effective mutation, after
// all state is consistent. No-op mutations never fire the hook.
//
// A Transform is not safe for concurrent use.
type Transform struct {
	provider SizeProvider

	x, y  float64
	angle float64 // degrees, always in [0, 360)
	scale float64 // always >= 0

	onChange func()
}

// NewTransform creates a Transform over the given size provider with
// position (0, 0), angle 0, and scale 1. The provider is borrowed, not
// owned; it must not be nil.
func NewTransform(provider SizeProvider, opts ...TransformOption) *Transform {
	t := &Transform{provider: provider, scale: 1}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetOnChange replaces the change notification hook. Pass nil to remove it.
func (t *Transform) SetOnChange(fn func()) {
	t.onChange = fn
}

// normalizeAngle maps an angle in degrees into [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func (t *Transform) notify() {
	if t.onChange != nil {
		t.onChange()
	}
}

// X returns the x coordinate of the top-left reference point.
func (t *Transform) X() float64 { return t.x }

// Y returns the y coordinate of the top-left reference point.
func (t *Transform) Y() float64 { return t.y }

// Position returns the top-left reference point.
func (t *Transform) Position() Point { return Point{X: t.x, Y: t.y} }

// Angle returns the rotation angle in degrees, in [0, 360).
func (t *Transform) Angle() float64 { return t.angle }

// Scale returns the uniform scale factor.
func (t *Transform) Scale() float64 { return t.scale }

// LocalSize returns the provider's unscaled, unrotated size.
func (t *Transform) LocalSize() Point {
	w, h := t.provider.LocalSize()
	return Point{X: w, Y: h}
}

// Area returns the object's size with scale and/or rotation applied.
// With neither flag it is the local size. Rotation by a multiple of 90
// degrees swaps or keeps the dimensions exactly; any other angle produces
// the axis-aligned bounding box of the rotated rectangle.
func (t *Transform) Area(applyScale, applyRotation bool) Point {
	w, h := t.provider.LocalSize()
	if applyScale {
		w *= t.scale
		h *= t.scale
	}
	if applyRotation {
		switch t.angle {
		case 0, 180:
			// unchanged
		case 90, 270:
			w, h = h, w
		default:
			w, h = rotatedBounds(w, h, t.angle)
		}
	}
	return Point{X: w, Y: h}
}

// rotatedBounds returns the bounding box of a w-by-h rectangle rotated by
// angle degrees about its own center.
func rotatedBounds(w, h, angle float64) (float64, float64) {
	half := Point{X: w / 2, Y: h / 2}
	corners := [4]Point{
		{X: -half.X, Y: -half.Y},
		{X: half.X, Y: -half.Y},
		{X: half.X, Y: half.Y},
		{X: -half.X, Y: half.Y},
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		r := c.RotateDeg(-angle)
		minX = math.Min(minX, r.X)
		maxX = math.Max(maxX, r.X)
		minY = math.Min(minY, r.Y)
		maxY = math.Max(maxY, r.Y)
	}
	return maxX - minX, maxY - minY
}

// Size returns the world-space bounding size (scale and rotation applied).
func (t *Transform) Size() Point {
	return t.Area(true, true)
}

// rectView returns the bounding rectangle the named anchors are views of.
func (t *Transform) rectView() Rect {
	size := t.Size()
	return Rect{X: t.x, Y: t.y, W: size.X, H: size.Y}
}

// applyTopLeft is the single entry point for position-affecting anchor
// writes: it moves the top-left reference to p and fires the change hook
// only when the position actually changed.
func (t *Transform) applyTopLeft(p Point) {
	if p.X == t.x && p.Y == t.y {
		return
	}
	t.x, t.y = p.X, p.Y
	t.notify()
}

// placeCenter moves the top-left reference so the bounding rect's center is
// at p, without firing the change hook. Composite operations use it and
// notify once themselves.
func (t *Transform) placeCenter(p Point) {
	r := t.rectView()
	r.SetCenter(p)
	t.x, t.y = r.X, r.Y
}

// Move adds (dx, dy) to the position. Moving by (0, 0) is a no-op and
// fires no notification.
func (t *Transform) Move(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	t.x += dx
	t.y += dy
	t.notify()
}

// Translate adds the vector to the position. Identical to Move.
func (t *Transform) Translate(v Point) {
	t.Move(v.X, v.Y)
}

// SetPosition applies named-anchor assignments in caller order. All names
// and value shapes are validated up front: on a bad assignment the state
// is left untouched and *UnknownAttributeError (or an error wrapping
// ErrInvalidAnchorValue) is returned.
//
// The size anchors (width, height, w, h, size) map onto the corresponding
// ScaleTo operation; all others reposition the object.
func (t *Transform) SetPosition(assignments ...Assignment) error {
	var probe Rect
	for _, a := range assignments {
		if !IsAnchor(a.Name) {
			return &UnknownAttributeError{Name: a.Name}
		}
		if err := probe.Set(a.Name, a.Value); err != nil {
			return err
		}
	}
	for _, a := range assignments {
		if err := t.setAnchor(a.Name, a.Value); err != nil {
			return err
		}
	}
	return nil
}

// setAnchor applies one validated anchor assignment.
func (t *Transform) setAnchor(name string, value any) error {
	switch name {
	case "width", "w":
		v, _ := coerceScalar(value)
		return t.ScaleToWidth(v)
	case "height", "h":
		v, _ := coerceScalar(value)
		return t.ScaleToHeight(v)
	case "size":
		p, _ := coercePoint(value)
		return t.ScaleToSize(p.X, p.Y)
	}
	r := t.rectView()
	if err := r.Set(name, value); err != nil {
		return err
	}
	t.applyTopLeft(r.TopLeft())
	return nil
}

// recomputeGeometry runs the provider's rotation/scale hook, if any.
// Transient backend failures are swallowed (the geometry is derived lazily
// on the next query); everything else is returned to the caller.
func (t *Transform) recomputeGeometry() error {
	rs, ok := t.provider.(RotationScaler)
	if !ok {
		return nil
	}
	err := rs.ApplyRotationScale()
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrBackendTransient) {
		Logger().Warn("slate: transient geometry recompute failure",
			slog.String("error", err.Error()))
		return nil
	}
	return err
}

// Rotate adds delta degrees to the current angle, rotating about pivot
// (nil pivot: the current center is preserved).
func (t *Transform) Rotate(delta float64, pivot *Pivot) error {
	return t.SetRotation(t.angle+delta, pivot)
}

// SetRotation sets the rotation angle in degrees, normalized to [0, 360).
// Setting the current angle is a no-op. A nil pivot preserves the visual
// center; a named-anchor pivot is read after the angle change; an explicit
// point is used directly.
//
// If the provider reports ErrRotationUnsupported the angle rolls back to 0
// and the error propagates; ErrBackendTransient is swallowed; any other
// provider error propagates with the angle kept.
func (t *Transform) SetRotation(angle float64, pivot *Pivot) error {
	a := normalizeAngle(angle)
	if a == t.angle {
		return nil
	}

	former := t.rectView().Center()
	old := t.angle
	t.angle = a

	if err := t.recomputeGeometry(); err != nil {
		if errors.Is(err, ErrRotationUnsupported) {
			t.angle = 0
			return fmt.Errorf("slate: set rotation to %v: %w", a, err)
		}
		return err
	}

	p, err := pivot.resolve(t.rectView(), former)
	if err != nil {
		t.angle = old
		return err
	}

	center := former
	if p != former {
		center = former.Sub(p).RotateDeg(-(a - old)).Add(p)
	}
	t.placeCenter(center)
	t.notify()
	return nil
}

// RotateAroundPoint orbits the object's center about pivot by delta
// degrees without changing the stored angle. A zero delta or a pivot equal
// to the current center is a no-op.
func (t *Transform) RotateAroundPoint(delta float64, pivot *Pivot) error {
	if delta == 0 {
		return nil
	}
	view := t.rectView()
	center := view.Center()
	p, err := pivot.resolve(view, center)
	if err != nil {
		return err
	}
	if p == center {
		return nil
	}
	view.SetCenter(center.Sub(p).RotateDeg(-delta).Add(p))
	t.applyTopLeft(view.TopLeft())
	return nil
}

// SetScale sets the uniform scale factor, clamping negatives to 0. Setting
// the current scale is a no-op. The visual center is preserved.
//
// If the provider reports ErrRotationUnsupported the scale rolls back to 1
// and the error propagates; ErrBackendTransient is swallowed; any other
// provider error propagates with the scale kept.
func (t *Transform) SetScale(scale float64) error {
	s := max(scale, 0)
	if s == t.scale {
		return nil
	}

	center := t.rectView().Center()
	t.scale = s

	if err := t.recomputeGeometry(); err != nil {
		if errors.Is(err, ErrRotationUnsupported) {
			t.scale = 1
			return fmt.Errorf("slate: set scale to %v: %w", s, err)
		}
		return err
	}

	t.placeCenter(center)
	t.notify()
	return nil
}

// ScaleToWidth sets the uniform scale so the unrotated width matches w.
// A zero local width makes this a no-op.
func (t *Transform) ScaleToWidth(w float64) error {
	lw, _ := t.provider.LocalSize()
	if lw <= 0 {
		return nil
	}
	return t.SetScale(w / lw)
}

// ScaleToHeight sets the uniform scale so the unrotated height matches h.
// A zero local height makes this a no-op.
func (t *Transform) ScaleToHeight(h float64) error {
	_, lh := t.provider.LocalSize()
	if lh <= 0 {
		return nil
	}
	return t.SetScale(h / lh)
}

// ScaleToSize sets the uniform scale so the unrotated size fits inside
// (w, h), preserving aspect ratio (the smaller of the two ratios wins).
// A zero local size makes this a no-op.
func (t *Transform) ScaleToSize(w, h float64) error {
	lw, lh := t.provider.LocalSize()
	if lw <= 0 || lh <= 0 {
		return nil
	}
	return t.SetScale(math.Min(w/lw, h/lh))
}

// SetMinWidth scales the object up to width w if it is currently narrower.
func (t *Transform) SetMinWidth(w float64) error {
	if t.Width() < w {
		return t.ScaleToWidth(w)
	}
	return nil
}

// SetMaxWidth scales the object down to width w if it is currently wider.
func (t *Transform) SetMaxWidth(w float64) error {
	if t.Width() > w {
		return t.ScaleToWidth(w)
	}
	return nil
}

// SetMinHeight scales the object up to height h if it is currently shorter.
func (t *Transform) SetMinHeight(h float64) error {
	if t.Height() < h {
		return t.ScaleToHeight(h)
	}
	return nil
}

// SetMaxHeight scales the object down to height h if it is currently taller.
func (t *Transform) SetMaxHeight(h float64) error {
	if t.Height() > h {
		return t.ScaleToHeight(h)
	}
	return nil
}

// SetMinSize scales the object to fit (w, h) if either dimension is
// currently below its bound.
func (t *Transform) SetMinSize(w, h float64) error {
	if t.Width() < w || t.Height() < h {
		return t.ScaleToSize(w, h)
	}
	return nil
}

// SetMaxSize scales the object to fit (w, h) if either dimension currently
// exceeds its bound.
func (t *Transform) SetMaxSize(w, h float64) error {
	if t.Width() > w || t.Height() > h {
		return t.ScaleToSize(w, h)
	}
	return nil
}

// BoundingRect returns the world-space bounding rectangle, with optional
// anchor overrides applied in order. Unknown override names return
// *UnknownAttributeError.
func (t *Transform) BoundingRect(overrides ...Assignment) (Rect, error) {
	r := t.rectView()
	if err := r.Apply(overrides...); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// LocalRect returns the local (unscaled, unrotated) rectangle at the
// origin, with optional anchor overrides applied in order.
func (t *Transform) LocalRect(overrides ...Assignment) (Rect, error) {
	size := t.LocalSize()
	r := Rect{W: size.X, H: size.Y}
	if err := r.Apply(overrides...); err != nil {
		return Rect{}, err
	}
	return r, nil
}
