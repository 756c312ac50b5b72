package slate

import (
	"errors"
	"fmt"
	"sort"
)

// Rect is an axis-aligned rectangle with a top-left corner and a size.
//
// Every named anchor (left, center, midbottom, ...) is a computed view over
// (X, Y, W, H): reading derives the value, writing re-derives X and Y (or
// W and H for the size anchors) so that the written anchor holds the given
// value. Anchors are never stored separately, so any two anchors read in
// succession always describe the same rectangle.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Scalar anchors.

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.W }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.H }

// SetLeft moves the rectangle so its left edge is at v.
func (r *Rect) SetLeft(v float64) { r.X = v }

// SetRight moves the rectangle so its right edge is at v.
func (r *Rect) SetRight(v float64) { r.X = v - r.W }

// SetTop moves the rectangle so its top edge is at v.
func (r *Rect) SetTop(v float64) { r.Y = v }

// SetBottom moves the rectangle so its bottom edge is at v.
func (r *Rect) SetBottom(v float64) { r.Y = v - r.H }

// SetCenterX moves the rectangle so its horizontal center is at v.
func (r *Rect) SetCenterX(v float64) { r.X = v - r.W/2 }

// SetCenterY moves the rectangle so its vertical center is at v.
func (r *Rect) SetCenterY(v float64) { r.Y = v - r.H/2 }

// SetWidth resizes the rectangle, keeping the top-left corner fixed.
func (r *Rect) SetWidth(v float64) { r.W = v }

// SetHeight resizes the rectangle, keeping the top-left corner fixed.
func (r *Rect) SetHeight(v float64) { r.H = v }

// Point anchors.

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{X: r.X + r.W, Y: r.Y} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{X: r.X, Y: r.Y + r.H} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// MidLeft returns the midpoint of the left edge.
func (r Rect) MidLeft() Point { return Point{X: r.X, Y: r.Y + r.H/2} }

// MidRight returns the midpoint of the right edge.
func (r Rect) MidRight() Point { return Point{X: r.X + r.W, Y: r.Y + r.H/2} }

// MidTop returns the midpoint of the top edge.
func (r Rect) MidTop() Point { return Point{X: r.X + r.W/2, Y: r.Y} }

// MidBottom returns the midpoint of the bottom edge.
func (r Rect) MidBottom() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H} }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Size returns the size as a point (W, H).
func (r Rect) Size() Point { return Point{X: r.W, Y: r.H} }

// SetTopLeft moves the rectangle so its top-left corner is at p.
func (r *Rect) SetTopLeft(p Point) { r.X, r.Y = p.X, p.Y }

// SetTopRight moves the rectangle so its top-right corner is at p.
func (r *Rect) SetTopRight(p Point) { r.X, r.Y = p.X-r.W, p.Y }

// SetBottomLeft moves the rectangle so its bottom-left corner is at p.
func (r *Rect) SetBottomLeft(p Point) { r.X, r.Y = p.X, p.Y-r.H }

// SetBottomRight moves the rectangle so its bottom-right corner is at p.
func (r *Rect) SetBottomRight(p Point) { r.X, r.Y = p.X-r.W, p.Y-r.H }

// SetMidLeft moves the rectangle so the midpoint of its left edge is at p.
func (r *Rect) SetMidLeft(p Point) { r.X, r.Y = p.X, p.Y-r.H/2 }

// SetMidRight moves the rectangle so the midpoint of its right edge is at p.
func (r *Rect) SetMidRight(p Point) { r.X, r.Y = p.X-r.W, p.Y-r.H/2 }

// SetMidTop moves the rectangle so the midpoint of its top edge is at p.
func (r *Rect) SetMidTop(p Point) { r.X, r.Y = p.X-r.W/2, p.Y }

// SetMidBottom moves the rectangle so the midpoint of its bottom edge is at p.
func (r *Rect) SetMidBottom(p Point) { r.X, r.Y = p.X-r.W/2, p.Y-r.H }

// SetCenter moves the rectangle so its center is at p.
func (r *Rect) SetCenter(p Point) { r.X, r.Y = p.X-r.W/2, p.Y-r.H/2 }

// SetSize resizes the rectangle, keeping the top-left corner fixed.
func (r *Rect) SetSize(p Point) { r.W, r.H = p.X, p.Y }

// Contains reports whether p lies inside the rectangle (right and bottom
// edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ErrInvalidAnchorValue is returned when an anchor assignment carries a
// value of the wrong shape (a point for a scalar anchor, or vice versa).
var ErrInvalidAnchorValue = errors.New("slate: invalid anchor value")

// anchorSpec describes one named anchor: exactly one accessor pair is set,
// depending on whether the anchor is scalar- or point-valued.
type anchorSpec struct {
	point bool
	getSc func(Rect) float64
	setSc func(*Rect, float64)
	getPt func(Rect) Point
	setPt func(*Rect, Point)
}

// anchors is the single authority on anchor names. It is populated once at
// package init; registerAnchor panics on duplicate names so two anchors can
// never shadow each other.
var anchors = make(map[string]anchorSpec)

func registerAnchor(name string, spec anchorSpec) {
	if _, dup := anchors[name]; dup {
		panic("slate: duplicate anchor name " + name)
	}
	anchors[name] = spec
}

func registerScalar(name string, get func(Rect) float64, set func(*Rect, float64)) {
	registerAnchor(name, anchorSpec{getSc: get, setSc: set})
}

func registerPoint(name string, get func(Rect) Point, set func(*Rect, Point)) {
	registerAnchor(name, anchorSpec{point: true, getPt: get, setPt: set})
}

func init() {
	registerScalar("x", Rect.Left, (*Rect).SetLeft)
	registerScalar("y", Rect.Top, (*Rect).SetTop)
	registerScalar("left", Rect.Left, (*Rect).SetLeft)
	registerScalar("right", Rect.Right, (*Rect).SetRight)
	registerScalar("top", Rect.Top, (*Rect).SetTop)
	registerScalar("bottom", Rect.Bottom, (*Rect).SetBottom)
	registerScalar("centerx", Rect.CenterX, (*Rect).SetCenterX)
	registerScalar("centery", Rect.CenterY, (*Rect).SetCenterY)
	registerScalar("width", Rect.Width, (*Rect).SetWidth)
	registerScalar("height", Rect.Height, (*Rect).SetHeight)
	registerScalar("w", Rect.Width, (*Rect).SetWidth)
	registerScalar("h", Rect.Height, (*Rect).SetHeight)

	registerPoint("topleft", Rect.TopLeft, (*Rect).SetTopLeft)
	registerPoint("topright", Rect.TopRight, (*Rect).SetTopRight)
	registerPoint("bottomleft", Rect.BottomLeft, (*Rect).SetBottomLeft)
	registerPoint("bottomright", Rect.BottomRight, (*Rect).SetBottomRight)
	registerPoint("midleft", Rect.MidLeft, (*Rect).SetMidLeft)
	registerPoint("midright", Rect.MidRight, (*Rect).SetMidRight)
	registerPoint("midtop", Rect.MidTop, (*Rect).SetMidTop)
	registerPoint("midbottom", Rect.MidBottom, (*Rect).SetMidBottom)
	registerPoint("center", Rect.Center, (*Rect).SetCenter)
	registerPoint("size", Rect.Size, (*Rect).SetSize)
}

// IsAnchor reports whether name is a recognized anchor name.
func IsAnchor(name string) bool {
	_, ok := anchors[name]
	return ok
}

// AnchorNames returns all recognized anchor names in sorted order.
func AnchorNames() []string {
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assignment pairs an anchor name with a value, for the dynamic assignment
// paths (Transform.SetPosition, Rect.Apply, rect overrides). Scalar anchors
// take float64 or int values; point anchors take Point or [2]float64.
type Assignment struct {
	Name  string
	Value any
}

// Assign creates an Assignment.
func Assign(name string, value any) Assignment {
	return Assignment{Name: name, Value: value}
}

// Get returns the value of the named anchor: float64 for scalar anchors,
// Point for point anchors. Unknown names return *UnknownAttributeError.
func (r Rect) Get(name string) (any, error) {
	spec, ok := anchors[name]
	if !ok {
		return nil, &UnknownAttributeError{Name: name}
	}
	if spec.point {
		return spec.getPt(r), nil
	}
	return spec.getSc(r), nil
}

// PointAnchor returns the value of a point-valued anchor. It reports false
// for unknown names and for scalar anchors.
func (r Rect) PointAnchor(name string) (Point, bool) {
	spec, ok := anchors[name]
	if !ok || !spec.point {
		return Point{}, false
	}
	return spec.getPt(r), true
}

// Set assigns one named anchor. Unknown names return
// *UnknownAttributeError; a value of the wrong shape returns an error
// wrapping ErrInvalidAnchorValue.
func (r *Rect) Set(name string, value any) error {
	spec, ok := anchors[name]
	if !ok {
		return &UnknownAttributeError{Name: name}
	}
	if spec.point {
		p, ok := coercePoint(value)
		if !ok {
			return fmt.Errorf("%w: anchor %q needs a point, got %T", ErrInvalidAnchorValue, name, value)
		}
		spec.setPt(r, p)
		return nil
	}
	v, ok := coerceScalar(value)
	if !ok {
		return fmt.Errorf("%w: anchor %q needs a number, got %T", ErrInvalidAnchorValue, name, value)
	}
	spec.setSc(r, v)
	return nil
}

// Apply validates every assignment, then applies them in caller order.
// If any name is unknown or any value has the wrong shape, no assignment
// is applied.
func (r *Rect) Apply(assignments ...Assignment) error {
	for _, a := range assignments {
		spec, ok := anchors[a.Name]
		if !ok {
			return &UnknownAttributeError{Name: a.Name}
		}
		if spec.point {
			if _, ok := coercePoint(a.Value); !ok {
				return fmt.Errorf("%w: anchor %q needs a point, got %T", ErrInvalidAnchorValue, a.Name, a.Value)
			}
		} else if _, ok := coerceScalar(a.Value); !ok {
			return fmt.Errorf("%w: anchor %q needs a number, got %T", ErrInvalidAnchorValue, a.Name, a.Value)
		}
	}
	for _, a := range assignments {
		if err := r.Set(a.Name, a.Value); err != nil {
			return err
		}
	}
	return nil
}

func coerceScalar(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func coercePoint(value any) (Point, bool) {
	switch v := value.(type) {
	case Point:
		return v, true
	case [2]float64:
		return Point{X: v[0], Y: v[1]}, true
	}
	return Point{}, false
}
