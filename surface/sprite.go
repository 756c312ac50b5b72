package surface

import (
	"fmt"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/slate2d/slate"
)

// Sprite pairs a Surface with a transform and keeps a lazily baked raster
// of the rotated and scaled pixels. The sprite is the transform's geometry
// provider: the local size comes from the base surface, and every rotation
// or scale change funnels through ApplyRotationScale, which invalidates
// the baked raster.
type Sprite struct {
	base      *Surface
	transform *slate.Transform
	cache     *Surface // baked transformed raster; nil when stale
}

// NewSprite creates a sprite over the given base surface. The base may be
// nil (a sprite whose raster is still loading); it can be attached later
// with SetBase.
func NewSprite(base *Surface) *Sprite {
	sp := &Sprite{base: base}
	sp.transform = slate.NewTransform(sp, slate.WithOnChange(sp.invalidate))
	return sp
}

// Transform returns the sprite's transform.
func (sp *Sprite) Transform() *slate.Transform { return sp.transform }

// Base returns the untransformed source surface, which may be nil.
func (sp *Sprite) Base() *Surface { return sp.base }

// SetBase replaces the source surface and discards the baked raster.
func (sp *Sprite) SetBase(base *Surface) {
	sp.base = base
	sp.cache = nil
}

// LocalSize implements slate.SizeProvider. A sprite without a base has
// zero size.
func (sp *Sprite) LocalSize() (w, h float64) {
	if sp.base == nil {
		return 0, 0
	}
	return sp.base.LocalSize()
}

func (sp *Sprite) invalidate() { sp.cache = nil }

// ApplyRotationScale implements slate.RotationScaler.
//
// A missing or locked base raster is a transient condition: the state
// change is kept and the raster is baked on the next Raster call. A shared
// sub-surface cannot be baked at all, since its pixels belong to the
// parent; that reports rotation as unsupported.
func (sp *Sprite) ApplyRotationScale() error {
	if sp.base == nil {
		return fmt.Errorf("surface: sprite raster not loaded: %w", slate.ErrBackendTransient)
	}
	if sp.base.Shared() {
		return fmt.Errorf("surface: sub-surface raster cannot be transformed: %w", slate.ErrRotationUnsupported)
	}
	if sp.base.Locked() {
		return fmt.Errorf("surface: raster locked for pixel access: %w", slate.ErrBackendTransient)
	}
	sp.cache = nil
	return nil
}

// Raster returns the sprite's pixels with rotation and scale applied,
// baking them if needed. At identity (angle 0, scale 1) it returns the
// base surface itself.
func (sp *Sprite) Raster() *Surface {
	if sp.base == nil {
		return New(0, 0)
	}
	if sp.transform.Angle() == 0 && sp.transform.Scale() == 1 {
		return sp.base
	}
	if sp.cache == nil {
		sp.cache = sp.bake()
	}
	return sp.cache
}

// bake renders the rotated, scaled raster into a fresh surface sized to
// the transform's bounding box.
func (sp *Sprite) bake() *Surface {
	size := sp.transform.Size()
	w := int(math.Ceil(size.X))
	h := int(math.Ceil(size.Y))
	dst := New(w, h)
	if w == 0 || h == 0 {
		return dst
	}

	lw, lh := sp.base.LocalSize()
	s := sp.transform.Scale()
	theta := -sp.transform.Angle() * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)

	// Affine map from source to destination: scale, rotate about the
	// source center, then recenter in the destination.
	a, b := s*cos, -s*sin
	d, e := s*sin, s*cos
	c := float64(w)/2 - (a*lw/2 + b*lh/2)
	f := float64(h)/2 - (d*lw/2 + e*lh/2)

	xdraw.BiLinear.Transform(dst.img, f64.Aff3{a, b, c, d, e, f},
		sp.base.img, sp.base.img.Bounds(), xdraw.Over, nil)
	return dst
}

// Draw composites the sprite onto dst at its bounding rect's top-left.
func (sp *Sprite) Draw(dst *Surface) {
	dst.Blit(sp.Raster(), sp.transform.TopLeft())
}
