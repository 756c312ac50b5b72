package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/slate2d/slate"
)

// Surface is a rectangular RGBA pixel buffer.
//
// A Surface created by SubSurface shares its pixels with its parent; shared
// surfaces can be drawn and blitted like any other, but sprites over them
// refuse transformed-raster baking (see Sprite).
//
// Surfaces are not safe for concurrent use.
type Surface struct {
	img    *image.RGBA
	shared bool
	locked bool
}

// New creates a surface with the given dimensions, filled with transparent
// black. Negative dimensions are clamped to zero.
func New(w, h int) *Surface {
	w = max(w, 0)
	h = max(h, 0)
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FromImage creates a surface holding a copy of src's pixels.
func FromImage(src image.Image) *Surface {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Surface{img: img}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// LocalSize implements slate.SizeProvider.
func (s *Surface) LocalSize() (w, h float64) {
	return float64(s.Width()), float64(s.Height())
}

// RGBA returns the backing image. Mutating it mutates the surface.
func (s *Surface) RGBA() *image.RGBA { return s.img }

// Set sets one pixel in surface-local coordinates. Out-of-bounds writes
// are ignored.
func (s *Surface) Set(x, y int, c color.Color) {
	s.img.Set(s.img.Bounds().Min.X+x, s.img.Bounds().Min.Y+y, c)
}

// At returns one pixel in surface-local coordinates. Out-of-bounds reads
// return transparent black.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(s.img.Bounds().Min.X+x, s.img.Bounds().Min.Y+y)
}

// Fill fills the whole surface with c.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Blit composites src onto the surface with its top-left corner at p.
func (s *Surface) Blit(src *Surface, p slate.Point) {
	b := s.img.Bounds()
	r := image.Rect(
		b.Min.X+int(p.X), b.Min.Y+int(p.Y),
		b.Min.X+int(p.X)+src.Width(), b.Min.Y+int(p.Y)+src.Height(),
	)
	draw.Draw(s.img, r, src.img, src.img.Bounds().Min, draw.Over)
}

// SubSurface returns a view of the region r sharing pixels with the
// parent: drawing on either is visible through both. The region is clipped
// to the surface bounds.
func (s *Surface) SubSurface(r slate.Rect) *Surface {
	b := s.img.Bounds()
	region := image.Rect(
		b.Min.X+int(r.X), b.Min.Y+int(r.Y),
		b.Min.X+int(r.X+r.W), b.Min.Y+int(r.Y+r.H),
	).Intersect(b)
	sub, ok := s.img.SubImage(region).(*image.RGBA)
	if !ok {
		sub = image.NewRGBA(image.Rectangle{})
	}
	return &Surface{img: sub, shared: true}
}

// Shared reports whether the surface shares pixels with a parent surface.
func (s *Surface) Shared() bool { return s.shared }

// Lock marks the surface as locked for direct pixel access. While locked,
// sprite raster recomputes report a transient failure and succeed again
// after Unlock.
func (s *Surface) Lock() { s.locked = true }

// Unlock releases a Lock.
func (s *Surface) Unlock() { s.locked = false }

// Locked reports whether the surface is locked.
func (s *Surface) Locked() bool { return s.locked }

func (s *Surface) String() string {
	return fmt.Sprintf("Surface(%dx%d)", s.Width(), s.Height())
}
