package surface

import (
	"image/color"
	"testing"

	"github.com/slate2d/slate"
)

func TestNewClampsNegative(t *testing.T) {
	s := New(-3, -4)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = (%d, %d), want (0, 0)", s.Width(), s.Height())
	}
}

func TestFillAndAt(t *testing.T) {
	s := New(4, 4)
	red := color.RGBA{R: 255, A: 255}
	s.Fill(red)
	if got := s.At(2, 2); got != red {
		t.Errorf("At(2,2) = %v, want %v", got, red)
	}
}

func TestLocalSize(t *testing.T) {
	s := New(10, 4)
	w, h := s.LocalSize()
	if w != 10 || h != 4 {
		t.Errorf("LocalSize() = (%v, %v), want (10, 4)", w, h)
	}
	// Surface satisfies the provider interface for plain transforms.
	tr := slate.NewTransform(s)
	if tr.Width() != 10 {
		t.Errorf("transform width = %v, want 10", tr.Width())
	}
}

func TestBlit(t *testing.T) {
	dst := New(8, 8)
	src := New(2, 2)
	green := color.RGBA{G: 255, A: 255}
	src.Fill(green)

	dst.Blit(src, slate.Pt(3, 4))
	if got := dst.At(3, 4); got != green {
		t.Errorf("At(3,4) = %v, want %v", got, green)
	}
	if got := dst.At(2, 4); got != (color.RGBA{}) {
		t.Errorf("At(2,4) = %v, want transparent", got)
	}
}

func TestSubSurfaceSharesPixels(t *testing.T) {
	parent := New(8, 8)
	sub := parent.SubSurface(slate.R(2, 2, 4, 4))
	if !sub.Shared() {
		t.Fatal("SubSurface() not marked shared")
	}
	if sub.Width() != 4 || sub.Height() != 4 {
		t.Fatalf("sub size = (%d, %d), want (4, 4)", sub.Width(), sub.Height())
	}

	blue := color.RGBA{B: 255, A: 255}
	sub.Set(0, 0, blue)
	if got := parent.At(2, 2); got != blue {
		t.Errorf("parent.At(2,2) = %v, want write through sub", got)
	}
}

func TestSubSurfaceClipped(t *testing.T) {
	parent := New(4, 4)
	sub := parent.SubSurface(slate.R(2, 2, 10, 10))
	if sub.Width() != 2 || sub.Height() != 2 {
		t.Errorf("clipped sub size = (%d, %d), want (2, 2)", sub.Width(), sub.Height())
	}
}

func TestLockUnlock(t *testing.T) {
	s := New(2, 2)
	if s.Locked() {
		t.Fatal("new surface is locked")
	}
	s.Lock()
	if !s.Locked() {
		t.Fatal("Lock() did not lock")
	}
	s.Unlock()
	if s.Locked() {
		t.Fatal("Unlock() did not unlock")
	}
}
