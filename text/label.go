package text

import (
	"fmt"

	"github.com/slate2d/slate"
)

// Measurer measures a string in pixels. *Face implements it; tests can
// substitute a fixed-metric fake.
type Measurer interface {
	Measure(s string) (w, h float64)
}

// Label is a piece of text with a transform. The label is its transform's
// geometry provider: the local size is the measured text size, cached
// until the text or measurer changes.
//
// A label with no measurer is still usable — it has zero size until a
// measurer is attached, and rotation/scale changes report a transient
// failure in the meantime.
type Label struct {
	str       string
	measurer  Measurer
	transform *slate.Transform

	measured bool
	w, h     float64
}

// NewLabel creates a label with the given text and measurer. The measurer
// may be nil.
func NewLabel(str string, m Measurer) *Label {
	l := &Label{str: str, measurer: m}
	l.transform = slate.NewTransform(l)
	return l
}

// Transform returns the label's transform.
func (l *Label) Transform() *slate.Transform { return l.transform }

// Text returns the label's text.
func (l *Label) Text() string { return l.str }

// SetText replaces the label's text and drops the cached measurement.
func (l *Label) SetText(str string) {
	if str == l.str {
		return
	}
	l.str = str
	l.measured = false
}

// SetMeasurer replaces the measurer and drops the cached measurement.
func (l *Label) SetMeasurer(m Measurer) {
	l.measurer = m
	l.measured = false
}

// LocalSize implements slate.SizeProvider: the measured text size, or
// (0, 0) without a measurer.
func (l *Label) LocalSize() (w, h float64) {
	if l.measurer == nil {
		return 0, 0
	}
	if !l.measured {
		l.w, l.h = l.measurer.Measure(l.str)
		l.measured = true
	}
	return l.w, l.h
}

// ApplyRotationScale implements slate.RotationScaler. Text has no baked
// raster to recompute, so this only reports whether measurement is
// possible yet.
func (l *Label) ApplyRotationScale() error {
	if l.measurer == nil {
		return fmt.Errorf("text: label has no measurer yet: %w", slate.ErrBackendTransient)
	}
	return nil
}
