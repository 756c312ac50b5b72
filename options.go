package slate

// TransformOption configures a Transform during creation.
//
// Example:
//
//	tr := slate.NewTransform(provider,
//	    slate.WithPosition(slate.Pt(100, 50)),
//	    slate.WithOnChange(cache.Invalidate),
//	)
type TransformOption func(*Transform)

// WithPosition sets the initial top-left position.
func WithPosition(p Point) TransformOption {
	return func(t *Transform) {
		t.x, t.y = p.X, p.Y
	}
}

// WithAngle sets the initial rotation angle in degrees. The angle is
// normalized to [0, 360).
func WithAngle(angle float64) TransformOption {
	return func(t *Transform) {
		t.angle = normalizeAngle(angle)
	}
}

// WithScale sets the initial uniform scale factor. Negative values are
// clamped to 0.
func WithScale(scale float64) TransformOption {
	return func(t *Transform) {
		t.scale = max(scale, 0)
	}
}

// WithOnChange sets the change notification hook. The hook runs after
// every effective mutation, once the transform state is fully consistent.
// It is never called for no-op mutations.
func WithOnChange(fn func()) TransformOption {
	return func(t *Transform) {
		t.onChange = fn
	}
}
