package slate

// Named-anchor accessors. Every getter is a pure function of the current
// (x, y, bounding size); every setter re-derives the top-left reference
// through applyTopLeft, which fires the change hook only on an effective
// position change. The size anchors delegate to the ScaleTo operations.

// Left returns the x coordinate of the bounding rect's left edge.
func (t *Transform) Left() float64 { return t.rectView().Left() }

// Right returns the x coordinate of the bounding rect's right edge.
func (t *Transform) Right() float64 { return t.rectView().Right() }

// Top returns the y coordinate of the bounding rect's top edge.
func (t *Transform) Top() float64 { return t.rectView().Top() }

// Bottom returns the y coordinate of the bounding rect's bottom edge.
func (t *Transform) Bottom() float64 { return t.rectView().Bottom() }

// CenterX returns the x coordinate of the bounding rect's center.
func (t *Transform) CenterX() float64 { return t.rectView().CenterX() }

// CenterY returns the y coordinate of the bounding rect's center.
func (t *Transform) CenterY() float64 { return t.rectView().CenterY() }

// Width returns the bounding rect's width.
func (t *Transform) Width() float64 { return t.Size().X }

// Height returns the bounding rect's height.
func (t *Transform) Height() float64 { return t.Size().Y }

// TopLeft returns the bounding rect's top-left corner.
func (t *Transform) TopLeft() Point { return t.rectView().TopLeft() }

// TopRight returns the bounding rect's top-right corner.
func (t *Transform) TopRight() Point { return t.rectView().TopRight() }

// BottomLeft returns the bounding rect's bottom-left corner.
func (t *Transform) BottomLeft() Point { return t.rectView().BottomLeft() }

// BottomRight returns the bounding rect's bottom-right corner.
func (t *Transform) BottomRight() Point { return t.rectView().BottomRight() }

// MidLeft returns the midpoint of the bounding rect's left edge.
func (t *Transform) MidLeft() Point { return t.rectView().MidLeft() }

// MidRight returns the midpoint of the bounding rect's right edge.
func (t *Transform) MidRight() Point { return t.rectView().MidRight() }

// MidTop returns the midpoint of the bounding rect's top edge.
func (t *Transform) MidTop() Point { return t.rectView().MidTop() }

// MidBottom returns the midpoint of the bounding rect's bottom edge.
func (t *Transform) MidBottom() Point { return t.rectView().MidBottom() }

// Center returns the bounding rect's center.
func (t *Transform) Center() Point { return t.rectView().Center() }

func (t *Transform) setScalarAnchor(set func(*Rect, float64), v float64) {
	r := t.rectView()
	set(&r, v)
	t.applyTopLeft(r.TopLeft())
}

func (t *Transform) setPointAnchor(set func(*Rect, Point), p Point) {
	r := t.rectView()
	set(&r, p)
	t.applyTopLeft(r.TopLeft())
}

// SetLeft moves the object so the bounding rect's left edge is at v.
func (t *Transform) SetLeft(v float64) { t.setScalarAnchor((*Rect).SetLeft, v) }

// SetRight moves the object so the bounding rect's right edge is at v.
func (t *Transform) SetRight(v float64) { t.setScalarAnchor((*Rect).SetRight, v) }

// SetTop moves the object so the bounding rect's top edge is at v.
func (t *Transform) SetTop(v float64) { t.setScalarAnchor((*Rect).SetTop, v) }

// SetBottom moves the object so the bounding rect's bottom edge is at v.
func (t *Transform) SetBottom(v float64) { t.setScalarAnchor((*Rect).SetBottom, v) }

// SetCenterX moves the object so the bounding rect's horizontal center is at v.
func (t *Transform) SetCenterX(v float64) { t.setScalarAnchor((*Rect).SetCenterX, v) }

// SetCenterY moves the object so the bounding rect's vertical center is at v.
func (t *Transform) SetCenterY(v float64) { t.setScalarAnchor((*Rect).SetCenterY, v) }

// SetTopLeft moves the object so the bounding rect's top-left corner is at p.
func (t *Transform) SetTopLeft(p Point) { t.setPointAnchor((*Rect).SetTopLeft, p) }

// SetTopRight moves the object so the bounding rect's top-right corner is at p.
func (t *Transform) SetTopRight(p Point) { t.setPointAnchor((*Rect).SetTopRight, p) }

// SetBottomLeft moves the object so the bounding rect's bottom-left corner is at p.
func (t *Transform) SetBottomLeft(p Point) { t.setPointAnchor((*Rect).SetBottomLeft, p) }

// SetBottomRight moves the object so the bounding rect's bottom-right corner is at p.
func (t *Transform) SetBottomRight(p Point) { t.setPointAnchor((*Rect).SetBottomRight, p) }

// SetMidLeft moves the object so the midpoint of the bounding rect's left edge is at p.
func (t *Transform) SetMidLeft(p Point) { t.setPointAnchor((*Rect).SetMidLeft, p) }

// SetMidRight moves the object so the midpoint of the bounding rect's right edge is at p.
func (t *Transform) SetMidRight(p Point) { t.setPointAnchor((*Rect).SetMidRight, p) }

// SetMidTop moves the object so the midpoint of the bounding rect's top edge is at p.
func (t *Transform) SetMidTop(p Point) { t.setPointAnchor((*Rect).SetMidTop, p) }

// SetMidBottom moves the object so the midpoint of the bounding rect's bottom edge is at p.
func (t *Transform) SetMidBottom(p Point) { t.setPointAnchor((*Rect).SetMidBottom, p) }

// SetCenter moves the object so the bounding rect's center is at p.
func (t *Transform) SetCenter(p Point) { t.setPointAnchor((*Rect).SetCenter, p) }

// SetWidth scales the object so the unrotated width matches v.
func (t *Transform) SetWidth(v float64) error { return t.ScaleToWidth(v) }

// SetHeight scales the object so the unrotated height matches v.
func (t *Transform) SetHeight(v float64) error { return t.ScaleToHeight(v) }

// SetSize scales the object so the unrotated size fits inside p.
func (t *Transform) SetSize(p Point) error { return t.ScaleToSize(p.X, p.Y) }
