package slate

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(5, 5).Sub(Pt(2, 3)), Pt(3, 2)},
		{"mul", Pt(1, -2).Mul(3), Pt(3, -6)},
		{"div", Pt(4, 6).Div(2), Pt(2, 3)},
		{"lerp start", Pt(0, 0).Lerp(Pt(10, 20), 0), Pt(0, 0)},
		{"lerp end", Pt(0, 0).Lerp(Pt(10, 20), 1), Pt(10, 20)},
		{"lerp mid", Pt(0, 0).Lerp(Pt(10, 20), 0.5), Pt(5, 10)},
		{"normalize zero", Pt(0, 0).Normalize(), Pt(0, 0)},
		{"normalize x", Pt(3, 0).Normalize(), Pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Eq(tt.want, epsilon) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestPointLengthDistance(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := Pt(2, 3).Dot(Pt(4, 5)); got != 23 {
		t.Errorf("Dot() = %v, want 23", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); got != 1 {
		t.Errorf("Cross() = %v, want 1", got)
	}
}

func TestRotateDeg(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		want  Point
	}{
		{"zero", Pt(3, 4), 0, Pt(3, 4)},
		{"full turn", Pt(3, 4), 360, Pt(3, 4)},
		{"quarter", Pt(1, 0), 90, Pt(0, 1)},
		{"half", Pt(1, 0), 180, Pt(-1, 0)},
		{"three quarter", Pt(1, 0), 270, Pt(0, -1)},
		{"negative quarter", Pt(1, 0), -90, Pt(0, -1)},
		{"45 degrees", Pt(1, 0), 45, Pt(math.Sqrt2 / 2, math.Sqrt2 / 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RotateDeg(tt.angle)
			if !got.Eq(tt.want, epsilon) {
				t.Errorf("%+v.RotateDeg(%v) = %+v, want %+v", tt.p, tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotateDegExactAxes(t *testing.T) {
	// Multiples of 90 degrees must be exact, not merely within tolerance.
	p := Pt(10, 4)
	if got := p.RotateDeg(90); got != Pt(-4, 10) {
		t.Errorf("RotateDeg(90) = %+v, want (-4, 10) exactly", got)
	}
	if got := p.RotateDeg(180); got != Pt(-10, -4) {
		t.Errorf("RotateDeg(180) = %+v, want (-10, -4) exactly", got)
	}
}

func TestRotateAround(t *testing.T) {
	got := Pt(2, 1).RotateAround(90, Pt(1, 1))
	if !got.Eq(Pt(1, 2), epsilon) {
		t.Errorf("RotateAround(90, (1,1)) = %+v, want (1, 2)", got)
	}
}
