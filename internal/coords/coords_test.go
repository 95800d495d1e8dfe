package coords

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestToPixelXEndpoints(t *testing.T) {
	if got := ToPixelX(-10, -10, 10, 40, 440); math.Abs(got-40) > eps {
		t.Fatalf("expected min to map to 40, got %v", got)
	}
	if got := ToPixelX(10, -10, 10, 40, 440); math.Abs(got-440) > eps {
		t.Fatalf("expected max to map to 440, got %v", got)
	}
	if got := ToPixelX(0, -10, 10, 40, 440); math.Abs(got-240) > eps {
		t.Fatalf("expected origin to map to 240, got %v", got)
	}
}

func TestToPixelYInverted(t *testing.T) {
	top := ToPixelY(10, -10, 10, 40, 440)
	bottom := ToPixelY(-10, -10, 10, 40, 440)
	if math.Abs(top-40) > eps || math.Abs(bottom-440) > eps {
		t.Fatalf("expected y axis inverted, got top=%v bottom=%v", top, bottom)
	}
	if ToPixelY(1, -10, 10, 40, 440) >= ToPixelY(0, -10, 10, 40, 440) {
		t.Fatalf("expected increasing y to move toward smaller pixel rows")
	}
}

func TestOutOfRangeNotClamped(t *testing.T) {
	if got := ToPixelX(20, -10, 10, 0, 200); math.Abs(got-300) > eps {
		t.Fatalf("expected 300 for out-of-range x, got %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for x := -10.0; x <= 10.0; x += 0.25 {
		px := ToPixelX(x, -10, 10, 4, 117)
		if back := FromPixelX(px, -10, 10, 4, 117); math.Abs(back-x) > eps {
			t.Fatalf("x round trip: %v -> %v -> %v", x, px, back)
		}
		py := ToPixelY(x, -10, 10, 4, 59)
		if back := FromPixelY(py, -10, 10, 4, 59); math.Abs(back-x) > eps {
			t.Fatalf("y round trip: %v -> %v -> %v", x, py, back)
		}
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{Min: -10, Max: 10, Width: 79, Height: 39, Margin: 4}
	if !v.Drawable() {
		t.Fatalf("expected drawable viewport")
	}
	if got := v.X(-10); math.Abs(got-4) > eps {
		t.Fatalf("expected left edge at margin, got %v", got)
	}
	if got := v.Y(-10); math.Abs(got-35) > eps {
		t.Fatalf("expected bottom edge at 35, got %v", got)
	}
	if got := v.LogicalX(v.X(3)); math.Abs(got-3) > eps {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := v.LogicalY(v.Y(7)); math.Abs(got-7) > eps {
		t.Fatalf("expected 7, got %v", got)
	}
	if !v.Inside(v.X(0), v.Y(0)) {
		t.Fatalf("expected origin inside")
	}
	if v.Inside(v.X(0), v.Y(11)) {
		t.Fatalf("expected y=11 outside")
	}

	tight := Viewport{Min: -10, Max: 10, Width: 8, Height: 8, Margin: 4}
	if tight.Drawable() {
		t.Fatalf("expected margin to consume the surface")
	}
}
