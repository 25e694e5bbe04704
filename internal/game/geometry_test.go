package game

import (
	"math"
	"testing"
)

func TestPoint_Distance(t *testing.T) {
	if d := (Point{0, 0}).Distance(Point{3, 4}); d != 5 {
		t.Fatalf("expected 5, got %f", d)
	}
}

func TestPoint_AngleTo_ScreenSpace(t *testing.T) {
	a := Point{0, 0}.AngleTo(Point{0, 10})
	if math.Abs(a.Radians()-math.Pi/2) > 1e-9 {
		t.Fatalf("bearing straight down should be +pi/2, got %f", a.Radians())
	}
}

func TestPointFromDistanceAndAngle_CarriesRemainder(t *testing.T) {
	p, rem := Point{10, 10}.PointFromDistanceAndAngle(1.5, 0)
	if p != (Point{11, 10}) {
		t.Fatalf("expected (11,10), got %+v", p)
	}
	if math.Abs(rem-0.5) > 1e-9 {
		t.Fatalf("expected remainder 0.5, got %f", rem)
	}

	p, rem = Point{10, 10}.PointFromDistanceAndAngle(2, AngleFromDegrees(90))
	if p != (Point{10, 12}) {
		t.Fatalf("expected (10,12), got %+v", p)
	}
	if math.Abs(rem) > 1e-9 {
		t.Fatalf("expected no remainder on a whole step, got %f", rem)
	}
}

// A short step whose exact end is behind p on both axes must not jump a
// whole pixel diagonally and leave a negative carry.
func TestPointFromDistanceAndAngle_ShortStepNeverOvershoots(t *testing.T) {
	origin := Point{100, 100}
	for deg := 0; deg < 360; deg++ {
		for _, d := range []float64{0.12, 0.3, 0.6, 1.1, 2.5, 7} {
			np, rem := origin.PointFromDistanceAndAngle(d, AngleFromDegrees(float64(deg)))
			if origin.Distance(np) > d+1e-9 {
				t.Fatalf("%d° d=%.2f: moved %.3f to %+v", deg, d, origin.Distance(np), np)
			}
			if rem < 0 || rem >= math.Sqrt2 {
				t.Fatalf("%d° d=%.2f: remainder %f outside [0, √2)", deg, d, rem)
			}
		}
	}
}

func TestPointFromDistanceAndAngle_DegenerateInput(t *testing.T) {
	origin := Point{5, 5}
	for _, c := range []struct {
		d float64
		a Angle
	}{{-3, 0}, {0, 0}, {math.NaN(), 0}, {2, Angle(math.NaN())}} {
		if np, rem := origin.PointFromDistanceAndAngle(c.d, c.a); np != origin || rem != 0 {
			t.Errorf("d=%v a=%v: got %+v rem %v", c.d, c.a, np, rem)
		}
	}
}

func TestAngle_Normalize(t *testing.T) {
	a := Angle(-math.Pi / 2).Normalize()
	if math.Abs(a.Radians()-3*math.Pi/2) > 1e-9 {
		t.Fatalf("expected 3pi/2, got %f", a.Radians())
	}
	if b := AngleFromDegrees(720).Normalize(); math.Abs(b.Radians()) > 1e-9 {
		t.Fatalf("expected 0 after two full turns, got %f", b.Radians())
	}
}

func TestRect_BottomRightIsInclusive(t *testing.T) {
	r := NewRect(16, 32, 16, 16)
	if br := r.BottomRight(); br != (Point{31, 47}) {
		t.Fatalf("expected (31,47), got %+v", br)
	}
	if !r.Contains(r.BottomRight()) {
		t.Fatal("bottom-right pixel should be inside")
	}
	if r.Contains(Point{32, 47}) {
		t.Fatal("pixel past the right edge should be outside")
	}
}

func TestRandom_RangeInclusive(t *testing.T) {
	rng := NewRandom(1)
	seenLo, seenHi := false, false
	for i := 0; i < 1000; i++ {
		v := rng.Range(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("value %d outside [-2,2]", v)
		}
		seenLo = seenLo || v == -2
		seenHi = seenHi || v == 2
	}
	if !seenLo || !seenHi {
		t.Fatalf("both bounds should be reachable (lo=%v hi=%v)", seenLo, seenHi)
	}
	if v := rng.Range(5, 5); v != 5 {
		t.Fatalf("degenerate range should return min, got %d", v)
	}
}
