package core

import "testing"

func TestOrientationRotationPeriod(t *testing.T) {
	for _, o := range Orientations() {
		cw, ccw := o, o
		for i := 0; i < 4; i++ {
			cw = cw.Clockwise()
			ccw = ccw.Counterclockwise()
		}
		if cw != o {
			t.Errorf("four clockwise turns from %v gave %v", o, cw)
		}
		if ccw != o {
			t.Errorf("four counterclockwise turns from %v gave %v", o, ccw)
		}
		if o.Clockwise().Counterclockwise() != o {
			t.Errorf("clockwise then counterclockwise from %v did not return", o)
		}
		if o.Reverse() != o.Clockwise().Clockwise() {
			t.Errorf("Reverse(%v) = %v, expected two clockwise turns", o, o.Reverse())
		}
	}
}

func TestOrientationClockwise(t *testing.T) {
	tests := []struct {
		from, cw, ccw Orientation
	}{
		{North, East, West},
		{East, South, North},
		{South, West, East},
		{West, North, South},
	}

	for _, tc := range tests {
		if got := tc.from.Clockwise(); got != tc.cw {
			t.Errorf("%v.Clockwise() = %v, expected %v", tc.from, got, tc.cw)
		}
		if got := tc.from.Counterclockwise(); got != tc.ccw {
			t.Errorf("%v.Counterclockwise() = %v, expected %v", tc.from, got, tc.ccw)
		}
	}
}

func TestOrientationDelta(t *testing.T) {
	tests := []struct {
		o        Orientation
		expected Point
	}{
		{North, Pt(0, -1)},
		{East, Pt(1, 0)},
		{South, Pt(0, 1)},
		{West, Pt(-1, 0)},
	}

	for _, tc := range tests {
		if got := tc.o.Delta(); got != tc.expected {
			t.Errorf("%v.Delta() = %+v, expected %+v", tc.o, got, tc.expected)
		}
		back := tc.o.Reverse().Delta()
		if back.X != -tc.expected.X || back.Y != -tc.expected.Y {
			t.Errorf("reverse delta of %v = %+v, expected negation", tc.o, back)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	for _, o := range Orientations() {
		parsed, err := ParseOrientation(o.String())
		if err != nil {
			t.Fatalf("ParseOrientation(%q) failed: %v", o.String(), err)
		}
		if parsed != o {
			t.Errorf("ParseOrientation(%q) = %v, expected %v", o.String(), parsed, o)
		}
	}

	if _, err := ParseOrientation("up"); err == nil {
		t.Error("ParseOrientation(\"up\") should fail")
	}
}
