package bakesale

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
	{Interval{5, 5}, math.Inf(1), Interval{5, 5}},
}

// sameInterval compares a and b treating NaN edges as equal.
func sameInterval(a, b Interval) bool {
	same := func(x, y float64) bool { return x == y || (math.IsNaN(x) && math.IsNaN(y)) }
	return same(a.Min, b.Min) && same(a.Max, b.Max)
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !sameInterval(got, tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalDegenerate(t *testing.T) {
	if !UnsetInterval().Degenerate() {
		t.Errorf("unset interval not degenerate")
	}
	if !(Interval{3, 3}).Degenerate() {
		t.Errorf("[3,3] not degenerate")
	}
	if (Interval{3, 4}).Degenerate() {
		t.Errorf("[3,4] degenerate")
	}
}

var scaleAxisTests = []struct {
	min, max, avail, size float64
	want                  AxisScale
}{
	// The population bar chart: 350.5 pixel high plot, 13 pixel font.
	{0, 1321, 350.5, 18, AxisScale{0, 1400, 100}},
	{0, 1400, 350.5, 18, AxisScale{0, 1500, 100}},
	{0, 10, 1000, 18, AxisScale{0, 11, 1}},
	{0, 99, 400, 18, AxisScale{0, 100, 5}},
	{0, 9801, 440, 18, AxisScale{0, 10000, 500}},
	{-12, 30, 300, 18, AxisScale{-15, 35, 5}},
	{-7, -3, 300, 18, AxisScale{-7, -2, 1}},
	{0.2, 0.7, 300, 18, AxisScale{0, 1, 1}},
	{5, 5, 100, 18, AxisScale{5, 6, 1}},        // degenerate
	{0, 1321, 0, 18, AxisScale{0, 5000, 5000}}, // no room at all
	{0, 1321, -20, 18, AxisScale{0, 5000, 5000}},
}

func TestScaleAxis(t *testing.T) {
	for i, tc := range scaleAxisTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := ScaleAxis(tc.min, tc.max, tc.avail, tc.size)
			if got != tc.want {
				t.Errorf("ScaleAxis(%g,%g,%g,%g) = %v, want %v",
					tc.min, tc.max, tc.avail, tc.size, got, tc.want)
			}
		})
	}
}

// nice reports whether step is one of 1, 5, 10, 50, 100, ...
func nice(step float64) bool {
	for step >= 10 {
		step /= 10
	}
	return step == 1 || step == 5
}

func TestScaleAxisInvariants(t *testing.T) {
	for _, max := range []float64{1, 3, 17, 99, 100, 101, 999, 1321, 4711, 9801, 123456} {
		for _, min := range []float64{0, -max / 3, max / 2} {
			for _, avail := range []float64{0, 50, 200, 350.5, 1000} {
				s := ScaleAxis(min, max, avail, 18)
				if !nice(s.Step) {
					t.Errorf("ScaleAxis(%g,%g,%g): step %g not nice", min, max, avail, s.Step)
				}
				if s.Min > min || s.Max <= max {
					t.Errorf("ScaleAxis(%g,%g,%g) = %v does not cover data", min, max, avail, s)
				}
				if n := (s.Max - s.Min) / s.Step; n != math.Round(n) {
					t.Errorf("ScaleAxis(%g,%g,%g) = %v: range not a multiple of step", min, max, avail, s)
				}
				if math.Mod(s.Min, s.Step) != 0 {
					t.Errorf("ScaleAxis(%g,%g,%g) = %v: min not a multiple of step", min, max, avail, s)
				}
				if avail > 0 && s.Step < max-min && avail/((max-min)/s.Step) < 18 {
					t.Errorf("ScaleAxis(%g,%g,%g) = %v: labels overlap", min, max, avail, s)
				}
			}
		}
	}
}

func TestScaleAxisFunc(t *testing.T) {
	m := DefaultFonts().Label
	var seen []float64
	got := ScaleAxisFunc(0, 99, 365, func(s AxisScale) float64 {
		seen = append(seen, s.Step)
		return s.LabelWidth(m) + 5
	})
	// Step 5 needs 26 pixels for "100" but offers only 18.4.
	if want := (AxisScale{0, 100, 10}); got != want {
		t.Errorf("ScaleAxisFunc = %v, want %v", got, want)
	}
	if want := []float64{1, 5, 10}; len(seen) != len(want) || seen[0] != 1 || seen[1] != 5 || seen[2] != 10 {
		t.Errorf("candidate steps %v, want %v", seen, want)
	}
}

func TestAxisScaleValues(t *testing.T) {
	s := AxisScale{0, 1400, 100}
	if s.N() != 14 {
		t.Errorf("N = %d, want 14", s.N())
	}
	v := s.Values()
	if len(v) != 15 || v[0] != 0 || v[14] != 1400 {
		t.Errorf("Values = %v", v)
	}
	if (AxisScale{}).N() != 0 {
		t.Errorf("zero scale has %d steps", (AxisScale{}).N())
	}
}

func TestAxisScaleLabel(t *testing.T) {
	s := AxisScale{-15, 35, 5}
	for _, tc := range []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-15, "-15"},
		{1400, "1400"},
		{0.5, "0.5"},
		{1e6, "1000000"},
	} {
		if got := s.Label(tc.v); got != tc.want {
			t.Errorf("Label(%g) = %q, want %q", tc.v, got, tc.want)
		}
	}

	m := DefaultFonts().Label
	if got := s.LabelWidth(m); got != 21 {
		t.Errorf("LabelWidth = %g, want 21 (\"-15\")", got)
	}
	if got := (AxisScale{0, 1400, 100}).LabelWidth(m); got != 28 {
		t.Errorf("LabelWidth = %g, want 28 (\"1400\")", got)
	}
}

func TestAxisScaleTicker(t *testing.T) {
	s := AxisScale{0, 1000, 100}
	ticks := s.Ticks(150, 1000)
	if len(ticks) != 9 {
		t.Fatalf("got %d ticks, want 9", len(ticks))
	}
	if ticks[0].Value != 200 || ticks[0].Label != "200" {
		t.Errorf("first tick %+v", ticks[0])
	}
	if ticks[8].Value != 1000 {
		t.Errorf("last tick %+v", ticks[8])
	}
}

func TestAxisScaleContains(t *testing.T) {
	s := AxisScale{-15, 35, 5}
	for _, tc := range []struct {
		v    float64
		want bool
	}{{-15, true}, {0, true}, {35, true}, {-15.5, false}, {36, false}, {nan, false}} {
		if got := s.Contains(tc.v); got != tc.want {
			t.Errorf("%v.Contains(%g) = %t, want %t", s, tc.v, got, tc.want)
		}
	}
}
