package bakesale

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// AxisScale

// AxisScale is the rounded range an axis is drawn against, as opposed to
// the raw range covered by the data. Ticks are placed at every multiple of
// Step between Min and Max, both included.
//
// A scale produced by ScaleAxis satisfies Min <= dataMin < dataMax < Max,
// (Max-Min) is a multiple of Step and Step is one of 1, 5, 10, 50, 100, ...
type AxisScale struct {
	Min, Max, Step float64
}

// ScaleAxis picks a step and rounded bounds for data in [dataMin, dataMax]
// which has to be shown on available pixels where each tick label needs
// labelSize pixels to be drawn without overlap.
func ScaleAxis(dataMin, dataMax, available, labelSize float64) AxisScale {
	return ScaleAxisFunc(dataMin, dataMax, available,
		func(AxisScale) float64 { return labelSize })
}

// ScaleAxisFunc works like ScaleAxis but determines the space needed per
// label for each candidate scale. This is useful if the labels are laid out
// along the axis (like on an x-axis) where their width depends on the number
// of digits and thus on the scale itself.
//
// Candidate steps grow through the sequence 1, 5, 10, 50, 100, 500, ...
// (alternately multiplied by 5 and by 2) until the labels fit or a single
// step covers the whole data range. An empty data range is treated as a
// range of 1 so that a usable scale is produced.
func ScaleAxisFunc(dataMin, dataMax, available float64, labelSize func(AxisScale) float64) AxisScale {
	span := dataMax - dataMin
	if !(span > 0) {
		span = 1
	}

	step, multiplier := 1.0, 5.0
	for step < span && available/(span/step) < labelSize(roundScale(dataMin, dataMax, step)) {
		step *= multiplier
		multiplier = 7 - multiplier
	}

	return roundScale(dataMin, dataMax, step)
}

// roundScale rounds dataMin down to a multiple of step and dataMax up to
// the next multiple of step strictly above dataMax.
func roundScale(dataMin, dataMax, step float64) AxisScale {
	s := AxisScale{
		Min:  math.Floor(dataMin/step) * step,
		Max:  (math.Floor(dataMax/step) + 1) * step,
		Step: step,
	}
	// Division may round x/step up to the next integer.
	if s.Min > dataMin {
		s.Min -= step
	}
	if s.Max <= dataMax {
		s.Max += step
	}
	return s
}

// N returns the number of steps between Min and Max.
func (s AxisScale) N() int {
	if !(s.Step > 0) {
		return 0
	}
	return int(math.Round((s.Max - s.Min) / s.Step))
}

// Values returns the positions of all ticks from Min to Max.
func (s AxisScale) Values() []float64 {
	n := s.N()
	v := make([]float64, n+1)
	for i := range v {
		v[i] = s.Min + float64(i)*s.Step
	}
	return v
}

// Label formats the tick value v.
func (s AxisScale) Label(v float64) string {
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LabelWidth returns the width of the widest tick label of s. The widest
// label is the one with the most digits, i.e. the label of Min or of Max.
func (s AxisScale) LabelWidth(m TextMetrics) float64 {
	return math.Max(m.StringWidth(s.Label(s.Min)), m.StringWidth(s.Label(s.Max)))
}

// Contains reports whether v lies in [s.Min, s.Max].
func (s AxisScale) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Ticks implements plot.Ticker so that s can drive the axis of a gonum plot.
// Only ticks of s which lie inside [min, max] are returned.
func (s AxisScale) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, v := range s.Values() {
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: s.Label(v)})
	}
	return ticks
}

func (s AxisScale) String() string {
	return fmt.Sprintf("[%g:%g/%g]", s.Min, s.Max, s.Step)
}

// ----------------------------------------------------------------------------
// Interval

// Interval is the range covered by some data. Both edges are NaN as long
// as no finite value has been seen.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN, NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN and infinite values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Degenerate reports whether i is unset or has no extent.
func (i Interval) Degenerate() bool {
	return !i.IsSet() || i.Min == i.Max
}
