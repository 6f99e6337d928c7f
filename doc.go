// Package bakesale lays out and draws bar charts, pie charts and line
// graphs.
//
// Charts
//
// A chart turns a data model (see package data) into a Layout: the
// regions of the title, the axes and the plot, the axis scales, the tick
// positions and the screen geometry of every bar, line and wedge. The
// chart then draws that layout onto a Surface. Layouts are computed
// whenever the viewport size or the model changes and are never modified
// afterwards, so drawing a layout twice yields the same picture.
// Package geom provides the Bar, Graph and Pie charts.
//
// Scales
//
// Axis scales are chosen by ScaleAxis: the step between two ticks grows
// through 1, 5, 10, 50, 100, ... until the tick labels no longer overlap,
// and the data range is rounded outward to multiples of that step.
//
// Layout
//
// The width of the y tick labels depends on the y scale which depends on
// the height of the plot which in turn depends on the space left after
// the labels. Resolver settles this by alternately computing scales and
// regions for a bounded number of passes.
//
// Surfaces
//
// Layouts are in screen pixels with y growing downward. CanvasSurface
// draws to a gonum/plot canvas (PNG, JPEG, TIFF, PDF and SVG output),
// SVGSurface writes SVG directly.
package bakesale
