package geom

import "github.com/vdobler/bakesale"

// Shorthands for the error values charts report.
var (
	ErrDegenerateRange = bakesale.ErrDegenerateRange
	ErrEmptyModel      = bakesale.ErrEmptyModel
	ErrZeroTotal       = bakesale.ErrZeroTotal
	ErrNegativeValue   = bakesale.ErrNegativeValue
	ErrNoLayout        = bakesale.ErrNoLayout
)
