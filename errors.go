package bakesale

import "errors"

// Conditions a chart can run into while being laid out or rendered.
//
// ErrDegenerateRange and ErrEmptyModel are recovered from: the layout is
// still produced and the condition is recorded in Layout.Recovered.
// The others are returned to the caller and nothing is drawn.
var (
	// ErrDegenerateRange indicates the data on one axis has no extent.
	ErrDegenerateRange = errors.New("degenerate data range")

	// ErrEmptyModel indicates the model has no bars, points or wedges.
	ErrEmptyModel = errors.New("empty model")

	// ErrZeroTotal indicates the pie values sum to zero.
	ErrZeroTotal = errors.New("pie values sum to zero")

	// ErrNegativeValue indicates a pie value which is negative, NaN or infinite.
	ErrNegativeValue = errors.New("pie value not a finite non-negative number")

	// ErrNoLayout indicates rendering was requested before a successful layout.
	ErrNoLayout = errors.New("chart has not been laid out")

	// ErrBadConfig indicates an invalid chart configuration.
	ErrBadConfig = errors.New("invalid chart configuration")
)
