package logging

import (
	"strconv"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Chart adds the kind of chart.
func Chart(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("chart", kind)
	}
}

// Viewport adds the viewport size.
func Viewport(w, h float64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("viewport", num(w)+"x"+num(h))
	}
}

// Passes adds the number of layout passes and whether they converged.
func Passes(n int, converged bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("passes", n).Bool("converged", converged)
	}
}

// Scale adds the bounds and step of an axis scale.
func Scale(axis string, min, max, step float64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(axis+"_scale", "["+num(min)+":"+num(max)+"/"+num(step)+"]")
	}
}

// Count adds the number of bars, points or wedges.
func Count(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("count", n)
	}
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// File adds a file name.
func File(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("file", name)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// LogEvent is a wrapper that allows adding Fields to a bolt.Event.
type LogEvent struct {
	event *bolt.Event
}

// NewEvent wraps a bolt.Event for field application.
func NewEvent(e *bolt.Event) *LogEvent {
	return &LogEvent{event: e}
}

// Add applies a field to the event and returns the wrapper for chaining.
func (l *LogEvent) Add(f Field) *LogEvent {
	l.event = f(l.event)
	return l
}

// Msg sends the log event with a message.
func (l *LogEvent) Msg(msg string) {
	l.event.Msg(msg)
}

// Debug returns a LogEvent wrapper for debug level logging.
func Debug() *LogEvent { return NewEvent(Get().Debug()) }

// Info returns a LogEvent wrapper for info level logging.
func Info() *LogEvent { return NewEvent(Get().Info()) }

// Warn returns a LogEvent wrapper for warn level logging.
func Warn() *LogEvent { return NewEvent(Get().Warn()) }

// Error returns a LogEvent wrapper for error level logging.
func Error() *LogEvent { return NewEvent(Get().Error()) }
