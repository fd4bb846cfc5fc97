package models

import (
	"fmt"
	"time"
)

// TimeWindow is the half-open range [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow keeps both bounds at microsecond precision, the same as
// stored event times.
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{
		Start: start.UTC().Truncate(time.Microsecond),
		End:   end.UTC().Truncate(time.Microsecond),
	}
}

// Contains reports whether t falls inside the window. The start instant is
// included and the end instant is not, so adjacent windows never share an event.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Hours is the window length as a real number; zero or negative for empty
// or inverted windows.
func (w TimeWindow) Hours() float64 {
	return w.Duration().Hours()
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339Nano), w.End.Format(time.RFC3339Nano))
}
