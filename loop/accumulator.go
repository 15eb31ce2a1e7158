package loop

import "time"

// Accumulator turns measured wall-clock intervals into whole fixed-length ticks.
//
// Fractions of a tick carry over to the next Advance. After a stall every
// missed tick is still delivered, one at a time, so simulation steps always
// have the same length.
type Accumulator struct {
	Period time.Duration

	// DeltaU is the number of ticks owed but not yet delivered, always in [0,1)
	// between calls.
	DeltaU float64
}

// Advance adds elapsed to the accumulator and returns how many ticks are due.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if a.Period <= 0 || elapsed <= 0 {
		return 0
	}
	a.DeltaU += float64(elapsed) / float64(a.Period)

	n := 0
	for a.DeltaU >= 1 {
		a.DeltaU--
		n++
	}
	return n
}
