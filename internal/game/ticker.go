package game

import "time"

// Ticker is a periodic trigger driven by elapsed frame time rather than a
// wall clock, so it advances only when the loop dispatches to it.
type Ticker struct {
	interval time.Duration
	acc      time.Duration
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Advance adds elapsed and returns how many times the ticker fired. The
// remainder carries over to the next call.
func (t *Ticker) Advance(elapsed time.Duration) int {
	t.acc += elapsed
	fired := 0
	for t.acc >= t.interval {
		t.acc -= t.interval
		fired++
	}
	return fired
}
