package csvfile

import "github.com/jonboulle/clockwork"

// clock times file loads; tests freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for load timing. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
