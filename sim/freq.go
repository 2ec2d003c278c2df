package sim

import (
	"log"
	"math"
)

// VTimeInSec is emulated time in seconds.
type VTimeInSec float64

// A TimeTeller can tell the current emulated time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// Cycle converts a time to the number of cycles passed since time 0.
func (f Freq) Cycle(time VTimeInSec) uint64 {
	if math.IsNaN(float64(time)) {
		log.Panic("invalid time")
	}

	return uint64(math.Round(float64(time) * float64(f)))
}

// CyclesToTime converts a cycle count into the time it takes at this
// frequency.
func (f Freq) CyclesToTime(cycles uint64) VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(float64(cycles) / float64(f))
}
