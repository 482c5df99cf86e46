package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

var RealClockProvider = sync.OnceValue(func() Clock {
	return &RealClock{}
})

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Func adapts a plain function into a Clock, handy for tests that need to
// control the passage of time.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
