package frame

import "time"

// spinWindow is how long before the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// Limiter paces a render loop to a target frame rate.
type Limiter struct {
	next time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{}
}

// Wait blocks until the next frame is due at fps frames per second.
// fps <= 0 disables the limit and forgets the schedule. Sleeping stops
// shortly before the deadline and the rest is spun out for precision.
func (l *Limiter) Wait(fps int) {
	if fps <= 0 {
		l.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(fps)

	if l.next.IsZero() {
		l.next = time.Now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of racing to catch up.
	if late := -time.Until(l.next); late > target {
		l.next = time.Now().Add(target)
	}
}
