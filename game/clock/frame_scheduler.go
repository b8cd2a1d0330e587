package clock

import "time"

// FrameScheduler is polled once per rendered frame and reports when a tick
// is due. Schedule replaces the armed deadline, so a superseded period can
// never fire.
type FrameScheduler struct {
	clock  TimeProvider
	period time.Duration
	next   time.Time
	active bool
}

func NewFrameScheduler(clock TimeProvider) *FrameScheduler {
	if clock == nil {
		clock = SystemTime{}
	}
	return &FrameScheduler{clock: clock}
}

func (fs *FrameScheduler) Schedule(period time.Duration) {
	fs.period = period
	fs.next = fs.clock.Now().Add(period)
	fs.active = period > 0
}

func (fs *FrameScheduler) Stop() {
	fs.active = false
}

// Active reports whether a period is armed
func (fs *FrameScheduler) Active() bool {
	return fs.active
}

// Period returns the last scheduled period
func (fs *FrameScheduler) Period() time.Duration {
	return fs.period
}

// Due reports at most one tick per call. A frame that arrives late does not
// produce a burst of catch-up ticks.
func (fs *FrameScheduler) Due() bool {
	if !fs.active {
		return false
	}
	now := fs.clock.Now()
	if now.Before(fs.next) {
		return false
	}
	fs.next = fs.next.Add(fs.period)
	if fs.next.Before(now) {
		fs.next = now.Add(fs.period)
	}
	return true
}
