package game

import "time"

// Scheduler invokes Step periodically on behalf of the engine.
// Schedule cancels any pending tick before arming the new period, so at
// most one timer is active per scheduler.
type Scheduler interface {
	Schedule(period time.Duration)
	Stop()
}

type noopScheduler struct{}

func (noopScheduler) Schedule(time.Duration) {}
func (noopScheduler) Stop()                  {}
