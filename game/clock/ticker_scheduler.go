package clock

import (
	"sync"
	"time"
)

// TickerScheduler runs one timer goroutine per scheduled period and
// delivers its ticks on C. It never calls into the engine; the goroutine
// that owns the engine reads C and calls Step itself.
type TickerScheduler struct {
	mu     sync.Mutex
	ticks  chan struct{}
	stop   chan struct{}
	wg     sync.WaitGroup
	period time.Duration
	closed bool
}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{
		// Buffer of one coalesces ticks the consumer has not read yet
		ticks: make(chan struct{}, 1),
	}
}

// C returns the tick channel
func (ts *TickerScheduler) C() <-chan struct{} {
	return ts.ticks
}

// Schedule stops any running timer, drops an undelivered tick from it and
// starts firing every period
func (ts *TickerScheduler) Schedule(period time.Duration) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.closed {
		return
	}
	ts.stopLocked()
	if period <= 0 {
		return
	}

	ts.period = period
	stop := make(chan struct{})
	ts.stop = stop
	ts.wg.Add(1)
	go ts.run(period, stop)
}

// Stop cancels the running timer
func (ts *TickerScheduler) Stop() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.stopLocked()
}

// Close stops the timer for good; later Schedule calls are ignored
func (ts *TickerScheduler) Close() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.stopLocked()
	ts.closed = true
}

// Period returns the last scheduled period
func (ts *TickerScheduler) Period() time.Duration {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.period
}

func (ts *TickerScheduler) stopLocked() {
	if ts.stop == nil {
		return
	}
	close(ts.stop)
	ts.stop = nil
	ts.wg.Wait()

	// Discard a tick queued by the superseded timer
	select {
	case <-ts.ticks:
	default:
	}
}

func (ts *TickerScheduler) run(period time.Duration, stop <-chan struct{}) {
	defer ts.wg.Done()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			case ts.ticks <- struct{}{}:
			default:
			}
		}
	}
}
