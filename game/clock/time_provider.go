package clock

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time to schedulers
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the real monotonic clock
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// MockTime is a controllable time source for tests
type MockTime struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTime(start time.Time) *MockTime {
	return &MockTime{currentTime: start}
}

func (m *MockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mock clock forward by d
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
