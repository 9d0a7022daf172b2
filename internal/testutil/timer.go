package testutil

import (
	"sync"
	"time"
)

// FakeTimer satisfies backoff.Timer without sleeping and records every requested wait.
type FakeTimer struct {
	mu    sync.Mutex
	waits []time.Duration
	c     chan time.Time
}

func NewFakeTimer() *FakeTimer {
	return &FakeTimer{c: make(chan time.Time, 1)}
}

func (f *FakeTimer) Start(d time.Duration) {
	f.mu.Lock()
	f.waits = append(f.waits, d)
	f.mu.Unlock()
	f.c <- time.Time{}
}

func (f *FakeTimer) Stop() {
	select {
	case <-f.c:
	default:
	}
}

func (f *FakeTimer) C() <-chan time.Time {
	return f.c
}

// Waits returns a copy of the recorded durations.
func (f *FakeTimer) Waits() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]time.Duration, len(f.waits))
	copy(out, f.waits)
	return out
}
