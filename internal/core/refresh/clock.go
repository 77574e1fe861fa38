package refresh

import "time"

// Timer is a pending deferred call
type Timer interface {
	Stop() bool
}

// Clock supplies the current time and deferred execution
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by the time package
func SystemClock() Clock {
	return systemClock{}
}

type noopMetrics struct{}

func (noopMetrics) RecordCycle(string)                      {}
func (noopMetrics) RecordFetch(string, time.Duration)       {}
func (noopMetrics) RecordRetryScheduled(int, time.Duration) {}
func (noopMetrics) RecordTerminalError(string)              {}
func (noopMetrics) RecordCachedServed(bool)                 {}
