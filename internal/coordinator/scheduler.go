package coordinator

import "time"

// Scheduler arms one-shot cancelable callbacks. The indirection exists so
// tests can fire demotions deterministically instead of sleeping through the
// confirmation window.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback. Stop reports whether the
// callback was prevented from running.
type Timer interface {
	Stop() bool
}

type systemScheduler struct{}

// NewScheduler returns the production scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return systemScheduler{}
}

func (systemScheduler) Schedule(d time.Duration, fn func()) Timer {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (st systemTimer) Stop() bool {
	return st.t.Stop()
}
