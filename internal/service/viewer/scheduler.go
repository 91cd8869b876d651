package viewer

import "time"

// scheduler runs f once after d. The returned stop function cancels the
// call if it has not started and reports whether it did so.
type scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}
