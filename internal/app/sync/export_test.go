package sync

import "time"

// SetNowFunc pins the command-layer clock for tests and returns a restore
// func.
func SetNowFunc(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}
