// Package leaktest holds goroutine leak checks shared by concurrent tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
	pollDelay   = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count at creation and compares it later.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines outlived the work.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := g.settle(g.before + tolerance)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// settle waits up to drainDelay*4 for the count to reach target and returns the last count
func (g *GoroutineChecker) settle(target int) int {
	deadline := time.Now().Add(4 * drainDelay)
	for {
		runtime.Gosched()
		runtime.GC()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollDelay)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it left goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
