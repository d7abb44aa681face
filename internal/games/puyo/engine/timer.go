package engine

import "time"

// Timer is a cancellable countdown driven by explicit Advance calls.
// A periodic timer rearms itself after each expiry; a one-shot timer stops.
type Timer struct {
	period   time.Duration
	elapsed  time.Duration
	active   bool
	periodic bool
}

// Every arms t as a periodic timer firing every d.
func (t *Timer) Every(d time.Duration) {
	t.period = d
	t.elapsed = 0
	t.active = true
	t.periodic = true
}

// After arms t as a one-shot timer firing once after d.
func (t *Timer) After(d time.Duration) {
	t.period = d
	t.elapsed = 0
	t.active = true
	t.periodic = false
}

// Stop cancels any pending expiry.
func (t *Timer) Stop() {
	t.active = false
	t.elapsed = 0
}

// Active reports whether the timer is armed.
func (t *Timer) Active() bool {
	return t.active
}

// Period returns the configured period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Remaining returns the time until the next expiry, or zero when stopped.
func (t *Timer) Remaining() time.Duration {
	if !t.active {
		return 0
	}
	return t.period - t.elapsed
}

// Advance moves the timer forward by at most dt and reports whether it
// expired. On expiry the unconsumed part of dt is returned as leftover so the
// caller can hand it to whatever runs next. A periodic timer fires at most
// once per call; call again with the leftover to catch up.
func (t *Timer) Advance(dt time.Duration) (fired bool, leftover time.Duration) {
	if !t.active || dt <= 0 {
		return false, 0
	}
	need := t.period - t.elapsed
	if dt < need {
		t.elapsed += dt
		return false, 0
	}
	leftover = dt - need
	if t.periodic {
		t.elapsed = 0
	} else {
		t.Stop()
	}
	return true, leftover
}
