package interaction

import "time"

// Timer is a single-slot one-shot task advanced explicitly by Advance.
type Timer struct {
	remaining time.Duration
	callback  func()
	active    bool
}

// Arm schedules callback to run once d has elapsed. It fails if the timer is
// already armed, d is not positive or callback is nil; the armed timer is left as is.
func (t *Timer) Arm(d time.Duration, callback func()) bool {
	if t.active || d <= 0 || callback == nil {
		return false
	}
	t.remaining = d
	t.callback = callback
	t.active = true
	return true
}

// Cancel disarms the timer. Returns false if nothing was armed.
func (t *Timer) Cancel() bool {
	if !t.active {
		return false
	}
	t.active = false
	t.callback = nil
	t.remaining = 0
	return true
}

func (t *Timer) IsActive() bool {
	return t.active
}

func (t *Timer) Remaining() time.Duration {
	if !t.active {
		return 0
	}
	return t.remaining
}

// Advance moves the timer forward by dt and runs the callback if it expired.
// The slot is cleared before the callback runs, so the callback may re-arm.
func (t *Timer) Advance(dt time.Duration) bool {
	if !t.active || dt < 0 {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	cb := t.callback
	t.Cancel()
	cb()
	return true
}
