package interaction

import "time"

// MaxDuration caps Descriptor.Duration.
const MaxDuration = 99 * time.Second

// Descriptor is the static interaction metadata an interactive entity exposes.
type Descriptor struct {
	Message            string
	RequiresVisibility bool
	Weight             int
	Duration           time.Duration
}

// Normalized returns a copy with Weight floored at zero and Duration clamped to [0, MaxDuration].
func (d Descriptor) Normalized() Descriptor {
	if d.Weight < 0 {
		d.Weight = 0
	}
	if d.Duration < 0 {
		d.Duration = 0
	}
	if d.Duration > MaxDuration {
		d.Duration = MaxDuration
	}
	return d
}

// IsTimed reports whether starting this interaction arms a completion timer.
func (d Descriptor) IsTimed() bool {
	return d.Duration > 0
}
