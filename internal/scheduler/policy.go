package scheduler

// Policy holds the numeric constants the allocator and grouper share.
type Policy struct {
	// MinRemainingHours stops filling a day once its remaining budget drops
	// to this value or below.
	MinRemainingHours float64
	// FallbackTaskHours is the effort charged for tasks without a positive
	// estimate.
	FallbackTaskHours float64
}

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	return Policy{
		MinRemainingHours: 0.5,
		FallbackTaskHours: 1.5,
	}
}

// withDefaults replaces non-positive fields with their default values.
func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.MinRemainingHours <= 0 {
		p.MinRemainingHours = d.MinRemainingHours
	}
	if p.FallbackTaskHours <= 0 {
		p.FallbackTaskHours = d.FallbackTaskHours
	}
	return p
}

// hoursEpsilon absorbs float drift when comparing hour sums.
const hoursEpsilon = 1e-9
