package errors

import (
	"time"

	"github.com/perchui/perch/pkg/geo"
)

// Positioning strategies accepted by ValidateStrategy.
// These mirror the anchor engine's Strategy constants; they are duplicated
// here as plain strings so validation stays a leaf dependency.
const (
	strategyAbsolute = "absolute"
	strategyFixed    = "fixed"
)

// ValidatePlacement validates a placement string against the canonical
// twelve side/alignment pairs. An empty string is accepted and means
// "use the library default".
func ValidatePlacement(s string) error {
	if _, err := geo.ParsePlacement(s); err != nil {
		return New(ErrCodeInvalidPlacement, "invalid placement %q (valid: %v)", s, geo.Placements())
	}
	return nil
}

// ValidateStrategy validates a positioning strategy string.
// An empty string is accepted and means "use the library default".
func ValidateStrategy(s string) error {
	switch s {
	case "", strategyAbsolute, strategyFixed:
		return nil
	}
	return New(ErrCodeInvalidStrategy, "invalid strategy %q (valid: absolute, fixed)", s)
}

// ValidateUpdateInterval validates a continuous-update polling interval.
// Zero is accepted and means "use the library default"; negative intervals
// and sub-millisecond busy loops are rejected.
func ValidateUpdateInterval(d time.Duration) error {
	if d == 0 {
		return nil
	}
	if d < time.Millisecond {
		return New(ErrCodeInvalidInterval, "update interval too small: %s (min 1ms)", d)
	}
	return nil
}
