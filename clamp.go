package datepicker

import "time"

// MaxAdjustIterations bounds AdjustDate to roughly one hundred years of
// single day steps.
const MaxAdjustIterations = 36525

// DisabledFunc reports whether a date may not be selected
type DisabledFunc func(time.Time) bool

// A zero min or max leaves that side unbounded in every helper below.

func beforeMin(t, min time.Time) bool {
	return !min.IsZero() && t.Before(min)
}

func afterMax(t, max time.Time) bool {
	return !max.IsZero() && t.After(max)
}

// InRange reports whether t lies within [min, max]
func InRange(t, min, max time.Time) bool {
	return !beforeMin(t, min) && !afterMax(t, max)
}

// Clamp pins t to whichever bound it exceeds.
func Clamp(t, min, max time.Time) time.Time {
	switch {
	case beforeMin(t, min):
		return min
	case afterMax(t, max):
		return max
	default:
		return t
	}
}

// ClampDate moves the calendar date of t onto the bound it exceeds while
// keeping the time of day of t. If the time of day still puts the result
// beyond the bound the bound itself is returned.
func ClampDate(t, min, max time.Time) time.Time {
	var bound time.Time
	switch {
	case beforeMin(t, min):
		bound = min
	case afterMax(t, max):
		bound = max
	default:
		return t
	}

	loc := t.Location()
	by, bm, bd := bound.In(loc).Date()
	result := time.Date(by, bm, bd, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	if !InRange(result, min, max) {
		return bound.In(loc)
	}
	return result
}

// AdjustDate steps t by increment days while isDisabled holds and t is
// within bounds. The walk stops after MaxAdjustIterations steps, so an
// always disabled predicate ends past a bound (or at the cap when
// unbounded) instead of looping forever.
func AdjustDate(t time.Time, increment int, min, max time.Time, isDisabled DisabledFunc) time.Time {
	if isDisabled == nil || increment == 0 {
		return t
	}
	for i := 0; i < MaxAdjustIterations && InRange(t, min, max) && isDisabled(t); i++ {
		t = t.AddDate(0, 0, increment)
	}
	return t
}

// ToValidDate resolves newDate into a selectable date after a move from
// oldDate. The search walks away from oldDate: backwards when newDate is
// strictly before oldDate, forwards otherwise (including equal dates). If
// the walk leaves the bounds, because the bound itself is disabled, it is
// clamped and walked once in the opposite direction. A final ClampDate keeps
// the result in range.
func ToValidDate(oldDate, newDate, min, max time.Time, isDisabled DisabledFunc) time.Time {
	newDate = ClampDate(newDate, min, max)
	if isDisabled == nil {
		return newDate
	}

	increment := 1
	if oldDate.After(newDate) {
		increment = -1
	}

	adjusted := AdjustDate(newDate, increment, min, max, isDisabled)
	if !InRange(adjusted, min, max) {
		adjusted = AdjustDate(ClampDate(adjusted, min, max), -increment, min, max, isDisabled)
	}

	return ClampDate(adjusted, min, max)
}
