package query

import "time"

// Condition represents a single member of the conjunctive filter predicate set applied before pagination.
// Conditions whose value is not supplied are no-ops.
type Condition interface {
	// Active reports whether the condition constrains the result at all
	Active() bool
}

// Equal restricts the result to records whose field equals a value.
// A nil value (including typed nil pointers) makes the condition a no-op.
type Equal struct {
	Field string
	Value any
}

// Active reports whether a value was supplied
func (cond Equal) Active() bool {
	return Scalar(cond.Value) != nil
}

// DayRange restricts the result to records whose date-like field lies within the half-open window
// [start of From, start of the day after To). Each bound is optional.
type DayRange struct {
	Field string
	From  *time.Time
	To    *time.Time
}

// Active reports whether at least one bound was supplied
func (cond DayRange) Active() bool {
	return cond.From != nil || cond.To != nil
}

// Lower returns the inclusive lower bound of the window
func (cond DayRange) Lower() (time.Time, bool) {
	if cond.From == nil {
		return time.Time{}, false
	}
	return startOfDay(*cond.From), true
}

// Upper returns the exclusive upper bound of the window, which is the start of the day following To
func (cond DayRange) Upper() (time.Time, bool) {
	if cond.To == nil {
		return time.Time{}, false
	}
	return startOfDay(*cond.To).AddDate(0, 0, 1), true
}

// Visibility restricts the result to the records a viewer may see: a record is visible if its private flag is false
// or its target equals the viewer.
// The rule only applies if it is enabled and a viewer ID is supplied.
type Visibility struct {
	PrivateField string
	TargetField  string
	ViewerID     *int64
	Enabled      bool
}

// Active reports whether the rule is enabled and has a viewer to apply to
func (cond Visibility) Active() bool {
	return cond.Enabled && cond.ViewerID != nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
