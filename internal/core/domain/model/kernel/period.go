package kernel

import (
	"fmt"
	"time"

	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

// ErrPeriodIsNotConstructed is returned when a zero-value Period is used.
var ErrPeriodIsNotConstructed = errs.NewValueIsRequiredError("period must be created via NewPeriod constructor")

// Period is a time window (loading or arrival) whose start and end may each be
// unset. An unset side is represented by the zero time.Time; HasStart and HasEnd
// report whether a side is set.
//
// Example:
//
//	loading, err := kernel.NewPeriod(startLoading, time.Time{}) // end not known yet
//	if err != nil {
//	    // end precedes start
//	}
//	if loading.HasStart() {
//	    fmt.Println(loading.Start())
//	}
type Period struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewPeriod creates a Period. Pass the zero time for an unset side.
// When both sides are set the end must not be before the start.
func NewPeriod(start time.Time, end time.Time) (Period, error) {
	p := Period{guard: guard.NewConstructorGuard()}

	if err := p.setBounds(start, end); err != nil {
		return Period{}, err
	}

	return p, nil
}

// NewPeriodFromPointers is a convenience for adapters that keep nullable columns.
func NewPeriodFromPointers(start *time.Time, end *time.Time) (Period, error) {
	var s, e time.Time
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return NewPeriod(s, e)
}

// Validate checks that the period was created through NewPeriod.
func (p Period) Validate() error {
	return p.guard.Validate(ErrPeriodIsNotConstructed)
}

// Start returns the start of the window, or the zero time when unset.
func (p Period) Start() time.Time {
	return p.start
}

// End returns the end of the window, or the zero time when unset.
func (p Period) End() time.Time {
	return p.end
}

func (p Period) HasStart() bool {
	return !p.start.IsZero()
}

func (p Period) HasEnd() bool {
	return !p.end.IsZero()
}

// StartPtr and EndPtr return nil for an unset side.
func (p Period) StartPtr() *time.Time {
	return timePtr(p.start)
}

func (p Period) EndPtr() *time.Time {
	return timePtr(p.end)
}

func (p Period) String() string {
	return fmt.Sprintf("Period(%s..%s)", formatBound(p.start), formatBound(p.end))
}

func (p *Period) setBounds(start time.Time, end time.Time) error {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause(
			"period is invalid",
			fmt.Errorf("end %s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}

	// Round(0) drops the monotonic reading so that equal instants compare equal.
	p.start = start.Round(0)
	p.end = end.Round(0)
	return nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "unset"
	}
	return t.Format(time.RFC3339)
}
