package entity

import (
	"time"
)

// NonPaymentKind distinguishes the two servicer-authorized pause types.
type NonPaymentKind string

// Stable values (these exact strings are persisted and exported).
const (
	KindForbearance NonPaymentKind = "forbearance"
	KindDeferment   NonPaymentKind = "deferment"
)

// NonPaymentPeriod is a recorded forbearance or deferment interval.
// End is always >= Start.
type NonPaymentPeriod struct {
	Kind   NonPaymentKind `json:"kind"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Reason *string        `json:"reason,omitempty"`
}

// Months returns the whole calendar-month difference between Start and End.
func (p NonPaymentPeriod) Months() int {
	months := (p.End.Year()-p.Start.Year())*12 + int(p.End.Month()) - int(p.Start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// Overlaps reports whether the period intersects the open interval
// (from, to).
func (p NonPaymentPeriod) Overlaps(from, to time.Time) bool {
	return p.Start.Before(to) && p.End.After(from)
}
