package delivery

import (
	"fmt"
	"strings"

	"deliveryquery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// The declared order is significant: reports that sort by status use it
// rather than the string names.
//
//	Created -> Confirmed -> Loading -> InTransit -> Arrived -> Done
//	    \__________\___________\__________\___________\______-> Canceled
//
// Confirmed means the delivery has been paid for.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a registered delivery awaiting payment.
	Created

	// Confirmed marks a paid delivery.
	Confirmed

	// Loading indicates cargo is being loaded at the origin.
	Loading

	// InTransit indicates the cargo has left the origin.
	InTransit

	// Arrived indicates the cargo reached the destination and awaits hand-over.
	Arrived

	// Done is a final state: the delivery was handed over.
	Done

	// Canceled is a final state: the delivery will not be performed.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Confirmed: "Confirmed",
		Loading:   "Loading",
		InTransit: "InTransit",
		Arrived:   "Arrived",
		Done:      "Done",
		Canceled:  "Canceled",
	}
}

// Statuses returns every valid status in declared order.
func Statuses() []Status {
	return []Status{Created, Confirmed, Loading, InTransit, Arrived, Done, Canceled}
}

// ParseStatus resolves a status by its name, ignoring case.
// Unknown is never returned on success.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if strings.EqualFold(status.String(), strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and any value outside the declared range.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPaid reports whether the status is exactly Confirmed.
func (s Status) IsPaid() bool {
	return s == Confirmed
}

// IsFinished reports whether the status is Done or Canceled.
// The check is by exact value, not by position in the declared order.
func (s Status) IsFinished() bool {
	return s == Done || s == Canceled
}

// MarshalText encodes the status by name so report payloads stay readable.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
