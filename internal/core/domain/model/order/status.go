package order

import (
	"fmt"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed, forward-only transition table:
//
//	Initiated ──> Sent ──> Delivered
//
// Delivered is a legal value in memory (it appears in status logs) but is
// never persisted on an order row: reaching Delivered deletes the order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Initiated is the initial status assigned when an order is created.
	Initiated

	// Sent indicates the order has left the kitchen and is on its way.
	Sent

	// Delivered is the terminal state. It is recorded in the status log and
	// then realized as deletion of the order.
	Delivered
)

// getStatusStrings returns the wire/storage names of all statuses,
// including Unknown for string conversion of invalid values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Initiated: "initiated",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns only the statuses accepted from external
// sources, to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Initiated: "initiated",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// getTransitions returns the fixed status flow. Statuses absent from the map
// have no successor.
func getTransitions() map[Status]Status {
	return map[Status]Status{
		Initiated: Sent,
		Sent:      Delivered,
	}
}

// ParseStatus converts a stored status name back to its Status value.
// Returns an error for names outside the valid set.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

// Validate checks that the Status is one of Initiated, Sent, or Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase status name used both for persistence and in
// API responses. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the successor of s in the status flow. The second return
// value is false when s has no successor; the state machine is a total
// function over {Initiated, Sent} and a no-op everywhere else.
func (s Status) Next() (Status, bool) {
	next, ok := getTransitions()[s]
	return next, ok
}

// IsTerminal reports whether s is the final state of the lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
