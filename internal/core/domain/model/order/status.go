package order

import (
	"errors"
	"fmt"

	"orderservice/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status move is not
// an allowed edge of the order lifecycle, including any move out of a
// terminal status.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order. It implements a state
// machine with an explicit successor table, so a status can only ever be
// replaced by one of its enumerated successors.
//
// Lifecycle:
//
//	Pending ──> Approved ──> Processing ──> Shipped ──> Delivered
//	   │            │             │            │
//	   └────────────┴─────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created. No credit has
	// been reserved yet.
	Pending

	// Approved indicates the order passed the credit check and the partner's
	// credit has been debited by the order total.
	Approved

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered indicates the order reached the partner. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/persistence name of every status,
// including Unknown for diagnostics.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Approved:   "APPROVED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// getSuccessors returns the allowed next statuses per current status.
// Terminal statuses map to an empty list.
func getSuccessors() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Approved, Cancelled},
		Approved:   {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered, Cancelled},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a wire name such as "APPROVED" into a Status.
// Returns an error for unrecognized names, including "UNKNOWN".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the enumerated lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getSuccessors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next is an allowed successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getSuccessors()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge s -> next against the successor table and
// returns next on success. The returned error unwraps to
// ErrInvalidStatusTransition so callers can classify it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrInvalidStatusTransition, s)
	}
	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s cannot move to %s", ErrInvalidStatusTransition, s, next)
	}
	return next, nil
}
