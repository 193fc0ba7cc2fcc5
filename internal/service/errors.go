package service

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every service failure wraps one of these sentinels so
// handlers can map them to HTTP codes with errors.Is. All are detected
// before any mutation is attempted.
var (
	// ErrNoMembership means the caller's identity has no venue membership
	// anywhere. Surfaced as VENUE_NOT_FOUND, never as Forbidden: "you have
	// no venue" is distinct from "you touched someone else's".
	ErrNoMembership = errors.New("no venue membership for user")

	// ErrForbidden means the membership exists but the role is insufficient.
	ErrForbidden = errors.New("insufficient role")

	// ErrNotFound means the target entity is absent or belongs to another
	// venue. The two cases are indistinguishable to the caller.
	ErrNotFound = errors.New("not found")

	// ErrCrossTenant is the guard's cross-tenant denial. It wraps
	// ErrNotFound so the existence of other tenants' data is never revealed.
	ErrCrossTenant = fmt.Errorf("%w: entity belongs to another venue", ErrNotFound)

	// ErrInvalidInput covers missing or malformed required fields,
	// unparseable dates, and non-positive capacities.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict covers duplicate memberships, admin removal, and creating
	// a venue while already holding a membership.
	ErrConflict = errors.New("conflict")
)

// invalidInput wraps ErrInvalidInput with a field-level message.
func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// conflict wraps ErrConflict with a message.
func conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}
