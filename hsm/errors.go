// Package hsm implements the hierarchical state machine runtime: binding
// a parsed tree to user state records, active-state tracking, entry/exit
// ordering over LCA transitions, region fan-out, and guarded reaction
// dispatch up the ancestor chain.
package hsm

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's error kinds. Wrap with fmt.Errorf
// and %w, or compare with errors.Is.
var (
	// ErrBind is the umbrella sentinel for binder defects (unknown name,
	// missing name, arity mismatch); individual defects are aggregated
	// with go.uber.org/multierr so every problem in a binding is
	// reported in one pass.
	ErrBind = errors.New("hsm: bind error")

	// ErrUnsupportedEvent means ValidateEvent was asked to check an
	// event type E with no reactant anywhere in the tree. React itself
	// does not return it; for such an event React reports false.
	ErrUnsupportedEvent = errors.New("hsm: unsupported event type")

	// ErrInvariantViolation means CheckInvariants found the active set
	// in a state the engine's structural invariants forbid. This is
	// always an engine (or misbehaving state record) bug, never a
	// normal runtime condition.
	ErrInvariantViolation = errors.New("hsm: invariant violation")

	// ErrRegionLCA means a transition's computed LCA is an orthogonal
	// region: a region's children are independent and never share a
	// single parent-relative transition target.
	ErrRegionLCA = errors.New("hsm: transition LCA is a region")

	// ErrAlreadyStarted / ErrNotStarted guard Start/Stop preconditions.
	ErrAlreadyStarted = errors.New("hsm: machine already started")
	ErrNotStarted     = errors.New("hsm: machine not started")
)

// UnknownNameError reports a bound name absent from the parsed tree.
type UnknownNameError struct{ Name string }

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("hsm: bound name %q does not appear in the parsed tree", e.Name)
}
func (e *UnknownNameError) Unwrap() error { return ErrBind }

// MissingNameError reports a tree vertex with no bound record.
type MissingNameError struct{ Name string }

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("hsm: tree vertex %q has no bound state record", e.Name)
}
func (e *MissingNameError) Unwrap() error { return ErrBind }

// ArityMismatchError reports a binding whose size disagrees with the
// number of tree vertices.
type ArityMismatchError struct {
	WantVertices int
	GotBindings  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("hsm: tree has %d vertices but %d records were bound", e.WantVertices, e.GotBindings)
}
func (e *ArityMismatchError) Unwrap() error { return ErrBind }
