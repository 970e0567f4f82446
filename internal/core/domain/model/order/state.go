package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// State represents the lifecycle state of a bakery order.
//
// State transitions:
//
//	New ──┬──> Confirmed ──┬──> Ready ──┬──> Delivered
//	      │        ^       │            │
//	      │        │       v            │
//	      ├──────> Problem <────────────┘
//	      │           │
//	      └──> Cancelled <── (New, Confirmed, Problem)
//
// Delivered and Cancelled are terminal.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// New is the initial state of a freshly taken order.
	New

	// Confirmed means the bakery accepted the order and will bake it.
	Confirmed

	// Ready means the goods are baked and waiting for pickup or delivery.
	Ready

	// Delivered means the customer received the order. Terminal.
	Delivered

	// Problem means the order cannot currently be fulfilled and needs attention.
	Problem

	// Cancelled means the order was withdrawn. Terminal.
	Cancelled
)

func getStateNames() map[State]string {
	return map[State]string{
		Unknown:   "UNKNOWN",
		New:       "NEW",
		Confirmed: "CONFIRMED",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Problem:   "PROBLEM",
		Cancelled: "CANCELLED",
	}
}

// getTransitions returns the legal transition table. Unknown is intentionally absent.
func getTransitions() map[State][]State {
	return map[State][]State{
		New:       {Confirmed, Cancelled, Problem},
		Confirmed: {Ready, Problem, Cancelled},
		Ready:     {Delivered, Problem},
		Problem:   {Confirmed, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// AllStates returns every valid state in declaration order.
func AllStates() []State {
	return []State{New, Confirmed, Ready, Delivered, Problem, Cancelled}
}

// ParseState converts an identifier such as "READY" (case-insensitive) to a State.
func ParseState(name string) (State, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range AllStates() {
		if getStateNames()[s] == normalized {
			return s, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a known state", name))
}

// Validate checks that the State is one of the six lifecycle states.
//
// Returns:
//   - nil if the state is valid
//   - *errs.ValueIsInvalidError for Unknown and out-of-range values
func (s State) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}

	return nil
}

// String returns the identifier of the state ("NEW", "READY", ...). Values outside
// the enumeration are reported as "UNKNOWN". It is also the persisted form.
func (s State) String() string {
	if name, ok := getStateNames()[s]; ok {
		return name
	}

	return getStateNames()[Unknown]
}

// DisplayName returns the human-readable label: the identifier lowercased with
// its first letter capitalized, e.g. Ready -> "Ready".
//
// Example:
//
//	order.Cancelled.DisplayName() // "Cancelled"
func (s State) DisplayName() string {
	name := s.String()

	return name[:1] + strings.ToLower(name[1:])
}

// IsTerminal reports whether no transition can leave the state.
func (s State) IsTerminal() bool {
	targets, ok := getTransitions()[s]

	return ok && len(targets) == 0
}

// AllowedTargets returns the states reachable from s in a single transition.
// The result is a fresh slice; invalid states have no targets.
func (s State) AllowedTargets() []State {
	targets := getTransitions()[s]
	result := make([]State, len(targets))
	copy(result, targets)

	return result
}

// CanTransitionTo reports whether target is in the legal set of s.
func (s State) CanTransitionTo(target State) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

// TransitionTo returns target when the move from s is legal.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (Unknown, *errs.IllegalTransitionError) otherwise, including invalid
//     source or target values
//
// Example:
//
//	next, err := order.Ready.TransitionTo(order.Delivered)
func (s State) TransitionTo(target State) (State, error) {
	if err := target.Validate(); err != nil {
		return Unknown, errs.NewIllegalTransitionErrorWithCause(s.String(), target.String(), err)
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
	}

	return target, nil
}
