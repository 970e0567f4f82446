package services

import (
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// OrderLifecycle is the single entry point for changing the state of an order.
//
// Business rules:
//   - The order must be valid
//   - The target must be a legal successor of the current state, otherwise
//     *errs.IllegalTransitionError
//   - The role must be permitted by the PermissionChecker, otherwise
//     *errs.ForbiddenError
//   - On failure the order is unchanged
//
// Atomicity per order is the caller's responsibility (see the ChangeOrderState
// command, which locks the order and relies on an optimistic version check).
//
// Example usage:
//
//	lifecycle := NewOrderLifecycle(NewRolePolicy())
//	change, err := lifecycle.Transition(o, order.Delivered, order.Baker, now)
//	if errors.Is(err, errs.ErrForbidden) {
//	    // report access denied
//	}
type OrderLifecycle struct {
	permissions PermissionChecker
}

// NewOrderLifecycle creates a lifecycle using the given permission checker.
// A nil checker falls back to the default RolePolicy.
func NewOrderLifecycle(permissions PermissionChecker) OrderLifecycle {
	if permissions == nil {
		permissions = NewRolePolicy()
	}

	return OrderLifecycle{permissions: permissions}
}

// Transition validates and applies a state change.
//
// Parameters:
//   - o: the order to change
//   - target: requested state
//   - role: role of the requesting actor
//   - at: the instant the change takes effect, supplied by the caller's clock
//
// Returns:
//   - order.StateChange: the event appended to the order history
//   - error: validation, IllegalTransition or Forbidden errors
func (l OrderLifecycle) Transition(o *order.Order, target order.State, role order.Role, at time.Time) (order.StateChange, error) {
	if err := o.Validate(); err != nil {
		return order.StateChange{}, err
	}

	from := o.State()
	if _, err := from.TransitionTo(target); err != nil {
		return order.StateChange{}, err
	}

	if !l.permissions.CanTransition(role, from, target) {
		return order.StateChange{}, errs.NewForbiddenError(role.String(), from.String(), target.String())
	}

	return o.ChangeState(target, role, at)
}
