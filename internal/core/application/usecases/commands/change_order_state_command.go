package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand requests moving one order to a new lifecycle state on
// behalf of a staff member.
//
// Example:
//
//	cmd, err := NewChangeOrderStateCommand(orderID, order.Delivered, order.Baker)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	change, err := handler.Handle(ctx, cmd)
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.State
	role    order.Role

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand validates the order id, the target state and the role.
// Whether the transition is legal or permitted is decided by the handler.
func NewChangeOrderStateCommand(orderID kernel.UUID, target order.State, role order.Role) (ChangeOrderStateCommand, error) {
	cmd := ChangeOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setRole(role),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

func (c ChangeOrderStateCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStateCommand) Target() order.State {
	return c.target
}

func (c ChangeOrderStateCommand) Role() order.Role {
	return c.role
}

func (c *ChangeOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStateCommand) setTarget(target order.State) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *ChangeOrderStateCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
