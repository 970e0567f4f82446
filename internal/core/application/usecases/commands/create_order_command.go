package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested product and quantity.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to register a new customer order.
// The order starts in the NEW state.
//
// Example:
//
//	due := time.Date(2026, time.April, 16, 9, 0, 0, 0, time.UTC)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Café Rive", &due, []OrderLine{
//	    {ProductID: baguetteID, Quantity: 12},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer string
	dueDate  *time.Time
	lines    []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that the order id is set, the customer is not
// blank and every line references a product with a positive quantity.
// The due date is optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer string,
	dueDate *time.Time,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if dueDate != nil {
		due := *dueDate
		cmd.dueDate = &due
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// DueDate returns the requested delivery time, if any.
func (c CreateOrderCommand) DueDate() *time.Time {
	if c.dueDate == nil {
		return nil
	}
	due := *c.dueDate
	return &due
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var lineErrs []error
	for i, l := range lines {
		if err := l.ProductID.Validate(); err != nil {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err))
		}
		if l.Quantity <= 0 {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", l.Quantity),
			))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
