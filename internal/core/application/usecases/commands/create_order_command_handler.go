package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// CreateOrderCommandHandler registers new orders in the NEW state.
// Every line must reference a product from the catalog.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.NewSystem(time.UTC))
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// Unknown products are reported as *errs.ObjectNotFoundError and nothing is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		if _, err := productRepo.Get(ctx, l.ProductID); err != nil {
			return err
		}

		item, err := order.NewItem(l.ProductID, l.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.DueDate(), h.clock.Now(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
