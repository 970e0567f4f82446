package commands

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// ErrStateChangeNotPublished is returned together with a committed StateChange
// when the event could not be handed to the publisher.
var ErrStateChangeNotPublished = errors.New("state change committed but not published")

// ChangeOrderStateCommandHandler applies one lifecycle transition atomically.
//
// Steps:
//   - lock the order; a held lock is reported as *errs.ConcurrentModificationError
//   - load the order, run the OrderLifecycle and persist it within one transaction;
//     the repository's version check reports lost races the same way
//   - publish the StateChange after commit
//
// Example:
//
//	change, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrIllegalTransition):
//	    // 409
//	case errors.Is(err, errs.ErrForbidden):
//	    // 403
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    // 409, re-fetch and retry
//	}
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
	lifecycle  services.OrderLifecycle
	publisher  ports.StateChangePublisher
	clock      ports.Clock
}

func NewChangeOrderStateCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.OrderLocker,
	lifecycle services.OrderLifecycle,
	publisher ports.StateChangePublisher,
	clock ports.Clock,
) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		lifecycle:  lifecycle,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the command and returns the recorded StateChange.
// When only publishing fails, the change is returned with ErrStateChangeNotPublished.
func (h ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) (order.StateChange, error) {
	if err := cmd.Validate(); err != nil {
		return order.StateChange{}, err
	}

	unlock, err := h.locker.Lock(ctx, cmd.OrderID())
	if errors.Is(err, ports.ErrLockNotAcquired) {
		return order.StateChange{}, errs.NewConcurrentModificationErrorWithCause("orderId", cmd.OrderID(), err)
	}
	if err != nil {
		return order.StateChange{}, err
	}

	defer func() {
		_ = unlock(context.WithoutCancel(ctx))
	}()

	change, err := h.transition(ctx, cmd)
	if err != nil {
		return order.StateChange{}, err
	}

	if err = h.publisher.Publish(ctx, change); err != nil {
		return change, fmt.Errorf("%w: %w", ErrStateChangeNotPublished, err)
	}

	return change, nil
}

func (h ChangeOrderStateCommandHandler) transition(ctx context.Context, cmd ChangeOrderStateCommand) (order.StateChange, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StateChange{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.StateChange{}, err
	}

	change, err := h.lifecycle.Transition(o, cmd.Target(), cmd.Role(), h.clock.Now())
	if err != nil {
		return order.StateChange{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.StateChange{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StateChange{}, err
	}

	return change, nil
}
