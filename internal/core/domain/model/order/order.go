package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer request for bakery products. It is the aggregate root that
// owns the order lifecycle and its state change history.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - State is always one of the six lifecycle states
//   - State changes only through ChangeState, which enforces the transition table
//     and records a StateChange
//   - Version is the optimistic concurrency counter as read from storage
//
// The Order struct uses private fields to ensure encapsulation; Items and History
// return copies.
type Order struct {
	id        kernel.UUID
	customer  string
	dueDate   *time.Time
	createdAt time.Time
	items     []Item
	state     State
	history   []StateChange
	version   int

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order in the New state.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - customer: customer name (must not be blank)
//   - dueDate: when the order must be delivered; nil for orders without a due date
//   - createdAt: when the order was taken (must be set)
//   - items: at least one line item; items must come from NewItem
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: the joined validation errors otherwise
//
// Example:
//
//	croissant, _ := order.NewItem(croissantID, 12)
//	due := now.Add(24 * time.Hour)
//	o, err := order.NewOrder(kernel.NewUUID(), "Café Rive", &due, now, []order.Item{croissant})
func NewOrder(id kernel.UUID, customer string, dueDate *time.Time, createdAt time.Time, items []Item) (*Order, error) {
	o := &Order{
		state:         New,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setCreatedAt(createdAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.setDueDate(dueDate)

	return o, nil
}

// RestoreOrder rebuilds an order from storage. Identity and state are validated;
// items are taken as stored so that malformed lines surface during aggregation.
func RestoreOrder(
	id kernel.UUID,
	customer string,
	dueDate *time.Time,
	createdAt time.Time,
	items []Item,
	state State,
	history []StateChange,
	version int,
) (*Order, error) {
	o := &Order{
		customer:      customer,
		createdAt:     createdAt,
		items:         append([]Item(nil), items...),
		history:       append([]StateChange(nil), history...),
		version:       version,
		isConstructed: true,
	}

	var versionErr error
	if version < 0 {
		versionErr = errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}

	if err := errors.Join(
		o.setID(id),
		state.Validate(),
		versionErr,
	); err != nil {
		return nil, err
	}

	o.state = state
	o.setDueDate(dueDate)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() string {
	return o.customer
}

// DueDate returns the due date and whether the order has one.
func (o *Order) DueDate() (time.Time, bool) {
	if o.dueDate == nil {
		return time.Time{}, false
	}

	return *o.dueDate, true
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) State() State {
	return o.state
}

// History returns a copy of the recorded state changes, oldest first.
func (o *Order) History() []StateChange {
	return append([]StateChange(nil), o.history...)
}

// Version returns the optimistic concurrency counter the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// DeliveredAt returns the timestamp of the latest history event that moved the
// order to Delivered. The boolean is false when no such event exists.
func (o *Order) DeliveredAt() (time.Time, bool) {
	for i := len(o.history) - 1; i >= 0; i-- {
		if o.history[i].to == Delivered {
			return o.history[i].at, true
		}
	}

	return time.Time{}, false
}

// AsOf returns a copy of the order as it stood at the given instant. The boolean
// is false when the order was created after at.
//
// The copy keeps only the history recorded up to at and takes its state from
// the last of those changes. When every change is later than at, the state is
// the source of the first one; an order without history keeps its current
// state. The copy has the same version and is meant for reading only.
func (o *Order) AsOf(at time.Time) (*Order, bool) {
	if o.createdAt.After(at) {
		return nil, false
	}

	past := *o
	past.items = append([]Item(nil), o.items...)
	past.history = nil

	for _, change := range o.history {
		if change.at.After(at) {
			break
		}
		past.history = append(past.history, change)
	}

	switch {
	case len(past.history) > 0:
		past.state = past.history[len(past.history)-1].to
	case len(o.history) > 0:
		past.state = o.history[0].from
	}

	return &past, true
}

// ChangeState moves the order to target and records the transition.
//
// Checks, in order:
//   - the order was constructed
//   - target is a legal successor of the current state (*errs.IllegalTransitionError)
//   - role is a known role and at is set
//
// On failure the order is left untouched. Permissions are not checked here;
// callers go through the order lifecycle service.
//
// Returns:
//   - StateChange: the recorded event on success
//   - error: validation or transition error
func (o *Order) ChangeState(target State, role Role, at time.Time) (StateChange, error) {
	if err := o.Validate(); err != nil {
		return StateChange{}, err
	}

	next, err := o.state.TransitionTo(target)
	if err != nil {
		return StateChange{}, err
	}

	if err = role.Validate(); err != nil {
		return StateChange{}, err
	}

	if at.IsZero() {
		return StateChange{}, errs.NewValueIsRequiredError("at")
	}

	change := StateChange{
		orderID: o.id,
		from:    o.state,
		to:      next,
		at:      at,
		role:    role,
	}

	o.state = next
	o.history = append(o.history, change)

	return change, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	trimmed := strings.TrimSpace(customer)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = trimmed
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setDueDate(dueDate *time.Time) {
	if dueDate == nil || dueDate.IsZero() {
		o.dueDate = nil
		return
	}
	d := *dueDate
	o.dueDate = &d
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.productID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err)
		}
		if item.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.quantity),
			)
		}
	}

	o.items = append([]Item(nil), items...)
	return nil
}
