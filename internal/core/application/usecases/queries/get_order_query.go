package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and state history.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
//	for _, change := range details.History {
//	    fmt.Printf("%s -> %s by %s at %s\n", change.From, change.To, change.Role, change.At)
//	}
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type GetOrderQueryResponse struct {
	ID               kernel.UUID
	Customer         string
	DueDate          *time.Time
	CreatedAt        time.Time
	State            string
	StateDisplayName string
	Version          int
	Items            []OrderItemResponse
	History          []StateChangeResponse
}

type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
}

type StateChangeResponse struct {
	From string
	To   string
	At   time.Time
	Role string
}
