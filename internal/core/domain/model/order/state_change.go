package order

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// StateChange is the point-in-time event recorded for a successful transition.
// It is appended to the order history, persisted with the order and published
// to subscribers of order state changes.
type StateChange struct {
	orderID kernel.UUID
	from    State
	to      State
	at      time.Time
	role    Role
}

// RestoreStateChange rebuilds a history event read from storage.
func RestoreStateChange(orderID kernel.UUID, from, to State, at time.Time, role Role) StateChange {
	return StateChange{orderID: orderID, from: from, to: to, at: at, role: role}
}

func (c StateChange) OrderID() kernel.UUID {
	return c.orderID
}

func (c StateChange) From() State {
	return c.from
}

func (c StateChange) To() State {
	return c.to
}

// At returns when the transition happened.
func (c StateChange) At() time.Time {
	return c.at
}

// Role returns the role of the actor who requested the transition.
func (c StateChange) Role() Role {
	return c.role
}
