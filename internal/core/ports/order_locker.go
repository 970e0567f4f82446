package ports

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
)

// ErrLockNotAcquired is returned by OrderLocker.Lock when another holder owns the lock.
var ErrLockNotAcquired = errors.New("order lock not acquired")

// Unlock releases a lock obtained from OrderLocker.
type Unlock func(ctx context.Context) error

// OrderLocker serializes transitions of one order. Locks on different orders
// are independent.
type OrderLocker interface {
	// Lock acquires the lock for the order without waiting. It returns
	// ErrLockNotAcquired when the order is locked by someone else.
	Lock(ctx context.Context, orderID kernel.UUID) (Unlock, error)
}
