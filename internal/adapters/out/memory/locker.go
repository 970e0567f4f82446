// Package memory holds in-process adapters used when no external
// infrastructure is configured.
package memory

import (
	"context"
	"sync"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
)

// OrderLocker is a non-blocking keyed lock. It only serializes transitions
// within one process.
type OrderLocker struct {
	mu     sync.Mutex
	locked map[kernel.UUID]uint64
	next   uint64
}

func NewOrderLocker() *OrderLocker {
	return &OrderLocker{locked: make(map[kernel.UUID]uint64)}
}

func (l *OrderLocker) Lock(_ context.Context, orderID kernel.UUID) (ports.Unlock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.locked[orderID]; held {
		return nil, ports.ErrLockNotAcquired
	}

	l.next++
	token := l.next
	l.locked[orderID] = token

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.locked[orderID] == token {
			delete(l.locked, orderID)
		}
		return nil
	}, nil
}
