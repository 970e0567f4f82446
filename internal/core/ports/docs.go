// Package ports declares the contracts the bakery core consumes from adapters:
// storage, snapshots, per-order locking, event publishing and time.
package ports
