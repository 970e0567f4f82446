// Package order provides the Order aggregate of the bakery and the lifecycle
// rules its state follows.
//
// The package includes:
//   - Order: the aggregate root holding customer, due date, line items, state and history
//   - State: the closed set of lifecycle states with display names and the transition table
//   - Role: the closed set of staff roles that request transitions
//   - Item: a (product, quantity) line of an order
//   - StateChange: the event recorded for every successful transition
//
// Key business rules:
//   - Orders start in New and move only along the legal transition table:
//     New -> Confirmed | Cancelled | Problem
//     Confirmed -> Ready | Problem | Cancelled
//     Ready -> Delivered | Problem
//     Problem -> Confirmed | Cancelled
//   - Delivered and Cancelled are terminal
//   - Every transition appends a StateChange to the order history; the delivery
//     time of an order is derived from that history
//
// Who may request a given transition is decided outside this package by a
// permission checker (see the services package).
package order
