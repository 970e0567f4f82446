package services

import (
	"bakery/internal/core/domain/model/order"
)

// PermissionChecker decides whether a role may request a transition.
// It is only consulted for transitions that are legal for the order.
type PermissionChecker interface {
	CanTransition(role order.Role, from, to order.State) bool
}

type transition struct {
	from order.State
	to   order.State
}

// RolePolicy is a PermissionChecker backed by a static table.
//
// Default table:
//   - admin: every legal transition
//   - barista: New -> Confirmed | Cancelled | Problem, Confirmed -> Cancelled,
//     Problem -> Confirmed | Cancelled, Ready -> Delivered
//   - baker: Confirmed -> Ready | Problem, Ready -> Problem | Delivered
type RolePolicy struct {
	allowAll map[order.Role]bool
	allowed  map[order.Role]map[transition]bool
}

// NewRolePolicy returns the default bakery policy.
func NewRolePolicy() RolePolicy {
	return RolePolicy{
		allowAll: map[order.Role]bool{
			order.Admin: true,
		},
		allowed: map[order.Role]map[transition]bool{
			order.Barista: {
				{order.New, order.Confirmed}:       true,
				{order.New, order.Cancelled}:       true,
				{order.New, order.Problem}:         true,
				{order.Confirmed, order.Cancelled}: true,
				{order.Problem, order.Confirmed}:   true,
				{order.Problem, order.Cancelled}:   true,
				{order.Ready, order.Delivered}:     true,
			},
			order.Baker: {
				{order.Confirmed, order.Ready}:   true,
				{order.Confirmed, order.Problem}: true,
				{order.Ready, order.Problem}:     true,
				{order.Ready, order.Delivered}:   true,
			},
		},
	}
}

// CanTransition reports whether role may move an order from one state to another.
// Unknown roles are denied.
func (p RolePolicy) CanTransition(role order.Role, from, to order.State) bool {
	if p.allowAll[role] {
		return from.CanTransitionTo(to)
	}

	return p.allowed[role][transition{from: from, to: to}]
}
