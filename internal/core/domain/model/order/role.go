package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// Role is the access level of the staff member requesting a transition.
// The string value is the wire and storage form.
type Role string

const (
	// Barista works the front counter: takes, confirms and hands out orders.
	Barista Role = "barista"

	// Baker works the kitchen: bakes orders and reports production problems.
	Baker Role = "baker"

	// Admin may perform every legal transition.
	Admin Role = "admin"
)

// AllRoles returns every role in a stable order.
func AllRoles() []Role {
	return []Role{Barista, Baker, Admin}
}

// ParseRole converts a case-insensitive role name to a Role.
func ParseRole(name string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(name)))
	if err := r.Validate(); err != nil {
		return "", err
	}

	return r, nil
}

// Validate checks that the role is one of AllRoles.
func (r Role) Validate() error {
	for _, known := range AllRoles() {
		if r == known {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
}

func (r Role) String() string {
	return string(r)
}
