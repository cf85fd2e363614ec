package navigation

import "fmt"

// Role classifies which user class a route is intended for.
type Role string

const (
	// RoleNone marks routes shared by every user class.
	RoleNone Role = "none"
	// RoleFarmer marks farmer-only views.
	RoleFarmer Role = "farmer"
	// RoleTraveler marks traveler-only views.
	RoleTraveler Role = "traveler"
)

// Roles lists the closed set of roles in display order.
var Roles = []Role{RoleNone, RoleFarmer, RoleTraveler}

// ParseRole parses s into a Role. The empty string parses as RoleNone.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "", RoleNone:
		return RoleNone, nil
	case RoleFarmer:
		return RoleFarmer, nil
	case RoleTraveler:
		return RoleTraveler, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r belongs to the closed set. The zero value is valid
// and means RoleNone.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string {
	if r == "" {
		return string(RoleNone)
	}
	return string(r)
}

// UnmarshalText implements encoding.TextUnmarshaler so manifests reject
// unknown roles while decoding.
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Guard returns a predicate reporting whether a route is meant to be shown to
// a viewer with the given role. Shared routes are visible to everyone.
//
// Guard only filters what is offered; it is not an access check.
func Guard(viewer Role) func(RouteDefinition) bool {
	viewer = normalizeRole(viewer)
	return func(def RouteDefinition) bool {
		role := normalizeRole(def.Role)
		return role == RoleNone || role == viewer
	}
}

func normalizeRole(r Role) Role {
	if r == "" {
		return RoleNone
	}
	return r
}
