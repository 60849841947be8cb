// Package roles derives capability booleans from a user's resolved role.
// These gate UI-facing actions only; Mongo-side checks in the handlers remain
// the authoritative boundary.
package roles

import (
	"slices"

	"lucilla/middleware"
	"lucilla/models"
)

type Capabilities struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	IsAdmin         bool `json:"isAdmin"`
	IsAgent         bool `json:"isAgent"`
}

// FromClaims derives capabilities from parsed JWT claims. A nil claims value
// covers every unresolved state (no token, resolution in flight, resolution
// failed) and yields no capability at all.
func FromClaims(claims *middleware.Claims) Capabilities {
	if claims == nil {
		return Capabilities{}
	}
	return Capabilities{
		IsAuthenticated: true,
		IsAdmin:         slices.Contains(claims.Role, models.RoleAdmin),
		IsAgent:         slices.Contains(claims.Role, models.RoleAgent),
	}
}

// CanManageBookings reports whether the user may see and mutate bookings
// other than their own.
func (c Capabilities) CanManageBookings() bool {
	return c.IsAdmin || c.IsAgent
}

// CanSubmitReview requires only an authenticated session.
func (c Capabilities) CanSubmitReview() bool {
	return c.IsAuthenticated
}
