package roles

import (
	"testing"

	"lucilla/middleware"
)

func TestUnresolvedRoleHasNoCapabilities(t *testing.T) {
	// nil claims covers missing token, resolution in flight, and failure
	caps := FromClaims(nil)

	if caps.IsAuthenticated || caps.IsAdmin || caps.IsAgent {
		t.Fatalf("unresolved role must grant nothing, got %+v", caps)
	}
	if caps.CanManageBookings() {
		t.Error("unresolved role must not manage bookings")
	}
	if caps.CanSubmitReview() {
		t.Error("unresolved role must not submit reviews")
	}
}

func TestUserCapabilities(t *testing.T) {
	caps := FromClaims(&middleware.Claims{UserID: "u1", Role: []string{"user"}})

	if !caps.IsAuthenticated {
		t.Error("user should be authenticated")
	}
	if caps.IsAdmin || caps.IsAgent {
		t.Errorf("plain user must not hold elevated roles: %+v", caps)
	}
	if !caps.CanSubmitReview() {
		t.Error("authenticated user should be able to review")
	}
	if caps.CanManageBookings() {
		t.Error("plain user must not manage bookings")
	}
}

func TestElevatedRoles(t *testing.T) {
	admin := FromClaims(&middleware.Claims{UserID: "a1", Role: []string{"admin"}})
	if !admin.IsAdmin || !admin.CanManageBookings() {
		t.Errorf("admin capabilities wrong: %+v", admin)
	}

	agent := FromClaims(&middleware.Claims{UserID: "g1", Role: []string{"agent"}})
	if !agent.IsAgent || agent.IsAdmin {
		t.Errorf("agent capabilities wrong: %+v", agent)
	}
	if !agent.CanManageBookings() {
		t.Error("agent should manage bookings")
	}
}
