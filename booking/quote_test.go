package booking

import (
	"reflect"
	"testing"
	"time"

	"lucilla/addons"
	"lucilla/coupons"
	"lucilla/models"
)

func testProperty() models.Property {
	return models.Property{
		PropertyID:  "villa-lucilla",
		BaseRate:    185,
		CleaningFee: 50,
		ServiceFee:  25,
		Policy:      models.BookingPolicy{MinimumStayNights: 2, MaxGuests: 8},
	}
}

func testComposer(rules []models.PricingRule) *Composer {
	c := NewComposer(rules,
		coupons.NewResolver([]models.Coupon{
			{Code: "welcome10", Kind: models.CouponPercentage, Discount: 10, MinSubtotal: 100, Active: true},
			{Code: "bigmin", Kind: models.CouponPercentage, Discount: 50, MinSubtotal: 10000, Active: true},
		}),
		addons.NewCatalog([]models.ServiceAddon{
			{ID: "transfer", Name: "Airport Transfer", UnitPrice: 60},
			{ID: "basket", Name: "Welcome Basket", Included: true},
		}),
	)
	c.Now = func() time.Time { return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC) }
	return c
}

func completeDraft() models.BookingDraft {
	return models.BookingDraft{
		PropertyID: "villa-lucilla",
		StartDate:  "2026-05-04",
		EndDate:    "2026-05-07",
		GuestCount: 2,
		GuestName:  "Ada Example",
		GuestEmail: "ada@example.com",
		GuestPhone: "+35799123456",
	}
}

func TestComposeThreeNightsNoRules(t *testing.T) {
	quote := testComposer(nil).Compose(completeDraft(), testProperty())

	if quote.Nights != 3 {
		t.Fatalf("expected 3 nights, got %d", quote.Nights)
	}
	if quote.Subtotal != 555 {
		t.Fatalf("expected subtotal 555, got %v", quote.Subtotal)
	}
	if quote.Total != 630 {
		t.Fatalf("expected total 630, got %v", quote.Total)
	}
	if !quote.Eligible {
		t.Fatalf("expected eligible quote, reasons: %v", quote.RejectionReasons)
	}
}

func TestComposeWithCoupon(t *testing.T) {
	draft := completeDraft()
	draft.CouponCode = "WELCOME10"

	quote := testComposer(nil).Compose(draft, testProperty())

	if quote.Discount != 55.5 {
		t.Fatalf("expected discount 55.5, got %v", quote.Discount)
	}
	if quote.Total != 574.5 {
		t.Fatalf("expected total 574.5, got %v", quote.Total)
	}
}

func TestComposeIneligibleCouponIgnored(t *testing.T) {
	draft := completeDraft()
	draft.CouponCode = "bigmin" // minimum far above the subtotal

	quote := testComposer(nil).Compose(draft, testProperty())

	if quote.Discount != 0 {
		t.Fatalf("rejected coupon must not discount, got %v", quote.Discount)
	}
	if quote.Total != 630 {
		t.Fatalf("expected total 630, got %v", quote.Total)
	}
}

func TestComposeWithAddons(t *testing.T) {
	draft := completeDraft()
	draft.AddonQuantities = map[string]int{"transfer": 1, "basket": 3}

	quote := testComposer(nil).Compose(draft, testProperty())

	if quote.AddonTotal != 60 {
		t.Fatalf("expected addon total 60, got %v", quote.AddonTotal)
	}
	if quote.Total != 690 {
		t.Fatalf("expected total 690, got %v", quote.Total)
	}
}

func TestComposeMinimumStayRejected(t *testing.T) {
	draft := completeDraft()
	draft.EndDate = "2026-05-05" // one night

	quote := testComposer(nil).Compose(draft, testProperty())

	if quote.Eligible {
		t.Fatal("one-night booking must be rejected")
	}
	if !containsReason(quote.RejectionReasons, ReasonMinStay) {
		t.Fatalf("expected min-stay reason, got %v", quote.RejectionReasons)
	}
}

func TestComposeIncompleteDraft(t *testing.T) {
	draft := completeDraft()
	draft.EndDate = ""
	draft.GuestName = "   "
	draft.GuestCount = 0

	quote := testComposer(nil).Compose(draft, testProperty())

	if quote.Eligible {
		t.Fatal("incomplete draft must be rejected")
	}
	if quote.Nights != 0 {
		t.Errorf("expected 0 nights, got %d", quote.Nights)
	}
	if quote.Total != 0 {
		t.Errorf("undated draft must not show a total, got %v", quote.Total)
	}
	for _, want := range []string{ReasonDatesIncomplete, ReasonNameRequired, ReasonGuestCount} {
		if !containsReason(quote.RejectionReasons, want) {
			t.Errorf("expected reason %q, got %v", want, quote.RejectionReasons)
		}
	}
}

func TestComposeGuestCountBounds(t *testing.T) {
	draft := completeDraft()
	draft.GuestCount = 9 // above MaxGuests

	quote := testComposer(nil).Compose(draft, testProperty())
	if quote.Eligible || !containsReason(quote.RejectionReasons, ReasonGuestCount) {
		t.Fatalf("expected guest-count rejection, got %v", quote.RejectionReasons)
	}
}

func TestComposeIsIdempotent(t *testing.T) {
	c := testComposer([]models.PricingRule{
		{ID: "weekend", Name: "Weekend Check-in", Kind: models.RuleWeekend,
			Modifier: 1.15, Active: true, DaysOfWeek: []int{5, 6}},
	})
	draft := completeDraft()
	draft.CouponCode = "welcome10"
	draft.AddonQuantities = map[string]int{"transfer": 2}

	first := c.Compose(draft, testProperty())
	second := c.Compose(draft, testProperty())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputation must be idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
