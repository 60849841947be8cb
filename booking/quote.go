package booking

import (
	"time"

	"lucilla/addons"
	"lucilla/coupons"
	"lucilla/models"
	"lucilla/pricing"
	"lucilla/utils"
)

// Rejection reason codes, stable strings the client switches on.
const (
	ReasonDatesIncomplete = "dates-incomplete"
	ReasonNameRequired    = "guest-name-required"
	ReasonEmailRequired   = "guest-email-required"
	ReasonPhoneRequired   = "guest-phone-required"
	ReasonMinStay         = "min-stay"
	ReasonGuestCount      = "guest-count"
)

// Composer turns a draft into a quote. All tables are injected so tests can
// run against custom rule sets.
type Composer struct {
	Rules   []models.PricingRule
	Coupons *coupons.Resolver
	Catalog addons.Catalog
	Now     func() time.Time
}

func NewComposer(rules []models.PricingRule, resolver *coupons.Resolver, catalog addons.Catalog) *Composer {
	return &Composer{Rules: rules, Coupons: resolver, Catalog: catalog, Now: time.Now}
}

// Compose computes the full quote for a draft against a property in a single
// pass: nights, effective nightly rate, subtotal, add-ons, discount, total,
// and the eligibility verdict. It is pure: calling it twice with the same
// inputs yields the same quote, and it never mutates the draft.
//
// Eligibility is independent of price. An ineligible draft still gets its
// price fields filled in so the client can show a running total while the
// form is incomplete.
func (c *Composer) Compose(draft models.BookingDraft, property models.Property) models.BookingQuote {
	from := utils.ParseDate(draft.StartDate)
	to := utils.ParseDate(draft.EndDate)

	quote := models.BookingQuote{}
	quote.Nights = pricing.ComputeNights(from, to)

	if quote.Nights > 0 {
		rate, applied := pricing.EffectiveNightlyRate(property.BaseRate, from, c.Now(), c.Rules)
		quote.NightlyRate = rate
		quote.AppliedRules = applied
		quote.Subtotal = float64(quote.Nights) * rate
	}

	quote.AddonTotal = addons.Total(draft.AddonQuantities, c.Catalog)

	if draft.CouponCode != "" && quote.Subtotal > 0 {
		if coupon, rej := c.Coupons.Validate(draft.CouponCode, quote.Subtotal); rej == nil {
			quote.Discount = coupons.DiscountFor(coupon, quote.Subtotal)
		}
	}

	// an undated draft has no total to show, only add-on state
	if quote.Nights > 0 {
		quote.Total = quote.Subtotal + property.CleaningFee + property.ServiceFee + quote.AddonTotal - quote.Discount
	}

	quote.RejectionReasons = c.eligibility(draft, quote.Nights, property.Policy)
	quote.Eligible = len(quote.RejectionReasons) == 0
	return quote
}

func (c *Composer) eligibility(draft models.BookingDraft, nights int, policy models.BookingPolicy) []string {
	var reasons []string

	if nights == 0 {
		reasons = append(reasons, ReasonDatesIncomplete)
	} else if nights < policy.MinimumStayNights {
		reasons = append(reasons, ReasonMinStay)
	}
	if utils.IsBlank(draft.GuestName) {
		reasons = append(reasons, ReasonNameRequired)
	}
	if utils.IsBlank(draft.GuestEmail) {
		reasons = append(reasons, ReasonEmailRequired)
	}
	if utils.IsBlank(draft.GuestPhone) {
		reasons = append(reasons, ReasonPhoneRequired)
	}
	if draft.GuestCount < 1 || draft.GuestCount > policy.MaxGuests {
		reasons = append(reasons, ReasonGuestCount)
	}
	return reasons
}
