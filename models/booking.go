package models

type Booking struct {
	ID              string  `json:"id" bson:"id"`
	PropertyID      string  `json:"propertyId" bson:"propertyId"`
	UserID          string  `json:"userId" bson:"userId"`
	StartDate       string  `json:"start_date" bson:"start_date"` // YYYY-MM-DD
	EndDate         string  `json:"end_date" bson:"end_date"`     // YYYY-MM-DD
	Nights          int     `json:"nights" bson:"nights"`
	GuestCount      int     `json:"guest_count" bson:"guest_count"`
	GuestName       string  `json:"guest_name" bson:"guest_name"`
	GuestEmail      string  `json:"guest_email" bson:"guest_email"`
	GuestPhone      string  `json:"guest_phone" bson:"guest_phone"`
	SpecialRequests string  `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
	CouponCode      string  `json:"coupon_code,omitempty" bson:"coupon_code,omitempty"`
	TotalPrice      float64 `json:"total_price" bson:"total_price"`
	Status          string  `json:"status" bson:"status"` // pending, confirmed, cancelled
	CreatedAt       int64   `json:"createdAt" bson:"createdAt"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookingDraft is the not-yet-submitted aggregate a guest assembles: dates,
// guest details, add-on selection and an optionally applied coupon code.
type BookingDraft struct {
	PropertyID      string         `json:"propertyId"`
	StartDate       string         `json:"start_date"` // YYYY-MM-DD, empty = unset
	EndDate         string         `json:"end_date"`
	GuestCount      int            `json:"guest_count"`
	GuestName       string         `json:"guest_name"`
	GuestEmail      string         `json:"guest_email"`
	GuestPhone      string         `json:"guest_phone"`
	SpecialRequests string         `json:"special_requests"`
	AddonQuantities map[string]int `json:"addon_quantities"`
	CouponCode      string         `json:"coupon_code"`
}

// BookingQuote is the read-only pricing/eligibility summary computed from a
// draft. Rendered as-is by the client; rejection reasons are machine codes.
type BookingQuote struct {
	Nights           int      `json:"nights"`
	NightlyRate      float64  `json:"nightly_rate"`
	AppliedRules     []string `json:"applied_rules"`
	Subtotal         float64  `json:"subtotal"`
	AddonTotal       float64  `json:"addon_total"`
	Discount         float64  `json:"discount"`
	Total            float64  `json:"total"`
	Eligible         bool     `json:"eligible"`
	RejectionReasons []string `json:"rejection_reasons,omitempty"`
}
