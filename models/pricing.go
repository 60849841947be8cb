package models

type RuleKind string

const (
	RuleSeasonal   RuleKind = "seasonal"
	RuleWeekend    RuleKind = "weekend"
	RuleEarlyBird  RuleKind = "earlybird"
	RuleLastMinute RuleKind = "lastminute"
)

// PricingRule multiplies the base nightly rate when its predicate matches the
// check-in date. Modifier > 1 is a premium, < 1 a discount. Rules are
// configuration data, immutable after startup.
type PricingRule struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Kind        RuleKind `json:"kind" bson:"kind"`
	Modifier    float64  `json:"modifier" bson:"modifier"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Active      bool     `json:"active" bson:"active"`

	// Seasonal window, inclusive. StartMonth/StartDay > EndMonth/EndDay
	// means the window wraps the year end.
	StartMonth int `json:"startMonth,omitempty" bson:"startMonth,omitempty"`
	StartDay   int `json:"startDay,omitempty" bson:"startDay,omitempty"`
	EndMonth   int `json:"endMonth,omitempty" bson:"endMonth,omitempty"`
	EndDay     int `json:"endDay,omitempty" bson:"endDay,omitempty"`

	// Weekend: check-in weekdays the rule matches, 0=Sun..6=Sat.
	DaysOfWeek []int `json:"daysOfWeek,omitempty" bson:"daysOfWeek,omitempty"`

	// EarlyBird: minimum days between booking and check-in.
	// LastMinute matches 1..DaysAhead days before check-in.
	DaysAhead int `json:"daysAhead,omitempty" bson:"daysAhead,omitempty"`
}

type CouponKind string

const (
	CouponPercentage CouponKind = "percentage"
	CouponFixed      CouponKind = "fixed"
)

type Coupon struct {
	Code        string     `json:"code" bson:"code"` // stored lowercase
	Kind        CouponKind `json:"kind" bson:"kind"`
	Discount    float64    `json:"discount" bson:"discount"` // percent value or fixed amount
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	MinSubtotal float64    `json:"minSubtotal,omitempty" bson:"minSubtotal,omitempty"` // 0 = no minimum
	MaxDiscount float64    `json:"maxDiscount,omitempty" bson:"maxDiscount,omitempty"` // 0 = uncapped
	Active      bool       `json:"active" bson:"active"`
}

// ServiceAddon is an optional extra attachable to a booking. Included addons
// are listed with the property but never contribute to the total.
type ServiceAddon struct {
	ID        string  `json:"id" bson:"id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	Category  string  `json:"category,omitempty" bson:"category,omitempty"`
	Included  bool    `json:"included" bson:"included"`
}
