// Package coupons resolves discount codes against the configured coupon
// table. Rejections are data, not errors: the caller renders them directly.
package coupons

import (
	"math"
	"strings"

	"lucilla/models"
)

type RejectionKind string

const (
	RejectNotFound     RejectionKind = "not-found"
	RejectBelowMinimum RejectionKind = "below-minimum"
)

// Rejection explains why a code was not accepted. MinSubtotal is set for
// below-minimum so the client can show the required spend.
type Rejection struct {
	Kind        RejectionKind `json:"kind"`
	MinSubtotal float64       `json:"minSubtotal,omitempty"`
}

// Resolver validates codes against an injected table. The table is fixed at
// construction; lookups are case-insensitive.
type Resolver struct {
	table map[string]models.Coupon
}

func NewResolver(table []models.Coupon) *Resolver {
	m := make(map[string]models.Coupon, len(table))
	for _, c := range table {
		if !c.Active {
			continue
		}
		m[strings.ToLower(c.Code)] = c
	}
	return &Resolver{table: m}
}

// Validate looks up a code and checks its minimum-subtotal constraint.
// A blank code counts as not found.
func (r *Resolver) Validate(code string, subtotal float64) (models.Coupon, *Rejection) {
	code = strings.TrimSpace(strings.ToLower(code))
	coupon, ok := r.table[code]
	if !ok {
		return models.Coupon{}, &Rejection{Kind: RejectNotFound}
	}
	if coupon.MinSubtotal > 0 && subtotal < coupon.MinSubtotal {
		return models.Coupon{}, &Rejection{Kind: RejectBelowMinimum, MinSubtotal: coupon.MinSubtotal}
	}
	return coupon, nil
}

// DiscountFor computes the amount a coupon takes off the given subtotal.
// Percentage coupons honor MaxDiscount; fixed coupons never exceed the
// subtotal itself.
func DiscountFor(c models.Coupon, subtotal float64) float64 {
	switch c.Kind {
	case models.CouponPercentage:
		d := subtotal * c.Discount / 100
		if c.MaxDiscount > 0 {
			d = math.Min(d, c.MaxDiscount)
		}
		return d
	case models.CouponFixed:
		return math.Min(c.Discount, subtotal)
	}
	return 0
}
