// Package config holds the pricing, coupon and add-on tables the booking
// core is initialized with. The tables are loaded once at process start and
// injected into the packages that consume them; there is no runtime mutation
// API for them.
package config

import (
	"os"
	"strconv"

	"lucilla/models"
)

// DefaultPropertyID is the villa this deployment serves.
var DefaultPropertyID = getEnv("PROPERTY_ID", "villa-lucilla")

// PricingRules is evaluated in declaration order; order is part of the
// configuration contract.
func PricingRules() []models.PricingRule {
	return []models.PricingRule{
		{
			ID: "high-season", Name: "High Season", Kind: models.RuleSeasonal,
			Modifier: 1.30, Active: true,
			Description: "Summer premium",
			StartMonth:  6, StartDay: 15, EndMonth: 9, EndDay: 15,
		},
		{
			ID: "weekend-checkin", Name: "Weekend Check-in", Kind: models.RuleWeekend,
			Modifier: 1.15, Active: true,
			Description: "Friday and Saturday arrivals",
			DaysOfWeek:  []int{5, 6},
		},
		{
			ID: "early-bird", Name: "Early Bird", Kind: models.RuleEarlyBird,
			Modifier: 0.85, Active: true,
			Description: "Booked at least 60 days ahead",
			DaysAhead:   60,
		},
		{
			ID: "last-minute", Name: "Last Minute", Kind: models.RuleLastMinute,
			Modifier: 0.90, Active: true,
			Description: "Check-in within the coming week",
			DaysAhead:   7,
		},
	}
}

func Coupons() []models.Coupon {
	return []models.Coupon{
		{
			Code: "welcome10", Kind: models.CouponPercentage, Discount: 10,
			Description: "10% off your first stay", MinSubtotal: 100, Active: true,
		},
		{
			Code: "summer25", Kind: models.CouponPercentage, Discount: 25,
			Description: "25% summer discount", MinSubtotal: 200, MaxDiscount: 150, Active: true,
		},
		{
			Code: "save50", Kind: models.CouponFixed, Discount: 50,
			Description: "50 off any booking", Active: true,
		},
	}
}

func Addons() []models.ServiceAddon {
	return []models.ServiceAddon{
		{ID: "welcome-basket", Name: "Welcome Basket", UnitPrice: 0, Category: "comfort", Included: true},
		{ID: "final-cleaning", Name: "Final Cleaning", UnitPrice: 0, Category: "cleaning", Included: true},
		{ID: "airport-transfer", Name: "Airport Transfer", UnitPrice: 60, Category: "transport"},
		{ID: "bike-rental", Name: "Bike Rental (per day)", UnitPrice: 15, Category: "activity"},
		{ID: "private-chef", Name: "Private Chef Evening", UnitPrice: 180, Category: "dining"},
		{ID: "mid-stay-cleaning", Name: "Mid-stay Cleaning", UnitPrice: 45, Category: "cleaning"},
		{ID: "late-checkout", Name: "Late Checkout", UnitPrice: 35, Category: "comfort"},
	}
}

// DefaultProperty seeds the villa record when the database is empty.
func DefaultProperty() models.Property {
	return models.Property{
		PropertyID:  DefaultPropertyID,
		Name:        "Villa Lucilla",
		ShortDesc:   "Seafront villa with private pool",
		BaseRate:    envFloat("BASE_RATE", 185),
		CleaningFee: envFloat("CLEANING_FEE", 50),
		ServiceFee:  envFloat("SERVICE_FEE", 25),
		Policy: models.BookingPolicy{
			MinimumStayNights: envInt("MIN_STAY_NIGHTS", 2),
			MaxGuests:         envInt("MAX_GUESTS", 8),
		},
		Status: models.PropertyStatusActive,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
