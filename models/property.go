package models

import "time"

type Property struct {
	PropertyID  string   `json:"propertyid" bson:"propertyid"`
	Name        string   `json:"name" bson:"name"`
	ShortDesc   string   `json:"short_desc" bson:"short_desc"`
	Description string   `json:"description" bson:"description"`
	Address     string   `json:"address" bson:"address"`
	City        string   `json:"city,omitempty" bson:"city,omitempty"`
	Country     string   `json:"country,omitempty" bson:"country,omitempty"`
	Bedrooms    int      `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   int      `json:"bathrooms" bson:"bathrooms"`
	Amenities   []string `json:"amenities,omitempty" bson:"amenities,omitempty"`

	// Nightly pricing and fixed fees, whole currency units except where noted.
	BaseRate    float64 `json:"base_rate" bson:"base_rate"`
	CleaningFee float64 `json:"cleaning_fee" bson:"cleaning_fee"`
	ServiceFee  float64 `json:"service_fee" bson:"service_fee"`

	Policy BookingPolicy `json:"policy" bson:"policy"`

	OwnerID     string     `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	Status      string     `json:"status" bson:"status"`
	ReviewCount int        `json:"reviewcount,omitempty" bson:"reviewcount,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
	UpdatedBy   string     `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// BookingPolicy carries the per-property eligibility rules. Minimum stay is
// policy data, not a constant: other properties may book single nights.
type BookingPolicy struct {
	MinimumStayNights int `json:"minimum_stay_nights" bson:"minimum_stay_nights"`
	MaxGuests         int `json:"max_guests" bson:"max_guests"`
}

const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
)
