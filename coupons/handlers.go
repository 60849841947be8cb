package coupons

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"lucilla/db"
	"lucilla/models"
	"lucilla/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CouponRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

type CouponResponse struct {
	Valid       bool    `json:"valid"`
	Code        string  `json:"code,omitempty"`
	Discount    float64 `json:"discount"` // absolute amount, not %
	Description string  `json:"description,omitempty"`
	Message     string  `json:"message"`
	MinSubtotal float64 `json:"minSubtotal,omitempty"`
}

// Default is the process-wide resolver, installed once at startup.
var Default *Resolver

// Init upserts the configured coupon table into Mongo (so admin tooling
// reads the same source) and installs the package resolver.
func Init(ctx context.Context, table []models.Coupon) error {
	for _, c := range table {
		c.Code = strings.ToLower(c.Code)
		_, err := db.CouponsCollection.UpdateOne(ctx,
			bson.M{"code": c.Code},
			bson.M{"$set": c},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	Default = NewResolver(table)
	return nil
}

// ValidateCouponHandler checks a code against the configured table for the
// current subtotal. This is the one genuinely remote step in the quote flow.
func ValidateCouponHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "No coupon provided"})
		return
	}

	resolver := Default
	if resolver == nil {
		// table not seeded yet; read it from Mongo directly
		var err error
		resolver, err = loadResolver(r.Context())
		if err != nil {
			log.Println("coupon table load failed:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "coupon lookup failed")
			return
		}
	}

	coupon, rej := resolver.Validate(req.Code, req.Subtotal)
	if rej != nil {
		resp := CouponResponse{Valid: false}
		switch rej.Kind {
		case RejectNotFound:
			resp.Message = "Coupon not found"
		case RejectBelowMinimum:
			resp.Message = "Subtotal below coupon minimum"
			resp.MinSubtotal = rej.MinSubtotal
		}
		utils.RespondWithJSON(w, http.StatusOK, resp)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, CouponResponse{
		Valid:       true,
		Code:        coupon.Code,
		Discount:    DiscountFor(coupon, req.Subtotal),
		Description: coupon.Description,
		Message:     "Coupon applied successfully",
	})
}

func loadResolver(ctx context.Context) (*Resolver, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := db.CouponsCollection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var table []models.Coupon
	if err := cur.All(ctx, &table); err != nil {
		return nil, err
	}
	return NewResolver(table), nil
}
