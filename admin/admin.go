package admin

import (
	"context"
	"net/http"
	"time"

	"lucilla/db"
	"lucilla/models"
	"lucilla/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Overview returns booking counts per status and confirmed revenue for the
// management view. Route-gated to the admin role.
//
// Endpoint: GET /api/admin/overview
func Overview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	counts := map[string]int64{}
	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
	} {
		n, err := db.BookingsCollection.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count bookings")
			return
		}
		counts[status] = n
	}

	pipeline := []bson.M{
		{"$match": bson.M{"status": models.BookingStatusConfirmed}},
		{"$group": bson.M{"_id": nil, "revenue": bson.M{"$sum": "$total_price"}}},
	}
	cur, err := db.BookingsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate revenue")
		return
	}
	defer cur.Close(ctx)

	var revenue float64
	var agg []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &agg); err == nil && len(agg) > 0 {
		revenue = agg[0].Revenue
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"bookings": counts,
		"revenue":  revenue,
	})
}
