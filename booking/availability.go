package booking

import (
	"context"
	"net/http"
	"time"

	"lucilla/db"
	"lucilla/models"
	"lucilla/pricing"
	"lucilla/rdx"
	"lucilla/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UnavailableDates returns every calendar day covered by a non-cancelled
// booking of the property. The client's calendar additionally filters past
// days via the selectability check; this endpoint only reports booked days.
//
// GET /api/properties/:propertyid/unavailable
func UnavailableDates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("propertyid")
	if propertyID == "" {
		http.Error(w, "missing property id", http.StatusBadRequest)
		return
	}

	if dates, ok := rdx.GetCachedUnavailableDates(propertyID); ok {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"unavailable": dates})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dates, err := loadUnavailableDates(ctx, propertyID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load availability")
		return
	}

	rdx.CacheUnavailableDates(propertyID, dates)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"unavailable": dates})
}

func loadUnavailableDates(ctx context.Context, propertyID string) ([]string, error) {
	cur, err := db.BookingsCollection.Find(ctx, bson.M{
		"propertyId": propertyID,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	set := pricing.NewUnavailableDateSet()
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			continue
		}
		from := utils.ParseDate(b.StartDate)
		to := utils.ParseDate(b.EndDate)
		if from == nil || to == nil {
			continue
		}
		// checkout day stays selectable as a new check-in
		last := to.AddDate(0, 0, -1)
		if last.Before(*from) {
			last = *from
		}
		set.AddRange(*from, last)
	}

	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	return dates, nil
}

// rangeOverlaps reports whether any non-cancelled booking of the property
// intersects [start, end). Date strings compare correctly because the format
// is YYYY-MM-DD.
func rangeOverlaps(ctx context.Context, propertyID, start, end string) (bool, error) {
	count, err := db.BookingsCollection.CountDocuments(ctx, bson.M{
		"propertyId": propertyID,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
		"start_date": bson.M{"$lt": end},
		"end_date":   bson.M{"$gt": start},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
