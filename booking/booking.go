package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lucilla/db"
	"lucilla/middleware"
	"lucilla/models"
	"lucilla/rdx"
	"lucilla/roles"
	"lucilla/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func genID() string {
	return utils.GenerateRandomDigitString(22)
}

// composer is installed once at startup with the configured tables.
var composer *Composer

func Init(c *Composer) {
	composer = c
}

func loadProperty(ctx context.Context, propertyID string) (models.Property, error) {
	var p models.Property
	err := db.PropertiesCollection.FindOne(ctx, bson.M{"propertyid": propertyID}).Decode(&p)
	return p, err
}

// QuoteHandler prices a draft without side effects. The client calls it on
// every date/coupon/add-on change; repeated calls with the same draft return
// the same quote.
//
// POST /api/quotes
func QuoteHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft models.BookingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	property, err := loadProperty(ctx, draft.PropertyID)
	if err != nil {
		http.Error(w, "property not found", http.StatusNotFound)
		return
	}

	quote := composer.Compose(draft, property)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "quote": quote})
}

// CreateBooking validates the draft, re-checks date availability inside the
// write path, and stores the booking as pending. The quote is recomputed
// server-side; a client-supplied total is never trusted.
//
// POST /api/bookings
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var draft models.BookingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	property, err := loadProperty(ctx, draft.PropertyID)
	if err != nil {
		http.Error(w, "property not found", http.StatusNotFound)
		return
	}

	quote := composer.Compose(draft, property)
	if !quote.Eligible {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"ok": false, "reasons": quote.RejectionReasons, "quote": quote,
		})
		return
	}

	// availability is settled at write time, not quote time
	overlap, err := rangeOverlaps(ctx, draft.PropertyID, draft.StartDate, draft.EndDate)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if overlap {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": false, "reasons": []string{"dates-taken"}})
		return
	}

	b := models.Booking{
		ID:              genID(),
		PropertyID:      draft.PropertyID,
		UserID:          claims.UserID,
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
		Nights:          quote.Nights,
		GuestCount:      draft.GuestCount,
		GuestName:       draft.GuestName,
		GuestEmail:      draft.GuestEmail,
		GuestPhone:      draft.GuestPhone,
		SpecialRequests: draft.SpecialRequests,
		CouponCode:      draft.CouponCode,
		TotalPrice:      quote.Total,
		Status:          models.BookingStatusPending,
		CreatedAt:       time.Now().Unix(),
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, b); err != nil {
		// draft state stays intact client-side; the write is retryable
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	rdx.InvalidateAvailability(draft.PropertyID)
	broadcastAvailability(draft.PropertyID, "booked")

	// the acknowledgment is the client's signal to reset its draft
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "booking": b, "quote": quote})
}

// ListBookings returns the caller's own bookings; admins and agents see all
// of them, optionally filtered by status.
//
// GET /api/bookings
func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := bson.M{}
	if !roles.FromClaims(claims).CanManageBookings() {
		filter["userId"] = claims.UserID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if propertyID := r.URL.Query().Get("propertyId"); propertyID != "" {
		filter["propertyId"] = propertyID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// CancelBooking cancels the caller's own booking (idempotent). Admins and
// agents may cancel any booking.
//
// POST /api/bookings/:id/cancel
func CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookingID := ps.ByName("id")
	if bookingID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	filter := bson.M{"id": bookingID}
	if !roles.FromClaims(claims).CanManageBookings() {
		filter["userId"] = claims.UserID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	rdx.InvalidateAvailability(updated.PropertyID)
	broadcastAvailability(updated.PropertyID, "cancelled")

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "booking": updated})
}

// UpdateBookingStatus moves a booking between pending/confirmed/cancelled.
// Route-gated to admin and agent roles.
//
// PUT /api/bookings/:id/status
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")
	if bookingID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if body.Status != models.BookingStatusPending &&
		body.Status != models.BookingStatusConfirmed &&
		body.Status != models.BookingStatusCancelled {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": bookingID},
		bson.M{"$set": bson.M{"status": body.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	rdx.InvalidateAvailability(updated.PropertyID)
	broadcastAvailability(updated.PropertyID, "status")

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "booking": updated})
}
