// Package confirmation renders booking confirmation PDFs with a signed QR
// check-in code.
package confirmation

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"lucilla/db"
	"lucilla/middleware"
	"lucilla/models"
	"lucilla/roles"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

var hmacSecret = func() string {
	if s := os.Getenv("CHECKIN_HMAC_SECRET"); s != "" {
		return s
	}
	return "change-me-checkin-secret"
}()

// signedPayload returns propertyID|bookingID|timestamp|signature for the
// check-in scanner to verify offline.
func signedPayload(propertyID, bookingID string) string {
	data := fmt.Sprintf("%s|%s|%d", propertyID, bookingID, time.Now().Unix())
	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintConfirmation streams a PDF confirmation for a booking. Only the guest
// who made the booking (or an admin/agent) may fetch it.
//
// GET /api/bookings/:id/confirmation
func PrintConfirmation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookingID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"id": bookingID}).Decode(&b); err != nil {
		http.Error(w, "booking not found", http.StatusNotFound)
		return
	}
	if b.UserID != claims.UserID && !roles.FromClaims(claims).CanManageBookings() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var property models.Property
	_ = db.PropertiesCollection.FindOne(ctx, bson.M{"propertyid": b.PropertyID}).Decode(&property)

	qrPNG, err := qrcode.Encode(signedPayload(b.PropertyID, b.ID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Property: %s", property.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booking Ref: %s", b.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Guest: %s", b.GuestName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Check-in: %s", b.StartDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Check-out: %s", b.EndDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Nights: %d   Guests: %d", b.Nights, b.GuestCount))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total: EUR %.2f", b.TotalPrice))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", b.Status))
	pdf.Ln(12)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 20, pdf.GetY(), 60, 60, false, opts, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="confirmation-%s.pdf"`, b.ID))
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Failed to render PDF", http.StatusInternalServerError)
	}
}
