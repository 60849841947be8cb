package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lucilla/db"
	"lucilla/middleware"
	"lucilla/models"
	"lucilla/roles"
	"lucilla/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetReviews lists reviews for a property, newest first.
//
// GET /api/reviews/:propertyid
func GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	propertyID := ps.ByName("propertyid")

	cur, err := db.ReviewsCollection.Find(ctx,
		bson.M{"propertyId": propertyID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "reviews": reviews})
}

// CreateReview stores a review. Submitting requires authentication; the
// route is wrapped in middleware.Authenticate.
//
// POST /api/reviews/:propertyid
func CreateReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	review := models.Review{
		ReviewID:   utils.GetUUID(),
		PropertyID: ps.ByName("propertyid"),
		UserID:     claims.UserID,
		Username:   claims.Username,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	_, _ = db.PropertiesCollection.UpdateOne(ctx,
		bson.M{"propertyid": review.PropertyID},
		bson.M{"$inc": bson.M{"reviewcount": 1}},
	)

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "review": review})
}

// DeleteReview removes a review. Authors may delete their own; admins any.
//
// DELETE /api/reviews/:propertyid/:reviewid
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := bson.M{"reviewid": ps.ByName("reviewid")}
	if !roles.FromClaims(claims).IsAdmin {
		filter["userId"] = claims.UserID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ReviewsCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	_, _ = db.PropertiesCollection.UpdateOne(ctx,
		bson.M{"propertyid": ps.ByName("propertyid")},
		bson.M{"$inc": bson.M{"reviewcount": -1}},
	)

	w.WriteHeader(http.StatusNoContent)
}
