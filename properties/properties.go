package properties

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lucilla/db"
	"lucilla/middleware"
	"lucilla/models"
	"lucilla/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seed inserts the default villa record when the collection is empty.
func Seed(ctx context.Context, p models.Property) error {
	err := db.PropertiesCollection.FindOne(ctx, bson.M{"propertyid": p.PropertyID}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	_, err = db.PropertiesCollection.InsertOne(ctx, p)
	return err
}

// GetProperty returns the public listing data for one property.
//
// GET /api/properties/:propertyid
func GetProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("propertyid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var p models.Property
	if err := db.PropertiesCollection.FindOne(ctx, bson.M{"propertyid": propertyID}).Decode(&p); err != nil {
		http.Error(w, "property not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"property": p})
}

// ListProperties returns active listings. This deployment serves one villa,
// but the owner dashboard still lists.
//
// GET /api/properties
func ListProperties(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.PropertiesCollection.Find(ctx, bson.M{"status": models.PropertyStatusActive})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var list []models.Property
	if err := cur.All(ctx, &list); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"properties": list})
}

// UpdateProperty edits listing fields, rates, fees and policy. Route-gated
// to admin.
//
// PUT /api/properties/:propertyid
func UpdateProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("propertyid")

	var patch models.Property
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if patch.BaseRate < 0 || patch.CleaningFee < 0 || patch.ServiceFee < 0 {
		http.Error(w, "negative amounts not allowed", http.StatusBadRequest)
		return
	}
	if patch.Policy.MinimumStayNights < 1 || patch.Policy.MaxGuests < 1 {
		http.Error(w, "invalid policy", http.StatusBadRequest)
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         patch.Name,
		"short_desc":   patch.ShortDesc,
		"description":  patch.Description,
		"address":      patch.Address,
		"amenities":    patch.Amenities,
		"base_rate":    patch.BaseRate,
		"cleaning_fee": patch.CleaningFee,
		"service_fee":  patch.ServiceFee,
		"policy":       patch.Policy,
		"status":       patch.Status,
		"updated_at":   time.Now(),
		"updatedBy":    claims.UserID,
	}}

	res := db.PropertiesCollection.FindOneAndUpdate(ctx,
		bson.M{"propertyid": propertyID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Property
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "property not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "property": updated})
}

// GetAddonCatalog lists the optional services offered with the property.
//
// GET /api/properties/:propertyid/addons
func GetAddonCatalog(catalog []models.ServiceAddon) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"addons": catalog})
	}
}
