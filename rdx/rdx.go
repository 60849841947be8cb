package rdx

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"lucilla/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

const availabilityTTL = 5 * time.Minute

func availabilityKey(propertyID string) string {
	return "availability:" + propertyID
}

// GetCachedUnavailableDates returns the cached date list for a property, or
// false when the cache is cold.
func GetCachedUnavailableDates(propertyID string) ([]string, bool) {
	raw, err := Conn.Get(globals.Ctx, availabilityKey(propertyID)).Result()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		log.Println("availability cache decode error:", err)
		return nil, false
	}
	return dates, true
}

func CacheUnavailableDates(propertyID string, dates []string) {
	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}
	if err := Conn.Set(globals.Ctx, availabilityKey(propertyID), raw, availabilityTTL).Err(); err != nil {
		log.Println("availability cache write error:", err)
	}
}

// InvalidateAvailability drops the cached date list after a booking write.
func InvalidateAvailability(propertyID string) {
	if err := Conn.Del(globals.Ctx, availabilityKey(propertyID)).Err(); err != nil {
		log.Println("availability cache invalidate error:", err)
	}
}

// --- Access-token mirror (active token per user) ---

func StoreAccessToken(userID, token string) error {
	return Conn.HSet(globals.Ctx, "sessions", userID, token).Err()
}

func DropAccessToken(userID string) error {
	return Conn.HDel(globals.Ctx, "sessions", userID).Err()
}
