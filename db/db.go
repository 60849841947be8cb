package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection       *mongo.Collection
	PropertiesCollection *mongo.Collection
	BookingsCollection   *mongo.Collection
	CouponsCollection    *mongo.Collection
	ReviewsCollection    *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ClientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "lucilladb"
	}

	UserCollection = Client.Database(dbName).Collection("users")
	PropertiesCollection = Client.Database(dbName).Collection("properties")
	BookingsCollection = Client.Database(dbName).Collection("bookings")
	CouponsCollection = Client.Database(dbName).Collection("coupons")
	ReviewsCollection = Client.Database(dbName).Collection("reviews")
}
