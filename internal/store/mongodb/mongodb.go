// Package mongodb implements the store interfaces on MongoDB.
package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindease/mindease-api/internal/models"
)

const (
	usersCollection        = "users"
	counsellorsCollection  = "counsellors"
	appointmentsCollection = "appointments"
	moodEntriesCollection  = "mood_entries"
)

// Connect dials MongoDB and returns the application database handle.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes the data model relies on:
// one account per email, one counsellor per license, and at most one
// active appointment per (counsellor, date, time). The last one is a
// partial index so cancelled and completed appointments free their slot.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(counsellorsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "license", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// $in inside partialFilterExpression requires MongoDB 6.0+. Older
	// servers accept no operator that selects exactly the two active
	// statuses ($or is 6.0+ there as well), so 6.0 is the version floor.
	_, err = db.Collection(appointmentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "counsellorId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": models.ActiveStatuses()},
		}),
	})
	return err
}
